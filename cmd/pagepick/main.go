package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"pagepick/internal/config"
	"pagepick/internal/eventbus"
	"pagepick/internal/ui"
	"pagepick/internal/widget"
)

var version = "0.1.0"

var (
	configPath string
	logPath    string
)

var rootCmd = &cobra.Command{
	Use:   "pagepick",
	Short: "Pick pages from a list, with progressive checkbox tiers",
	Long: "pagepick shows a checklist of pages with an \"All pages\" row. Checked boxes climb through\n" +
		"style tiers on each press before they uncheck. Pressing Done prints the selected ids.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPicker(cmd.Context())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pagepick %s\n", version)
	},
}

func init() {
	// A missing .env is fine
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", os.Getenv("PAGEPICK_CONFIG"), "Config file (.toml, .yaml or .yml)")
	rootCmd.Flags().StringVar(&logPath, "log", envOr("PAGEPICK_LOG", "pagepick.log"), "Log file")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func runPicker(ctx context.Context) error {
	// The TUI owns the terminal, so logs go to a file
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	bus := eventbus.New()
	defer bus.Close()

	configSvc := config.NewConfigServiceWithBus(configPath, bus)
	cfg, err := configSvc.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log.Printf("Loaded config from %s (%d items)", configSvc.Path(), len(cfg.Items))

	w, err := widget.New(cfg.DomainItems(), widget.WithBus(bus), widget.WithMaxTier(cfg.UI.MaxTier))
	if err != nil {
		return fmt.Errorf("failed to build picker: %w", err)
	}

	bus.Subscribe(eventbus.EventCommitted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.CommittedEvent); ok {
			log.Printf("Commit %s: %v", event.ID, event.Selected)
		}
	})
	bus.Subscribe(eventbus.EventClickCountChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ClickCountChangedEvent); ok {
			log.Printf("Click count %q -> %d (aggregate=%t)", event.ID, event.Count, event.Aggregate)
		}
	})

	model := ui.NewModel(cfg, w)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(p)

	// Forward selection changes to the UI
	bus.Subscribe(eventbus.EventSelectionChanged, func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	})

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Printf("Error running program: %v", err)
		return fmt.Errorf("error running program: %w", err)
	}
	log.Printf("UI exited normally")

	if ids, done := model.Committed(); done {
		for _, id := range ids {
			fmt.Println(id)
		}
	}
	return nil
}
