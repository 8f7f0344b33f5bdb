package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"pagepick/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := config.NewConfigService(configPath)
		path := svc.Path()

		if _, err := os.Stat(path); err == nil && !initForce {
			var overwrite bool
			err := huh.NewForm(
				huh.NewGroup(
					huh.NewConfirm().
						Title(fmt.Sprintf("%s already exists. Overwrite it?", path)).
						Affirmative("Overwrite").
						Negative("Keep").
						Value(&overwrite),
				),
			).Run()
			if err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					return nil
				}
				return err
			}
			if !overwrite {
				fmt.Println("Kept existing config.")
				return nil
			}
		}

		if err := svc.Save(config.DefaultConfig()); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config without asking")
}
