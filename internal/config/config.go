package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.yaml.in/yaml/v3"

	"pagepick/internal/checkbox"
	"pagepick/internal/domain"
	"pagepick/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version int          `toml:"version" yaml:"version"`
	Title   string       `toml:"title" yaml:"title"`
	Items   []ItemConfig `toml:"items" yaml:"items"`
	UI      UISettings   `toml:"ui" yaml:"ui"`
}

// ItemConfig is one page row
type ItemConfig struct {
	ID   string `toml:"id" yaml:"id"`
	Name string `toml:"name" yaml:"name"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	AggregateLabel string   `toml:"aggregate_label" yaml:"aggregate_label"`
	DoneLabel      string   `toml:"done_label" yaml:"done_label"`
	MaxTier        int      `toml:"max_tier" yaml:"max_tier"`
	TierColors     []string `toml:"tier_colors" yaml:"tier_colors"` // one colour per tier, lowest first
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns <user config dir>/pagepick/config.toml
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "pagepick", "config.toml")
}

// NewConfigService creates a config service for path; an empty path uses DefaultPath
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults if it does not exist
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:  cs.filePath,
			Items: cfg.DomainItems(),
		})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Decode(data, formatOf(path))
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := Encode(config, formatOf(path))
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Format is a config file encoding
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

func formatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Decode parses, defaults and validates a config
func Decode(data []byte, format Format) (*Config, error) {
	var cfg Config
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = toml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Encode serializes a config
func Encode(cfg *Config, format Format) ([]byte, error) {
	var data []byte
	var err error
	switch format {
	case FormatYAML:
		data, err = yaml.Marshal(cfg)
	default:
		data, err = toml.Marshal(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// Validate checks the item list and the tier palette
func (c *Config) Validate() error {
	if err := domain.ValidateItems(c.DomainItems()); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.UI.MaxTier < 1 {
		return fmt.Errorf("invalid config: max_tier must be at least 1, got %d", c.UI.MaxTier)
	}
	if len(c.UI.TierColors) < c.UI.MaxTier {
		return fmt.Errorf("invalid config: %d tier colours for %d tiers", len(c.UI.TierColors), c.UI.MaxTier)
	}
	return nil
}

// DomainItems converts the configured items
func (c *Config) DomainItems() []domain.Item {
	items := make([]domain.Item, len(c.Items))
	for i, it := range c.Items {
		items[i] = domain.Item{ID: domain.ItemID(it.ID), Name: it.Name}
	}
	return items
}

func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Version == 0 {
		c.Version = def.Version
	}
	if c.Title == "" {
		c.Title = def.Title
	}
	if c.UI.AggregateLabel == "" {
		c.UI.AggregateLabel = def.UI.AggregateLabel
	}
	if c.UI.DoneLabel == "" {
		c.UI.DoneLabel = def.UI.DoneLabel
	}
	if c.UI.MaxTier == 0 {
		c.UI.MaxTier = def.UI.MaxTier
	}
	if len(c.UI.TierColors) == 0 {
		c.UI.TierColors = def.UI.TierColors
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Title:   "pagepick",
		Items: []ItemConfig{
			{ID: "1", Name: "Page 1"},
			{ID: "2", Name: "Page 2"},
			{ID: "3", Name: "Page 3"},
			{ID: "4", Name: "Page 4"},
		},
		UI: UISettings{
			AggregateLabel: "All pages",
			DoneLabel:      "Done",
			MaxTier:        checkbox.DefaultMaxTier,
			TierColors:     []string{"#BDBDBD", "#878787", "#5087F8", "#2469F6"},
		},
	}
}
