package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"

	"shopfront/internal/eventbus"
	"shopfront/internal/slider"
)

const appName = "shopfront"

// terminalSwipeThreshold is the swipe distance in cells. The slider default
// is tuned for pixels and is wider than a product card.
const terminalSwipeThreshold = 6

// Config represents the application configuration
type Config struct {
	Version int             `toml:"version"`
	Slider  SliderSettings  `toml:"slider"`
	Storage StorageSettings `toml:"storage"`
	Log     LogSettings     `toml:"log"`
	UI      UISettings      `toml:"ui"`
}

// SliderSettings holds the carousel options of each page
type SliderSettings struct {
	Card   SliderConfig `toml:"card"`
	Detail SliderConfig `toml:"detail"`
}

// SliderConfig is the file form of slider.Options
type SliderConfig struct {
	AutoPlay          bool   `toml:"auto_play"`
	Circular          bool   `toml:"circular"`
	AutoSlideInterval int    `toml:"auto_slide_interval_ms"`
	Navigation        string `toml:"navigation"` // visible, not-visible, visible-on-hover
	AutoPlayOnHover   bool   `toml:"auto_play_on_hover"`
	TouchThreshold    int    `toml:"touch_threshold"`
	SwipeSupported    bool   `toml:"swipe_supported"`
	Transition        int    `toml:"transition_ms"`
}

// StorageSettings locates the SQLite database
type StorageSettings struct {
	Path string `toml:"path"`
}

// LogSettings controls the log file
type LogSettings struct {
	Path  string `toml:"path"`
	Level string `toml:"level"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Mouse bool `toml:"mouse"`
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
	log      *zap.Logger
	filePath string
}

// DefaultDir returns the per-user directory holding config, database and log
func DefaultDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, appName)
}

// NewConfigService creates a config service for path. An empty path selects
// config.toml in DefaultDir.
func NewConfigService(path string, logger *zap.Logger) ConfigService {
	if path == "" {
		path = filepath.Join(DefaultDir(), "config.toml")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &configService{filePath: path, log: logger.Named("config")}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, logger *zap.Logger, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path, logger).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string { return cs.filePath }

// Load reads the configuration file, writing the defaults first when it
// does not exist yet.
func (cs *configService) Load() (*Config, error) {
	created := false
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
		if err := cs.SaveToPath(cfg, cs.filePath); err != nil {
			return nil, err
		}
		created = true
		cs.log.Info("wrote default config", zap.String("path", cs.filePath))
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath, Created: created})
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

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate rejects values the slider cannot work with
func (c *Config) Validate() error {
	for name, s := range map[string]SliderConfig{"card": c.Slider.Card, "detail": c.Slider.Detail} {
		if _, err := slider.ParseNavigationVisibility(s.Navigation); err != nil {
			return fmt.Errorf("slider.%s: %w", name, err)
		}
		if s.AutoSlideInterval < 0 {
			return fmt.Errorf("slider.%s: auto_slide_interval_ms must not be negative", name)
		}
		if s.TouchThreshold < 0 {
			return fmt.Errorf("slider.%s: touch_threshold must not be negative", name)
		}
		if s.Transition < 0 {
			return fmt.Errorf("slider.%s: transition_ms must not be negative", name)
		}
	}
	if _, err := zap.ParseAtomicLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// Options converts the file form into slider options. Navigation has been
// checked by Validate; an unknown value falls back to visible.
func (s SliderConfig) Options(logger *zap.Logger) slider.Options {
	nav, _ := slider.ParseNavigationVisibility(s.Navigation)
	opts := slider.DefaultOptions()
	opts.AutoPlay = s.AutoPlay
	opts.Circular = s.Circular
	opts.AutoSlideInterval = time.Duration(s.AutoSlideInterval) * time.Millisecond
	opts.Navigation = nav
	opts.AutoPlayOnHover = s.AutoPlayOnHover
	opts.TouchThreshold = s.TouchThreshold
	opts.SwipeSupported = s.SwipeSupported
	opts.TransitionDuration = time.Duration(s.Transition) * time.Millisecond
	opts.Logger = logger
	return opts
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	dir := DefaultDir()
	return &Config{
		Version: 1,
		Slider: SliderSettings{
			// product cards: advance only while hovered, no arrows
			Card: SliderConfig{
				AutoPlay:          false,
				Circular:          true,
				AutoSlideInterval: 1500,
				Navigation:        slider.NavigationNotVisible.String(),
				AutoPlayOnHover:   true,
				TouchThreshold:    terminalSwipeThreshold,
				SwipeSupported:    true,
				Transition:        int(slider.DefaultTransitionDuration / time.Millisecond),
			},
			Detail: SliderConfig{
				AutoPlay:          false,
				Circular:          true,
				AutoSlideInterval: int(slider.DefaultAutoSlideInterval / time.Millisecond),
				Navigation:        slider.NavigationVisibleOnHover.String(),
				AutoPlayOnHover:   false,
				TouchThreshold:    terminalSwipeThreshold,
				SwipeSupported:    true,
				Transition:        int(slider.DefaultTransitionDuration / time.Millisecond),
			},
		},
		Storage: StorageSettings{Path: filepath.Join(dir, "shopfront.db")},
		Log:     LogSettings{Path: filepath.Join(dir, "shopfront.log"), Level: "info"},
		UI:      UISettings{Mouse: true},
	}
}
