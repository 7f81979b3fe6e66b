package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/jask/jpapex/internal/mapview"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Catalog  CatalogConfig
	Map      MapConfig
	UI       UIConfig
	Log      LogConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// CatalogConfig points at an optional dataset overriding the bundled one.
type CatalogConfig struct {
	SeedFile string `mapstructure:"seed_file"`
}

// MapConfig holds the camera presets used when navigating to maps.
type MapConfig struct {
	OverviewDistance float64 `mapstructure:"overview_distance"`
	CloseupDistance  float64 `mapstructure:"closeup_distance"`
	CloseupHeading   float64 `mapstructure:"closeup_heading"`
	CloseupPitch     float64 `mapstructure:"closeup_pitch"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme string
}

// LogConfig holds logger settings. An empty Path logs to stderr.
type LogConfig struct {
	Level string
	Path  string
}

// Path returns the config file location: $JPAPEX_CONFIG or ~/.config/jpapex/config.toml.
func Path() string {
	if p := os.Getenv("JPAPEX_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "jpapex", "config.toml")
}

func setDefaults(v *viper.Viper) {
	home := os.Getenv("HOME")
	v.SetDefault("database.path", filepath.Join(home, ".local", "share", "jpapex", "jpapex.db"))
	v.SetDefault("catalog.seed_file", "")
	v.SetDefault("map.overview_distance", 30000.0)
	v.SetDefault("map.closeup_distance", 1000.0)
	v.SetDefault("map.closeup_heading", 250.0)
	v.SetDefault("map.closeup_pitch", 80.0)
	v.SetDefault("ui.theme", "dark")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", filepath.Join(home, ".local", "state", "jpapex", "jpapex.log"))
}

// Default returns the configuration used when no file or env overrides exist.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	_ = v.Unmarshal(&c)
	return c
}

// Load reads configuration from Path() and env. Env var overrides use prefix JPAPEX_.
// A missing config file is not an error.
func Load() (Config, error) {
	return LoadFile(Path())
}

// LoadFile is Load with an explicit config file.
func LoadFile(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	v.SetConfigFile(path)

	v.SetEnvPrefix("JPAPEX")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Database.Path) == "" {
		return fmt.Errorf("%w: database.path is empty", ErrInvalid)
	}
	if c.Map.OverviewDistance <= 0 || c.Map.CloseupDistance <= 0 {
		return fmt.Errorf("%w: map distances must be positive", ErrInvalid)
	}
	if c.Map.CloseupPitch < 0 || c.Map.CloseupPitch > mapview.MaxPitch {
		return fmt.Errorf("%w: map.closeup_pitch %v outside [0,%v]", ErrInvalid, c.Map.CloseupPitch, mapview.MaxPitch)
	}
	switch c.UI.Theme {
	case "dark", "light":
	default:
		return fmt.Errorf("%w: ui.theme %q", ErrInvalid, c.UI.Theme)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	return nil
}

// Save writes the provided config to path, creating the directory if needed.
func Save(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("catalog.seed_file", cfg.Catalog.SeedFile)
	v.Set("map.overview_distance", cfg.Map.OverviewDistance)
	v.Set("map.closeup_distance", cfg.Map.CloseupDistance)
	v.Set("map.closeup_heading", cfg.Map.CloseupHeading)
	v.Set("map.closeup_pitch", cfg.Map.CloseupPitch)
	v.Set("ui.theme", cfg.UI.Theme)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.path", cfg.Log.Path)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
