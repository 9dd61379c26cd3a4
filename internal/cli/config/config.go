package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/mytrout/buildingblocks/internal/logging"
	"github.com/mytrout/buildingblocks/internal/resources"
)

// EnvPrefix prefixes every environment override, e.g. BUILDINGBLOCKS_LOCALE.
const EnvPrefix = "BUILDINGBLOCKS"

// Config represents the buildingblocks configuration
type Config struct {
	Locale string       `mapstructure:"locale"`
	Log    LogConfig    `mapstructure:"log"`
	Output OutputConfig `mapstructure:"output"`
	Watch  WatchConfig  `mapstructure:"watch"`
	Model  ModelConfig  `mapstructure:"model"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// OutputConfig represents output configuration
type OutputConfig struct {
	Format  string `mapstructure:"format"`
	NoColor bool   `mapstructure:"no_color"`
}

// WatchConfig represents file watching configuration
type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

// ModelConfig names the default model document.
type ModelConfig struct {
	Path string `mapstructure:"path"`
}

// Load loads the configuration from buildingblocks.yml or buildingblocks.yaml
// in dir (the working directory when empty).
func Load(dir string) (*Config, error) {
	v := viper.New()

	v.SetDefault("locale", "en")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("output.format", "table")
	v.SetDefault("output.no_color", false)
	v.SetDefault("watch.debounce", 100*time.Millisecond)
	v.SetDefault("model.path", "model.yml")

	if dir == "" {
		dir = "."
	}
	v.SetConfigName("buildingblocks")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LocaleTag returns the configured locale matched against the supported
// translations.
func (c *Config) LocaleTag() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.English
	}
	return tag
}

// FindConfig walks up from dir looking for a buildingblocks.yml. It returns
// the directory holding it.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		for _, name := range []string{"buildingblocks.yml", "buildingblocks.yaml"} {
			if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no buildingblocks.yml found")
		}
		dir = parent
	}
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	switch strings.ToLower(cfg.Output.Format) {
	case "table", "json", "yaml":
		cfg.Output.Format = strings.ToLower(cfg.Output.Format)
	default:
		return fmt.Errorf("output.format must be one of table, json, yaml, got: %s", cfg.Output.Format)
	}

	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		return fmt.Errorf("locale %q is not a valid language tag: %w", cfg.Locale, err)
	}
	if !resources.IsSupported(tag) {
		return fmt.Errorf("locale %q is not supported", cfg.Locale)
	}

	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	if cfg.Watch.Debounce <= 0 {
		return fmt.Errorf("watch.debounce must be positive, got: %s", cfg.Watch.Debounce)
	}
	return nil
}
