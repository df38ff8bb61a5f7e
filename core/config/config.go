package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "INSPECTOR"

// Config carries the panel settings resolvable from a file and the
// environment.
type Config struct {
	// LogLevel is applied to the shared panel logger ("warning" by default).
	LogLevel string `mapstructure:"log_level"`

	// FoldStatePath points at the bbolt database persisting foldout flags.
	// Empty keeps fold state in memory for the session.
	FoldStatePath string `mapstructure:"fold_state_path"`

	// DisabledActions lists raw operation names to hide from every panel.
	DisabledActions []string `mapstructure:"disabled_actions"`
}

// Load reads the panel configuration. Later sources override earlier ones:
// built-in defaults, then the optional yaml file at path, then INSPECTOR_*
// environment variables.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("log_level", "warning")
	v.SetDefault("fold_state_path", "")
	v.SetDefault("disabled_actions", []string{})

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
