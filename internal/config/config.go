// Package config loads the ambient, spec-silent knobs shared by the
// crawler, indexer and querier (log level/dir/rotation, whether to draw
// progress bars) from an optional config file and TSE_-prefixed
// environment variables, via spf13/viper — the same layering the
// teacher's core/config.go uses. No command-line flags are bound to
// individual settings; the programs' --config flag only selects the file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the ambient settings. None of it changes the mandatory
// positional-argument contract each program's CLI enforces.
type Config struct {
	LogLevel     string `mapstructure:"log_level"`
	LogDir       string `mapstructure:"log_dir"`
	LogMaxSizeMB int    `mapstructure:"log_max_size_mb"`
	LogMaxAge    int    `mapstructure:"log_max_age_days"`
	ShowProgress bool   `mapstructure:"show_progress"`
}

// Load reads configFile if given, else searches ./configs, the current
// directory, and ~/.tse for a "config.yaml". Missing files fall back to
// defaults; a present-but-malformed file is an error.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("TSE")
	v.AutomaticEnv()

	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".tse"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("log_dir", "logs")
	v.SetDefault("log_max_size_mb", 10)
	v.SetDefault("log_max_age_days", 28)
	v.SetDefault("show_progress", true)
}
