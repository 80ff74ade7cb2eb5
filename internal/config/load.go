package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Load reads the configuration. With an empty path the system, user and
// project files are merged in that order (/etc/braille/config.toml,
// ~/.braille/config.toml, ./braille.toml); otherwise only the given file
// is read and it must exist. Environment variables override files:
// BRAILLE_SERVER_PORT sets server.port.
func Load(path string) (*Config, error) {
	v := NewViper()
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		mergeConfigFiles(v)
	}
	return LoadWithViper(v)
}

// NewViper creates a Viper instance with defaults and environment binding.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("BRAILLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// LoadWithViper unmarshals and validates the configuration held by v.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// configPaths lists candidate config files, lowest precedence first.
func configPaths() []string {
	paths := []string{"/etc/braille/config.toml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".braille", "config.toml"))
	}
	return append(paths, "braille.toml")
}

// mergeConfigFiles merges every existing config file into v.
// Unreadable files are skipped.
func mergeConfigFiles(v *viper.Viper) {
	for _, path := range configPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		_ = v.MergeInConfig()
	}
}
