// Package config loads the wizard's settings from a YAML file via viper.
// A project-local .permitwiz/config.yaml takes precedence; otherwise the
// per-user config under ~/.config/permitwiz is used. Missing config files
// are fine: every setting has a default.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all tunable settings.
type Config struct {
	// StorePath is the JSON key/value store file holding the draft and
	// submitted applications. Empty means the default next to the config.
	StorePath string `mapstructure:"store_path"`
	// LogFile receives diagnostic logs. Empty disables logging.
	LogFile string `mapstructure:"log_file"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
	// Ephemeral keeps all state in memory: no draft survives the session.
	Ephemeral bool `mapstructure:"ephemeral"`
}

const localConfigDir = ".permitwiz"

// userConfigDir returns ~/.config/permitwiz.
func userConfigDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "permitwiz")
}

// Load reads the config, applying defaults for anything unset. The returned
// path is the directory the config was (or would have been) read from, used
// to anchor the default store location.
func Load() (Config, string, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(localConfigDir)
	v.AddConfigPath(userConfigDir())

	v.SetDefault("store_path", "")
	v.SetDefault("log_file", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("ephemeral", false)

	dir := userConfigDir()
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, "", fmt.Errorf("reading config: %w", err)
		}
	} else {
		dir = filepath.Dir(v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, "", fmt.Errorf("parsing config: %w", err)
	}
	return cfg, dir, nil
}

// StoreFile resolves the key/value store location: an explicit store_path
// wins, otherwise store.json beside the config.
func (c Config) StoreFile(configDir string) string {
	if c.StorePath != "" {
		return c.StorePath
	}
	return filepath.Join(configDir, "store.json")
}

// defaultConfig is the file written by `permitwiz init`.
const defaultConfig = `# permitwiz configuration
#
# store_path: where the draft and submitted applications are kept.
#             Defaults to store.json next to this file.
# log_file:   diagnostic log destination. Empty disables logging.
# log_level:  debug, info, warn, or error.
# ephemeral:  true keeps all state in memory (no draft recovery).

store_path: ""
log_file: ""
log_level: info
ephemeral: false
`

// WriteDefaultConfig creates a commented default config file at path,
// creating parent directories as needed.
func WriteDefaultConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfig), 0o644)
}

// LocalConfigPath is the project-local config location used by `init`.
func LocalConfigPath() string {
	return filepath.Join(localConfigDir, "config.yaml")
}
