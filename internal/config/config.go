// Package config resolves runtime settings from defaults, an optional
// .diario.yaml and DIARIO_* environment variables, in increasing priority.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Keys understood in the config file and as DIARIO_<KEY> env vars
const (
	KeyOwner    = "owner"
	KeyDriver   = "driver"
	KeyDSN      = "dsn"
	KeyDataDir  = "data_dir"
	KeyLogLevel = "log_level"
)

const DefaultDriver = "sqlite"

// Config holds the resolved settings
type Config struct {
	Owner    string // signed-in identity; empty means signed out
	Driver   string // sqlite or postgres
	DSN      string // sqlite file path or postgres URL
	DataDir  string // local mirror directory
	LogLevel string
}

// Load reads the config. dirs are searched for .diario.yaml after
// DIARIO_CONFIG_PATH and the working directory; a missing file is not an error.
func Load(dirs ...string) (*Config, error) {
	v := viper.New()
	v.SetDefault(KeyDriver, DefaultDriver)
	v.SetDefault(KeyDSN, filepath.Join(DataHome(), "journal.db"))
	v.SetDefault(KeyDataDir, filepath.Join(DataHome(), "mirror"))
	v.SetDefault(KeyLogLevel, "info")

	v.SetConfigName(".diario") // .yaml is implicit
	v.SetEnvPrefix("DIARIO")
	v.AutomaticEnv()

	if override := os.Getenv("DIARIO_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath(".")
	for _, dir := range dirs {
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return &Config{
		Owner:    v.GetString(KeyOwner),
		Driver:   v.GetString(KeyDriver),
		DSN:      v.GetString(KeyDSN),
		DataDir:  v.GetString(KeyDataDir),
		LogLevel: v.GetString(KeyLogLevel),
	}, nil
}

// DataHome returns the XDG data directory for diario
func DataHome() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "diario")
}
