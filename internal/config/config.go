// Package config loads the cronfile configuration with viper.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, as in CRONFILE_LOG_LEVEL.
const EnvPrefix = "CRONFILE"

type Config struct {
	Crontab CrontabConfig `mapstructure:"crontab"`
	Parse   ParseConfig   `mapstructure:"parse"`
	Lint    LintConfig    `mapstructure:"lint"`
	Log     LogConfig     `mapstructure:"log"`
	Watch   WatchConfig   `mapstructure:"watch"`
}

type CrontabConfig struct {
	Path string `mapstructure:"path"`
}

type ParseConfig struct {
	Strict bool `mapstructure:"strict"`
	Probe  bool `mapstructure:"probe"`
}

type LintConfig struct {
	Semantic bool `mapstructure:"semantic"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

// SetDefaults registers every key so that environment overrides apply
// even when no config file is found.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("crontab.path", defaultCrontabPath())
	v.SetDefault("parse.strict", false)
	v.SetDefault("parse.probe", true)
	v.SetDefault("lint.semantic", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 28)
	v.SetDefault("log.compress", false)
	v.SetDefault("watch.debounce", 500*time.Millisecond)
}

// Load reads the configuration into v. An explicit configFile must exist;
// otherwise cronfile.yaml is searched in the standard locations and its
// absence is not an error.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	SetDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("cronfile")
		v.SetConfigType("yaml")

		// Current directory (highest priority)
		v.AddConfigPath(".")

		if userConfigDir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(userConfigDir, "cronfile"))
		}

		v.AddConfigPath("/etc/cronfile")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("unable to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	cfg.Crontab.Path = expandTilde(cfg.Crontab.Path)
	cfg.Log.File = expandTilde(cfg.Log.File)

	if cfg.Crontab.Path == "" {
		return nil, fmt.Errorf("crontab.path is required")
	}
	if cfg.Watch.Debounce < 0 {
		return nil, fmt.Errorf("watch.debounce must not be negative")
	}

	return &cfg, nil
}

// LoadDotenv loads .env files into the process environment without
// overriding variables that are already set. Missing files are ignored.
func LoadDotenv(paths ...string) error {
	for _, path := range paths {
		err := godotenv.Load(path)
		if err == nil || errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func defaultCrontabPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".crontab")
	}
	return ".crontab"
}

func expandTilde(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path[2:])
	}
	return path
}
