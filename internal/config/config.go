// Package config resolves ccswitch file locations and writes the built-in profiles templates.
package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Configuration keys. Each is also read from the environment as CCSWITCH_<KEY>.
const (
	KeyProfiles = "profiles"
	KeySettings = "settings"
	KeyProfile  = "profile"
	KeyLogLevel = "log_level"
)

const envPrefix = "CCSWITCH"

// ExpandHome replaces a leading "~" or "~/" in path with home.
func ExpandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		return filepath.Join(home, path[2:])
	}
	return path
}

// DefaultProfilesPath returns ~/.ccswitch/ccs.json under home.
func DefaultProfilesPath(home string) string {
	return filepath.Join(home, ".ccswitch", "ccs.json")
}

// DefaultSettingsPath returns ~/.claude/settings.json under home.
func DefaultSettingsPath(home string) string {
	return filepath.Join(home, ".claude", "settings.json")
}

// Config resolves values from bound flags, then CCSWITCH_* environment variables, then defaults.
type Config struct {
	v    *viper.Viper
	home string
}

// New creates a Config rooted at the given home directory.
func New(home string) *Config {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetDefault(KeyProfiles, DefaultProfilesPath(home))
	v.SetDefault(KeyLogLevel, "warn")

	return &Config{v: v, home: home}
}

// BindFlag makes flag the highest-precedence source for key once it is set on the command line.
func (c *Config) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("no flag to bind for key '%s'", key)
	}
	return c.v.BindPFlag(key, flag)
}

// Home returns the home directory used for "~" expansion.
func (c *Config) Home() string {
	return c.home
}

// ProfilesPath returns the profiles file location.
func (c *Config) ProfilesPath() string {
	return ExpandHome(c.v.GetString(KeyProfiles), c.home)
}

// SettingsOverride returns the settings path given by flag or environment, or "".
func (c *Config) SettingsOverride() string {
	return c.v.GetString(KeySettings)
}

// Profile returns the profile selected by flag or environment, or "".
func (c *Config) Profile() string {
	return c.v.GetString(KeyProfile)
}

// LogLevel parses the configured log level, falling back to warn.
func (c *Config) LogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.v.GetString(KeyLogLevel))); err != nil {
		return slog.LevelWarn
	}
	return level
}

// ResolveSettingsPath picks the settings file location.
// Precedence: explicit override -> profiles file settingsPath -> default.
func (c *Config) ResolveSettingsPath(fromProfiles string) string {
	if override := c.SettingsOverride(); override != "" {
		return override
	}
	if fromProfiles != "" {
		return fromProfiles
	}
	return DefaultSettingsPath(c.home)
}
