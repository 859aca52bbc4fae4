// Package config loads the settings of the snippet command from its config
// file, the environment and the command line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nickwells/snipfile.mod/snippet"
	"github.com/spf13/viper"
)

// These are the names of the configuration values
const (
	KeyFiles      = "files"
	KeyPage       = "page"
	KeyColor      = "color"
	KeyMaxLineLen = "max_line_len"
)

// These are the allowed values for the colour setting
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the application configuration
type Config struct {
	Files      []string `mapstructure:"files"`
	Page       bool     `mapstructure:"page"`
	Color      string   `mapstructure:"color"`
	MaxLineLen int      `mapstructure:"max_line_len"`
}

// New returns a viper instance with the defaults set and the config file
// search path and environment prefix configured. The config file is not
// read.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyFiles, []string{})
	v.SetDefault(KeyPage, false)
	v.SetDefault(KeyColor, ColorAuto)
	v.SetDefault(KeyMaxLineLen, snippet.DfltMaxLineLen)

	v.SetConfigName("snippet")
	v.SetConfigType("yaml")

	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "snippet"))
		v.AddConfigPath(home)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("SNIPPET")
	v.AutomaticEnv()

	return v
}

// Load reads the config file, if there is one, and returns the settings. A
// missing config file is not an error but a malformed one is.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("cannot read the config file: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("bad configuration: %w", err)
	}
	c.Files = expandAll(c.Files)

	if err := c.check(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// check returns an error if any of the settings is invalid
func (c Config) check() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("bad %s value: %q (it must be one of: %s)",
			KeyColor, c.Color,
			strings.Join([]string{ColorAuto, ColorAlways, ColorNever}, ", "))
	}
	if c.MaxLineLen <= 0 {
		return fmt.Errorf("bad %s value: %d (it must be > 0)",
			KeyMaxLineLen, c.MaxLineLen)
	}
	return nil
}

// expandAll expands a leading ~ in each of the paths
func expandAll(paths []string) []string {
	rval := make([]string, 0, len(paths))
	for _, p := range paths {
		rval = append(rval, expandTilde(p))
	}
	return rval
}

// expandTilde expands ~ to the user's home directory
func expandTilde(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
