// Package config loads the user configuration file and layers flag and
// environment overrides on top of it
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/chores/internal/config/colors"
	"github.com/thenoetrevino/chores/internal/models"
)

// EnvPrefix prefixes every environment override (CHORES_DATABASE_PATH, ...)
const EnvPrefix = "CHORES"

// Config represents the application configuration
type Config struct {
	Database    DatabaseConfig     `yaml:"database"`
	Timezone    string             `yaml:"timezone"`
	List        ListConfig         `yaml:"list"`
	Logging     LoggingConfig      `yaml:"logging"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
}

// DatabaseConfig locates the SQLite database
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// ListConfig holds the default ordering of chore listings
type ListConfig struct {
	SortBy    string `yaml:"sort_by"`
	SortOrder string `yaml:"sort_order"`
}

// LoggingConfig controls the rotating log file
type LoggingConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// loadThemeFile loads and merges theme from CHORES_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvPrefix + "_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		config := Default()
		loadThemeFile(config)
		return config, nil
	}
	return LoadFrom(configPath)
}

// LoadFrom loads config from path, returning defaults if the file doesn't exist
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		config := Default()
		loadThemeFile(config)
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	loadThemeFile(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// ApplyOverrides layers values set in v (bound flags or CHORES_* environment
// variables) over the file values. Keys use the YAML names, e.g. "database.path".
func (c *Config) ApplyOverrides(v *viper.Viper) {
	if v == nil {
		return
	}
	if v.IsSet("database.path") {
		c.Database.Path = v.GetString("database.path")
	}
	if v.IsSet("timezone") {
		c.Timezone = v.GetString("timezone")
	}
	if v.IsSet("list.sort_by") {
		c.List.SortBy = v.GetString("list.sort_by")
	}
	if v.IsSet("list.sort_order") {
		c.List.SortOrder = v.GetString("list.sort_order")
	}
	if v.IsSet("logging.level") {
		c.Logging.Level = v.GetString("logging.level")
	}
	if v.IsSet("logging.file") {
		c.Logging.File = v.GetString("logging.file")
	}
	c.Database.Path = expandHome(c.Database.Path)
	c.Logging.File = expandHome(c.Logging.File)
}

// NewViper returns a viper instance reading CHORES_* environment variables,
// with "database.path" mapped to CHORES_DATABASE_PATH
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Validate checks values that would otherwise fail later at runtime
func (c *Config) Validate() error {
	if _, err := c.Location(); err != nil {
		return err
	}
	if _, err := models.ParseSortKey(c.List.SortBy); err != nil {
		return fmt.Errorf("list.sort_by: %w", err)
	}
	if _, err := models.ParseSortOrder(c.List.SortOrder); err != nil {
		return fmt.Errorf("list.sort_order: %w", err)
	}
	return nil
}

// Location resolves the configured timezone
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, "UTC") {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Path returns the path to the config file
func Path() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "chores", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "chores", "config.yaml"), nil
}

// DataDir returns ~/.chores, where the database and logs live by default
func DataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".chores"
	}
	return filepath.Join(homeDir, ".chores")
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Database.Path == "" {
		c.Database.Path = filepath.Join(DataDir(), "chores.db")
	}
	if c.Timezone == "" {
		c.Timezone = "UTC"
	}
	if c.List.SortBy == "" {
		c.List.SortBy = string(models.SortByDaysLeft)
	}
	if c.List.SortOrder == "" {
		c.List.SortOrder = string(models.SortAsc)
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.File == "" {
		c.Logging.File = filepath.Join(DataDir(), "logs", "chores.log")
	}
	if c.Logging.MaxSizeMB == 0 {
		c.Logging.MaxSizeMB = 10
	}
	if c.Logging.MaxBackups == 0 {
		c.Logging.MaxBackups = 3
	}
	if c.Logging.MaxAgeDays == 0 {
		c.Logging.MaxAgeDays = 28
	}
	c.ColorScheme.ApplyDefaults()

	c.Database.Path = expandHome(c.Database.Path)
	c.Logging.File = expandHome(c.Logging.File)
}

// expandHome replaces a leading "~/" with the user's home directory
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, path[2:])
}
