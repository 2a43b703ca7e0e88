// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"fjacquet/expense-tracker/internal/logging"
)

// LogConfig controls log verbosity and output format.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// DataConfig locates the data file and its backup.
type DataConfig struct {
	Directory  string `mapstructure:"directory" yaml:"directory"`
	File       string `mapstructure:"file" yaml:"file"`
	BackupFile string `mapstructure:"backup_file" yaml:"backup_file"`
}

// CSVConfig controls the interchange CSV format.
type CSVConfig struct {
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
}

// CategoriesConfig locates the category definitions and names the
// defaults used when no category is given.
type CategoriesConfig struct {
	File           string `mapstructure:"file" yaml:"file"`
	Default        string `mapstructure:"default" yaml:"default"`
	ImportFallback string `mapstructure:"import_fallback" yaml:"import_fallback"`
}

// CategorizationConfig controls keyword categorization of imported rows.
type CategorizationConfig struct {
	AutoCategorize bool `mapstructure:"auto_categorize" yaml:"auto_categorize"`
	CaseSensitive  bool `mapstructure:"case_sensitive" yaml:"case_sensitive"`
}

// Config represents the complete application configuration
type Config struct {
	Log            LogConfig            `mapstructure:"log" yaml:"log"`
	Data           DataConfig           `mapstructure:"data" yaml:"data"`
	CSV            CSVConfig            `mapstructure:"csv" yaml:"csv"`
	Categories     CategoriesConfig     `mapstructure:"categories" yaml:"categories"`
	Categorization CategorizationConfig `mapstructure:"categorization" yaml:"categorization"`
}

// DataFilePath returns the full path of the data file, honoring the
// configured data directory.
func (c *Config) DataFilePath() string {
	if filepath.IsAbs(c.Data.File) || c.Data.Directory == "" {
		return c.Data.File
	}
	return filepath.Join(c.Data.Directory, c.Data.File)
}

// BackupFilePath returns the full path of the backup file. When no
// backup file is configured, it derives "<data file>.bak".
func (c *Config) BackupFilePath() string {
	backup := c.Data.BackupFile
	if backup == "" {
		return c.DataFilePath() + ".bak"
	}
	if filepath.IsAbs(backup) || c.Data.Directory == "" {
		return backup
	}
	return filepath.Join(c.Data.Directory, backup)
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.expense-tracker")
	v.AddConfigPath(".expense-tracker")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("EXPENSES")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
		// Config file not found or invalid is OK, we'll use defaults and env vars
	}

	// 5. The unprefixed CSV_DELIMITER variable is honored as well, for
	// consistency with the reader setup in the common package.
	if err := v.BindEnv("csv.delimiter", "EXPENSES_CSV_DELIMITER", "CSV_DELIMITER"); err != nil {
		fmt.Printf("Warning: failed to bind CSV_DELIMITER environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 6. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Data defaults
	v.SetDefault("data.directory", "")
	v.SetDefault("data.file", "expenses.json")
	v.SetDefault("data.backup_file", "")

	// CSV defaults
	v.SetDefault("csv.delimiter", ",")

	// Category defaults
	v.SetDefault("categories.file", "categories.yaml")
	v.SetDefault("categories.default", "Misc")
	v.SetDefault("categories.import_fallback", "Imported")

	// Categorization defaults
	v.SetDefault("categorization.auto_categorize", true)
	v.SetDefault("categorization.case_sensitive", false)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	// Validate log level
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	// Validate log format
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	// Validate CSV delimiter
	if utf8.RuneCountInString(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	// Validate data file
	if strings.TrimSpace(config.Data.File) == "" {
		return fmt.Errorf("data.file cannot be empty")
	}

	// Validate category names
	if strings.TrimSpace(config.Categories.Default) == "" {
		return fmt.Errorf("categories.default cannot be empty")
	}
	if strings.TrimSpace(config.Categories.ImportFallback) == "" {
		return fmt.Errorf("categories.import_fallback cannot be empty")
	}

	return nil
}

// ConfigureLoggingFromConfig builds the application logger described by
// the configuration.
func ConfigureLoggingFromConfig(config *Config) logging.Logger {
	return logging.NewLogrusAdapter(config.Log.Level, config.Log.Format)
}
