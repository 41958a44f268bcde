// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Data struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"data" yaml:"data"`

	Report struct {
		Months        int `mapstructure:"months" yaml:"months"`
		TopCategories int `mapstructure:"top_categories" yaml:"top_categories"`
	} `mapstructure:"report" yaml:"report"`

	Interpreter struct {
		SynonymsFile string `mapstructure:"synonyms_file" yaml:"synonyms_file"`
	} `mapstructure:"interpreter" yaml:"interpreter"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.finance-tracker")
	v.AddConfigPath(".finance-tracker")
	v.AddConfigPath(".")

	v.SetEnvPrefix("FINANCE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("data.file", "finance-data.json")

	v.SetDefault("report.months", 6)
	v.SetDefault("report.top_categories", 5)

	v.SetDefault("interpreter.synonyms_file", "")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Data.File == "" {
		return fmt.Errorf("data.file must not be empty")
	}

	if config.Report.Months < 1 || config.Report.Months > 24 {
		return fmt.Errorf("report.months must be between 1 and 24, got: %d", config.Report.Months)
	}

	if config.Report.TopCategories < 1 || config.Report.TopCategories > 20 {
		return fmt.Errorf("report.top_categories must be between 1 and 20, got: %d", config.Report.TopCategories)
	}

	return nil
}

// ConfigureLogging builds the shared logger from the Config struct
func ConfigureLogging(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
