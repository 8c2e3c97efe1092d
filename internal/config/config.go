package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all server configuration values.
type Config struct {
	AppPort string `mapstructure:"APP_PORT"`
	Env     string `mapstructure:"ENV"`

	// Upload surface.
	UploadDir    string `mapstructure:"UPLOAD_DIR"`
	CSVDelimiter string `mapstructure:"CSV_DELIMITER"`

	// Engine defaults. MERGE_CAP_MINUTES of 0 leaves merged blocks
	// uncapped.
	MergeCapMinutes int `mapstructure:"MERGE_CAP_MINUTES"`

	// Grid window served to renderers.
	GridFirstHour  int `mapstructure:"GRID_FIRST_HOUR"`
	GridRowMinutes int `mapstructure:"GRID_ROW_MINUTES"`
	GridRowCount   int `mapstructure:"GRID_ROW_COUNT"`
}

// Load reads config.yaml (current dir or ./config) and the environment.
// A missing config file is fine; defaults plus environment variables
// cover everything.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "3001")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("UPLOAD_DIR", "db")
	viper.SetDefault("CSV_DELIMITER", ",")
	viper.SetDefault("MERGE_CAP_MINUTES", 0)
	viper.SetDefault("GRID_FIRST_HOUR", 7)
	viper.SetDefault("GRID_ROW_MINUTES", 30)
	viper.SetDefault("GRID_ROW_COUNT", 28)

	_ = viper.ReadInConfig()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

// Delim returns the CSV delimiter as a rune, defaulting to a comma when
// the configured value is empty.
func (c *Config) Delim() rune {
	if c.CSVDelimiter == "" {
		return ','
	}
	return []rune(c.CSVDelimiter)[0]
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
