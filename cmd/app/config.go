package main

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/spf13/viper"
	"github.com/sushihentaime/blogist/internal/common"
)

type Config struct {
	Port        string `mapstructure:"PORT"`
	Environment string `mapstructure:"ENVIRONMENT"`
	Version     string `mapstructure:"VERSION"`

	TLSCertFile string `mapstructure:"TLS_CERT_FILE"`
	TLSKeyFile  string `mapstructure:"TLS_KEY_FILE"`

	DB struct {
		URL          string        `mapstructure:"DATABASE_URL"`
		MaxOpenConns int           `mapstructure:"DB_MAX_OPEN_CONNS"`
		MaxIdleConns int           `mapstructure:"DB_MAX_IDLE_CONNS"`
		MaxIdleTime  time.Duration `mapstructure:"DB_MAX_IDLE_TIME"`
	} `mapstructure:",squash"`

	RabbitMQ struct {
		URL string `mapstructure:"RABBITMQ_URL"`
	} `mapstructure:",squash"`
}

var configDefaults = map[string]any{
	"PORT":              "8000",
	"ENVIRONMENT":       "development",
	"VERSION":           "1.0.0",
	"TLS_CERT_FILE":     "",
	"TLS_KEY_FILE":      "",
	"DATABASE_URL":      common.DefaultDatabaseURL,
	"DB_MAX_OPEN_CONNS": 10,
	"DB_MAX_IDLE_CONNS": 5,
	"DB_MAX_IDLE_TIME":  "15m",
	"RABBITMQ_URL":      "",
}

// loadConfig reads the optional env file at path. Process environment
// variables take precedence over the file, and unset keys fall back to
// configDefaults.
func loadConfig(path string) (*Config, error) {
	v := viper.New()

	for key, value := range configDefaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if path != "" {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			v.SetConfigFile(path)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, err
			}
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
