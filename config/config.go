// Package config loads application configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envFile = "config/.env"

// NewConfig loads configuration from environment using viper with typed defaults and validation.
func NewConfig() (*Config, error) {
	v := viper.New()
	if envMap, err := godotenv.Read(envFile); err == nil {
		for k, v := range envMap {
			if _, exists := os.LookupEnv(k); !exists {
				_ = os.Setenv(k, v)
			}
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindEnvs(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "debug")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("http.request_timeout", 3*time.Second)

	v.SetDefault("storage.data_file", "data/duty_data.json")
	v.SetDefault("storage.config_file", "data/duty_config.json")

	// Mon/Wed/Fri at 09:00 local time, same cadence the bot always ran.
	v.SetDefault("reminder.schedule", "0 9 * * MON,WED,FRI")
	v.SetDefault("reminder.message", "Today is your duty day")

	v.SetDefault("session.ttl", 10*time.Minute)
}

func bindEnvs(v *viper.Viper) {
	keys := []string{
		"logging.level",
		"server.host",
		"server.port",
		"server.shutdown_timeout",
		"http.request_timeout",
		"storage.data_file",
		"storage.config_file",
		"reminder.schedule",
		"reminder.message",
		"session.ttl",
	}

	for _, k := range keys {
		_ = v.BindEnv(k)
	}
}
