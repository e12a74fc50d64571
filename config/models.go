package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Storage  StorageConfig  `mapstructure:"storage"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Reminder ReminderConfig `mapstructure:"reminder"`
	Session  SessionConfig  `mapstructure:"session"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// Validate ensures required fields are present.
func (c Config) Validate() error {
	if c.Server.Port == 0 {
		return errors.New("server.port is required")
	}
	if c.Storage.DataFile == "" || c.Storage.ConfigFile == "" {
		return errors.New("storage file paths are required")
	}
	if c.Reminder.Schedule == "" {
		return errors.New("reminder.schedule is required")
	}
	if c.Session.TTL <= 0 {
		return errors.New("session.ttl must be positive")
	}
	return nil
}

// ServerAddr returns host:port for HTTP server binding.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ServerConfig contains HTTP server options.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// HTTPConfig contains transport settings.
type HTTPConfig struct {
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// LoggingConfig contains logger preferences.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// StorageConfig locates the two persisted JSON documents.
type StorageConfig struct {
	DataFile   string `mapstructure:"data_file"`
	ConfigFile string `mapstructure:"config_file"`
}

// ReminderConfig describes the reminder cadence and message text.
// Schedule is a cron expression evaluated in server local time.
type ReminderConfig struct {
	Schedule string `mapstructure:"schedule"`
	Message  string `mapstructure:"message"`
}

// SessionConfig bounds the lifetime of in-progress manual-pick sessions.
type SessionConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}
