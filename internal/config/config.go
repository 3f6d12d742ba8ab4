// Package config provides YAML-based configuration loading for Chantier.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the top-level Chantier configuration, loaded from chantier.yaml.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Storage  StorageConfig  `yaml:"storage"`
	Session  SessionConfig  `yaml:"session"`
	Notify   NotifyConfig   `yaml:"notify"`
	Admin    AdminConfig    `yaml:"admin"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// DatabaseConfig holds connection settings for the MySQL server.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

// StorageConfig holds document object-storage settings.
type StorageConfig struct {
	Dir     string `yaml:"dir"`      // root directory for stored objects
	BaseURL string `yaml:"base_url"` // public URL prefix for served objects
}

// SessionConfig holds admin session settings.
type SessionConfig struct {
	TTLHours int `yaml:"ttl_hours"`
}

// NotifyConfig holds outbound notification settings. All fields are
// optional; an empty platform section disables that notifier.
type NotifyConfig struct {
	Slack   SlackConfig   `yaml:"slack"`
	Discord DiscordConfig `yaml:"discord"`
}

// SlackConfig holds Slack notifier credentials.
type SlackConfig struct {
	BotToken  string `yaml:"bot_token"`
	ChannelID string `yaml:"channel_id"`
}

// DiscordConfig holds Discord notifier credentials.
type DiscordConfig struct {
	BotToken  string `yaml:"bot_token"`
	ChannelID string `yaml:"channel_id"`
}

// AdminConfig holds the seed admin account.
type AdminConfig struct {
	Email string `yaml:"email"`
}

// Load reads a YAML config file from path and returns a validated Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse unmarshals YAML bytes into a validated Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults fills in derived and default values.
func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Database.Host == "" {
		c.Database.Host = "127.0.0.1"
	}
	if c.Database.Port == 0 {
		c.Database.Port = 3306
	}
	if c.Database.User == "" {
		c.Database.User = "root"
	}
	if c.Database.Database == "" {
		c.Database.Database = "chantier"
	}
	if c.Storage.Dir == "" {
		c.Storage.Dir = "uploads"
	}
	if c.Storage.BaseURL == "" {
		c.Storage.BaseURL = fmt.Sprintf("http://localhost:%d/files", c.Server.Port)
	}
	if c.Session.TTLHours == 0 {
		c.Session.TTLHours = 24
	}
}

// validate checks that all required fields are present and consistent.
func (c *Config) validate() error {
	var errs []string
	if c.Admin.Email == "" {
		errs = append(errs, "admin.email is required")
	}
	if c.Session.TTLHours < 0 {
		errs = append(errs, "session.ttl_hours must not be negative")
	}
	if c.Notify.Slack.BotToken != "" && c.Notify.Slack.ChannelID == "" {
		errs = append(errs, "notify.slack.channel_id is required when bot_token is set")
	}
	if c.Notify.Discord.BotToken != "" && c.Notify.Discord.ChannelID == "" {
		errs = append(errs, "notify.discord.channel_id is required when bot_token is set")
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
