// Package config provides application configuration loading and management.
package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration values loaded from file or environment variables.
type Config struct {
	Port           string `mapstructure:"PORT"`
	Env            string `mapstructure:"APP_ENV"`
	JWTSecret      string `mapstructure:"JWT_SECRET"`
	StorageDriver  string `mapstructure:"STORAGE_DRIVER"`
	StorageDSN     string `mapstructure:"STORAGE_DSN"`
	RedisURL       string `mapstructure:"REDIS_URL"`
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS"`

	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     string `mapstructure:"SMTP_PORT"`
	SMTPFrom     string `mapstructure:"SMTP_FROM"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
	ContactTo    string `mapstructure:"CONTACT_TO"`

	ImageGenURL    string `mapstructure:"IMAGEGEN_URL"`
	ImageGenAPIKey string `mapstructure:"IMAGEGEN_API_KEY"`

	// Credential overrides for the static login table. Values may be
	// plaintext or bcrypt hashes (recognized by their $2 prefix).
	AdminPassword   string `mapstructure:"ADMIN_PASSWORD"`
	ShowoffPassword string `mapstructure:"SHOWOFF_PASSWORD"`
}

// LoadConfig loads application configuration from file and environment variables.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AutomaticEnv()

	// The base config file is optional; environment variables alone are fine.
	_ = viper.ReadInConfig()

	env := viper.GetString("APP_ENV")
	if env == "" {
		env = "development"
	}

	if env != "development" && env != "" {
		viper.SetConfigName("config." + env)
		if err := viper.MergeInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("failed to merge profile config 'config.%s.yml': %w", env, err)
			}
		} else {
			log.Printf("Loaded profile-specific configuration: config.%s.yml", env)
		}
	}

	viper.SetDefault("PORT", "8375")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")
	viper.SetDefault("STORAGE_DRIVER", "sqlite")
	viper.SetDefault("STORAGE_DSN", "soulforge.db")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173")
	viper.SetDefault("SMTP_HOST", "")
	viper.SetDefault("SMTP_PORT", "587")
	viper.SetDefault("SMTP_FROM", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("CONTACT_TO", "aashwin504@gmail.com")
	viper.SetDefault("IMAGEGEN_URL", "https://generativelanguage.googleapis.com")
	viper.SetDefault("IMAGEGEN_API_KEY", "")
	viper.SetDefault("ADMIN_PASSWORD", "")
	viper.SetDefault("SHOWOFF_PASSWORD", "")

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks settings that would otherwise only fail at runtime.
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case "sqlite", "postgres", "redis", "memory":
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}
	if c.StorageDriver == "redis" && c.RedisURL == "" {
		return fmt.Errorf("REDIS_URL must be set when STORAGE_DRIVER is redis")
	}
	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}

	env := strings.ToLower(c.Env)
	if env == "production" || env == "prod" {
		if len(c.JWTSecret) < 32 || c.JWTSecret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be a strong value in production")
		}
	}
	return nil
}
