package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	strongSecret := "secure-secret-at-least-32-chars-long"

	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{"Defaults are valid", func(c *Config) {}, false},
		{"Unknown storage driver", func(c *Config) { c.StorageDriver = "cassandra" }, true},
		{"Redis driver without URL", func(c *Config) { c.StorageDriver = "redis" }, true},
		{"Redis driver with URL", func(c *Config) {
			c.StorageDriver = "redis"
			c.RedisURL = "redis://localhost:6379"
		}, false},
		{"Empty port", func(c *Config) { c.Port = "" }, true},
		{"Production with default secret", func(c *Config) {
			c.Env = "production"
			c.JWTSecret = "your-secret-key-change-in-production"
		}, true},
		{"Production with short secret", func(c *Config) {
			c.Env = "prod"
			c.JWTSecret = "short"
		}, true},
		{"Production with strong secret", func(c *Config) {
			c.Env = "production"
			c.JWTSecret = strongSecret
		}, false},
		{"Development with default secret", func(c *Config) { c.Env = "development" }, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{
				Port:          "8375",
				Env:           "development",
				JWTSecret:     "your-secret-key-change-in-production",
				StorageDriver: "sqlite",
				StorageDSN:    "soulforge.db",
			}
			tt.mutate(c)

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	defer os.Unsetenv("APP_ENV")
	defer viper.Reset()

	os.Setenv("APP_ENV", "development")

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8375", c.Port)
	assert.Equal(t, "sqlite", c.StorageDriver)
	assert.Equal(t, "soulforge.db", c.StorageDSN)
	assert.Equal(t, "587", c.SMTPPort)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	defer os.Unsetenv("APP_ENV")
	defer os.Unsetenv("STORAGE_DRIVER")
	defer viper.Reset()

	os.Setenv("APP_ENV", "development")
	os.Setenv("STORAGE_DRIVER", "memory")

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "memory", c.StorageDriver)
}
