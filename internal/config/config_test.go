package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_ValidateStorageDriver(t *testing.T) {
	tests := []struct {
		name        string
		driver      string
		env         string
		expectError bool
	}{
		{"sqlite accepted", "sqlite", "development", false},
		{"postgres accepted", "postgres", "development", false},
		{"redis accepted", "redis", "development", false},
		{"memory accepted in development", "memory", "development", false},
		{"memory rejected in production", "memory", "production", true},
		{"unknown driver rejected", "cassandra", "development", true},
		{"empty driver rejected", "", "development", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{
				Port:          "8390",
				Env:           tt.env,
				StorageDriver: tt.driver,
				SQLitePath:    "sharebite.db",
				DBPassword:    "secure-password",
				DBSSLMode:     "require",
				RedisURL:      "localhost:6379",
			}

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_ValidateRequiredPaths(t *testing.T) {
	c := &Config{Port: "8390", Env: "development", StorageDriver: "sqlite"}
	assert.Error(t, c.Validate(), "sqlite driver without a path should be rejected")

	c = &Config{Port: "8390", Env: "development", StorageDriver: "redis"}
	assert.Error(t, c.Validate(), "redis driver without a URL should be rejected")

	c = &Config{Env: "development", StorageDriver: "memory"}
	assert.Error(t, c.Validate(), "missing port should be rejected")
}

func TestLoadConfig_DriverNormalization(t *testing.T) {
	defer os.Unsetenv("APP_ENV")
	defer os.Unsetenv("STORAGE_DRIVER")
	defer viper.Reset()

	os.Setenv("APP_ENV", "development")
	os.Setenv("STORAGE_DRIVER", "  SQLITE  ")

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", c.StorageDriver)
}
