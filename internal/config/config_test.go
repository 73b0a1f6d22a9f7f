package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
	}{
		{
			name:        "Development defaults are acceptable",
			config:      Config{Env: "development", Port: "8480", DBName: "toolhaven", DBPassword: "password"},
			expectError: false,
		},
		{
			name:        "Missing port",
			config:      Config{Env: "development", DBName: "toolhaven"},
			expectError: true,
		},
		{
			name:        "Missing database name",
			config:      Config{Env: "development", Port: "8480"},
			expectError: true,
		},
		{
			name:        "Production with default password",
			config:      Config{Env: "production", Port: "8480", DBName: "toolhaven", DBPassword: "password"},
			expectError: true,
		},
		{
			name:        "Production with empty password",
			config:      Config{Env: "prod", Port: "8480", DBName: "toolhaven", DBPassword: ""},
			expectError: true,
		},
		{
			name:        "Production with strong password",
			config:      Config{Env: "production", Port: "8480", DBName: "toolhaven", DBPassword: "s3cure-and-long", DBSSLMode: "require"},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
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
	assert.NoError(t, err)
	assert.Equal(t, "8480", c.Port)
	assert.Equal(t, "toolhaven", c.DBName)
	assert.Equal(t, "localhost", c.DBHost)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	defer os.Unsetenv("APP_ENV")
	defer os.Unsetenv("DB_NAME")
	defer viper.Reset()

	os.Setenv("APP_ENV", "development")
	os.Setenv("DB_NAME", "toolhaven_test")

	c, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "toolhaven_test", c.DBName)
}
