package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
	}{
		{
			name:   "development defaults are fine",
			config: Config{Port: "8480", Env: "development", DBPassword: "password"},
		},
		{
			name:        "missing port",
			config:      Config{Env: "development"},
			expectError: true,
		},
		{
			name:        "production with default password",
			config:      Config{Port: "8480", Env: "production", DBPassword: "password"},
			expectError: true,
		},
		{
			name:        "prod alias with empty password",
			config:      Config{Port: "8480", Env: "prod", DBPassword: ""},
			expectError: true,
		},
		{
			name:   "production with real password",
			config: Config{Port: "8480", Env: "production", DBPassword: "s3cure-pass", DBSSLMode: "require"},
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

	os.Setenv("APP_ENV", "test")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8480", cfg.Port)
	assert.Equal(t, "mindcanva", cfg.DBName)
	assert.Equal(t, "test", cfg.Env)
	assert.False(t, cfg.TracingEnabled)
	assert.Equal(t, "stdout", cfg.TracingExport)
	assert.InDelta(t, 0.1, cfg.TraceRatio, 1e-9)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	defer os.Unsetenv("APP_ENV")
	defer os.Unsetenv("PORT")
	defer viper.Reset()

	os.Setenv("APP_ENV", "test")
	os.Setenv("PORT", "9999")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9999", cfg.Port)
}
