package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTConfig(t *testing.T) {
	secret := strings.Repeat("s", 32)

	tests := []struct {
		name          string
		auth          AuthConfig
		expectedHours int
		wantErr       string
	}{
		{
			name:          "valid",
			auth:          AuthConfig{JWTSecret: secret, JWTExpirationHours: 24},
			expectedHours: 24,
		},
		{
			name:          "one hour is the minimum",
			auth:          AuthConfig{JWTSecret: secret, JWTExpirationHours: 1},
			expectedHours: 1,
		},
		{
			name:    "missing secret",
			auth:    AuthConfig{JWTExpirationHours: 24},
			wantErr: "JWT_SECRET is required",
		},
		{
			name:    "short secret",
			auth:    AuthConfig{JWTSecret: "too-short", JWTExpirationHours: 24},
			wantErr: "at least 32 bytes",
		},
		{
			name:    "zero expiration",
			auth:    AuthConfig{JWTSecret: secret},
			wantErr: "JWT_EXPIRATION_HOURS",
		},
		{
			name:    "negative expiration",
			auth:    AuthConfig{JWTSecret: secret, JWTExpirationHours: -5},
			wantErr: "JWT_EXPIRATION_HOURS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := NewJWTConfig(tt.auth)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, secret, cfg.Secret)
			assert.Equal(t, tt.expectedHours, cfg.ExpirationHours)
		})
	}
}
