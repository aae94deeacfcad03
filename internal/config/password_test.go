package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPasswordConfig(t *testing.T) {
	tests := []struct {
		name     string
		cost     int
		pepper   string
		wantCost int
		wantErr  bool
	}{
		{name: "lowest cost", cost: 10, wantCost: 10},
		{name: "default cost", cost: 12, wantCost: 12},
		{name: "highest cost", cost: 14, wantCost: 14},
		{name: "with pepper", cost: 12, pepper: "pepper", wantCost: 12},
		{name: "cost too low", cost: 9, wantErr: true},
		{name: "cost too high", cost: 15, wantErr: true},
		{name: "unset cost", cost: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := NewPasswordConfig(AuthConfig{BcryptCost: tt.cost, PasswordPepper: tt.pepper})
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "must be 10-14")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCost, cfg.BcryptCost)
			assert.Equal(t, tt.pepper, cfg.Pepper)
		})
	}
}

func TestPasswordConfig_HashAndVerify(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	hash, err := cfg.HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	assert.True(t, cfg.VerifyPassword("correct horse", hash))
	assert.False(t, cfg.VerifyPassword("wrong horse", hash))
	assert.False(t, cfg.VerifyPassword("correct horse", "not-a-hash"))
}

func TestPasswordConfig_Pepper(t *testing.T) {
	peppered := &PasswordConfig{BcryptCost: 10, Pepper: "server-secret"}
	plain := &PasswordConfig{BcryptCost: 10}

	hash, err := peppered.HashPassword("correct horse")
	require.NoError(t, err)

	assert.True(t, peppered.VerifyPassword("correct horse", hash))
	assert.False(t, plain.VerifyPassword("correct horse", hash), "hash must not verify without the pepper")
}
