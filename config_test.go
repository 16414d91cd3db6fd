package main

import (
	"testing"
	"time"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	req := require.New(t)
	cfg, err := loadConfigFrom(env.EnvSet{})
	req.NoError(err)
	req.Equal(8080, cfg.Port)
	req.Equal(":8080", cfg.Addr())
	req.Equal("./app", cfg.FilepathRoot)
	req.Equal("INFO", cfg.LogLevel)
	req.Equal(time.Hour, cfg.TokenDuration)
	req.Equal(10*time.Second, cfg.ShutdownTimeout)
	req.False(cfg.AdminAuthEnabled())
}

func TestLoadConfigOverrides(t *testing.T) {
	req := require.New(t)
	cfg, err := loadConfigFrom(env.EnvSet{
		"HOST":                "127.0.0.1",
		"PORT":                "9000",
		"FILEPATH_ROOT":       "/srv/chirpy",
		"JWT_SECRET":          "secret",
		"ADMIN_PASSWORD_HASH": "$argon2id$v=19$m=65536,t=1,p=2$c2FsdA$aGFzaA",
		"ADMIN_ID":            "6f1c2a52-1d2e-4f5a-9d8b-2b6f1f3c9e10",
		"TOKEN_DURATION":      "15m",
	})
	req.NoError(err)
	req.Equal("127.0.0.1:9000", cfg.Addr())
	req.Equal("/srv/chirpy", cfg.FilepathRoot)
	req.Equal(15*time.Minute, cfg.TokenDuration)
	req.True(cfg.AdminAuthEnabled())

	apiCfg, err := newAPIConfig(cfg, nil)
	req.NoError(err)
	req.Equal("6f1c2a52-1d2e-4f5a-9d8b-2b6f1f3c9e10", apiCfg.adminID.String())
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		es   env.EnvSet
	}{
		{"port out of range", env.EnvSet{"PORT": "70000"}},
		{"bad admin id", env.EnvSet{"ADMIN_ID": "not-a-uuid"}},
		{"secret without hash", env.EnvSet{"JWT_SECRET": "secret"}},
		{"hash without secret", env.EnvSet{"ADMIN_PASSWORD_HASH": "hash"}},
		{"zero token duration", env.EnvSet{"TOKEN_DURATION": "0s"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfigFrom(tt.es)
			require.Error(t, err)
		})
	}
}
