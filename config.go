package main

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/Netflix/go-env"
	"github.com/google/uuid"
)

type Config struct {
	Host              string        `env:"HOST"`
	Port              int           `env:"PORT,default=8080"`
	FilepathRoot      string        `env:"FILEPATH_ROOT,default=./app"`
	LogLevel          string        `env:"LOG_LEVEL,default=INFO"`
	JWTSecret         string        `env:"JWT_SECRET"`
	AdminPasswordHash string        `env:"ADMIN_PASSWORD_HASH"`
	AdminID           string        `env:"ADMIN_ID"`
	TokenDuration     time.Duration `env:"TOKEN_DURATION,default=1h"`
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT,default=10s"`
	ReadTimeout       time.Duration `env:"READ_TIMEOUT,default=30s"`
	WriteTimeout      time.Duration `env:"WRITE_TIMEOUT,default=30s"`
	IdleTimeout       time.Duration `env:"IDLE_TIMEOUT,default=90s"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
}

func loadConfig() (Config, error) {
	es, err := env.EnvironToEnvSet(os.Environ())
	if err != nil {
		return Config{}, err
	}
	return loadConfigFrom(es)
}

func loadConfigFrom(es env.EnvSet) (Config, error) {
	var cfg Config
	if err := env.Unmarshal(es, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	if c.AdminID != "" {
		if _, err := uuid.Parse(c.AdminID); err != nil {
			return fmt.Errorf("ADMIN_ID: %w", err)
		}
	}
	if (c.JWTSecret == "") != (c.AdminPasswordHash == "") {
		return errors.New("JWT_SECRET and ADMIN_PASSWORD_HASH must be set together")
	}
	if c.TokenDuration <= 0 {
		return errors.New("TOKEN_DURATION must be > 0")
	}
	return nil
}

func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c Config) AdminAuthEnabled() bool {
	return c.JWTSecret != "" && c.AdminPasswordHash != ""
}
