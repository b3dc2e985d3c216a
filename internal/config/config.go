// Package config содержит логику чтения конфигурации витрины магазина.
package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config содержит параметры конфигурации витрины магазина.
type Config struct {
	StoreName       string        `env:"STORE_NAME"`
	Currency        string        `env:"CURRENCY"`
	SessionSecret   string        `env:"SESSION_SECRET"`
	MetricsInterval time.Duration `env:"METRICS_INTERVAL"`
}

// Parse считывает конфигурацию из флагов командной строки и переменных окружения.
func Parse() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	envStoreName := cfg.StoreName
	envCurrency := cfg.Currency
	envSessionSecret := cfg.SessionSecret
	envMetricsInterval := cfg.MetricsInterval

	flag.StringVar(&cfg.StoreName, "n", "PharmaMart", "store display name")
	flag.StringVar(&cfg.Currency, "c", "USD", "display currency code")
	flag.StringVar(&cfg.SessionSecret, "s", "", "secret key for session tokens")
	flag.DurationVar(&cfg.MetricsInterval, "m", 30*time.Second, "metrics report interval")

	flag.Parse()

	if envStoreName != "" {
		cfg.StoreName = envStoreName
	}
	if envCurrency != "" {
		cfg.Currency = envCurrency
	}
	if envSessionSecret != "" {
		cfg.SessionSecret = envSessionSecret
	}
	if envMetricsInterval != 0 {
		cfg.MetricsInterval = envMetricsInterval
	}

	if cfg.StoreName == "" {
		cfg.StoreName = "PharmaMart"
	}
	if cfg.Currency == "" {
		cfg.Currency = "USD"
	}

	return cfg, nil
}
