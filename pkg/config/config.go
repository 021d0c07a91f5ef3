package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	LogLevel        string `envconfig:"LOG_LEVEL" default:"info"`
	OrderNumberBase int    `envconfig:"ORDER_NUMBER_BASE" default:"1001"`
	CurrencySymbol  string `envconfig:"CURRENCY_SYMBOL" default:"$"`
	SeedMenu        bool   `envconfig:"SEED_MENU" default:"true"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
