package config

import "github.com/caarlos0/env/v11"

type ServerConfig struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	StartingBalance   float64 `env:"STARTING_BALANCE" envDefault:"1000"`
	WinProbability    float64 `env:"WIN_PROBABILITY" envDefault:"0.3"`
	DefaultMultiplier float64 `env:"DEFAULT_MULTIPLIER" envDefault:"2.0"`
	DefaultGameType   string  `env:"DEFAULT_GAME_TYPE" envDefault:"slots"`

	MetricsNamespace string `env:"METRICS_NAMESPACE" envDefault:"cryptospins"`
}

func LoadServer() (ServerConfig, error) {
	var cfg ServerConfig
	err := env.Parse(&cfg)
	return cfg, err
}
