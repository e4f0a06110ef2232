package main

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// DEMO_COLOURS enables colorized section headers; narration itself is
	// never colored so demo output stays byte-stable for tests and pipes.
	Colours bool `envconfig:"DEMO_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
