package constants

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// octave of middle C, MIDI key 60
const DefaultOctave = 4

const DefaultVelocity = 100

type Config struct {
	Port        int      `env:"HARMONICS_PORT"         envDefault:"8080"`
	Octave      int      `env:"HARMONICS_OCTAVE"       envDefault:"4"`
	Velocity    uint8    `env:"HARMONICS_VELOCITY"     envDefault:"100"`
	Channel     uint8    `env:"HARMONICS_CHANNEL"      envDefault:"0"`
	FixVII7     bool     `env:"HARMONICS_FIX_VII7"     envDefault:"false"`
	CorsOrigins []string `env:"HARMONICS_CORS_ORIGINS" envDefault:"*" envSeparator:","`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Channel > 15 {
		return Config{}, fmt.Errorf("HARMONICS_CHANNEL must be 0-15, got %v", cfg.Channel)
	}
	if cfg.Velocity > 127 {
		return Config{}, fmt.Errorf("HARMONICS_VELOCITY must be 0-127, got %v", cfg.Velocity)
	}
	return cfg, nil
}
