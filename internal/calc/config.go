package calc

import "github.com/DjordjeVuckovic/shunt-calc/pkg/config/env"

type Config struct {
	LegacyDigits bool
}

// LoadConfig reads CALC_LEGACY_DIGITS.
func LoadConfig() Config {
	return Config{
		LegacyDigits: env.Bool("CALC_LEGACY_DIGITS", false),
	}
}

func (c Config) Options() []Option {
	return []Option{WithLegacyDigits(c.LegacyDigits)}
}
