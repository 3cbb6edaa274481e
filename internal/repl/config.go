package repl

import "github.com/DjordjeVuckovic/shunt-calc/pkg/config/env"

const (
	DefaultPrompt = ">> "
	clearScreen   = "\x1B[2J"
)

type Config struct {
	Prompt      string
	ClearScreen bool
}

// LoadConfig reads CALC_PROMPT and CALC_CLEAR_SCREEN.
func LoadConfig() Config {
	return Config{
		Prompt:      env.String("CALC_PROMPT", DefaultPrompt),
		ClearScreen: env.Bool("CALC_CLEAR_SCREEN", true),
	}
}
