package repl

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/shunt-calc/internal/calc"
	"github.com/DjordjeVuckovic/shunt-calc/internal/domain"
	"github.com/DjordjeVuckovic/shunt-calc/internal/storage/in_mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, input string, cfg Config, opts ...Option) string {
	t.Helper()
	var out bytes.Buffer
	r := New(calc.New(), strings.NewReader(input), &out, cfg, opts...)
	require.NoError(t, r.Run(context.Background()))
	return out.String()
}

func TestRepl_Evaluates(t *testing.T) {
	out := run(t, "2+3*4\n(2+3)*4\n5//0\n5/2\n", Config{Prompt: ">> ", ClearScreen: true})

	assert.True(t, strings.HasPrefix(out, "\x1B[2J>> "))
	assert.Contains(t, out, "= 14\n")
	assert.Contains(t, out, "= 20\n")
	assert.Equal(t, 2, strings.Count(out, FailureMessage+"\n"))
	// one prompt per line plus the one answered by EOF
	assert.Equal(t, 5, strings.Count(out, ">> "))
}

func TestRepl_NoClearScreen(t *testing.T) {
	out := run(t, "1\n", Config{Prompt: "calc> "})

	assert.Equal(t, "calc> = 1\ncalc> \n", out)
}

func TestRepl_Quit(t *testing.T) {
	out := run(t, "1+1\n:quit\n2+2\n", Config{})

	assert.Contains(t, out, "= 2\n")
	assert.NotContains(t, out, "= 4")
}

func TestRepl_Trace(t *testing.T) {
	out := run(t, ":trace x1f+d10\n:trace (1\n", Config{})

	assert.Contains(t, out, "tokens:  31 + 10\n")
	assert.Contains(t, out, "postfix: 31 10 +\n")
	assert.Contains(t, out, "= 41\n")
	assert.Contains(t, out, "tokens:  ( 1\n")
	assert.Contains(t, out, FailureMessage+" (parse: ")
}

func TestRepl_Operators(t *testing.T) {
	out := run(t, ":ops\n", Config{})

	assert.Contains(t, out, "OP")
	assert.Contains(t, out, "div")
	assert.Contains(t, out, "right")
}

func TestRepl_Help(t *testing.T) {
	out := run(t, ":help\n", Config{})
	assert.Contains(t, out, ":trace <expr>")
}

func TestRepl_Recorder(t *testing.T) {
	store := in_mem.NewInMemStorer()
	run(t, "6*7\n1 2\n", Config{}, WithRecorder(store))

	recs := store.All()
	require.Len(t, recs, 2)
	for _, rec := range recs {
		assert.Equal(t, domain.SourceREPL, rec.Source)
	}
	var kinds []string
	for _, rec := range recs {
		kinds = append(kinds, rec.ErrorKind)
	}
	assert.Contains(t, kinds, "non_singular")
}

func TestRepl_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	r := New(calc.New(), strings.NewReader("1\n"), &out, Config{Prompt: ">> "})
	require.NoError(t, r.Run(ctx))
	assert.Empty(t, out.String())
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("CALC_PROMPT", "")
	t.Setenv("CALC_CLEAR_SCREEN", "")
	cfg := LoadConfig()
	assert.Equal(t, DefaultPrompt, cfg.Prompt)
	assert.True(t, cfg.ClearScreen)

	t.Setenv("CALC_PROMPT", "$ ")
	t.Setenv("CALC_CLEAR_SCREEN", "false")
	cfg = LoadConfig()
	assert.Equal(t, "$ ", cfg.Prompt)
	assert.False(t, cfg.ClearScreen)
}
