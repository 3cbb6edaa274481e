package calc

import (
	"log/slog"

	"github.com/DjordjeVuckovic/shunt-calc/internal/eval"
	"github.com/DjordjeVuckovic/shunt-calc/internal/parser"
	"github.com/DjordjeVuckovic/shunt-calc/internal/token"
	"github.com/DjordjeVuckovic/shunt-calc/internal/types/value"
)

// Calculator runs one line of text through lex, reduce and evaluate.
// It holds no per-call state and is safe for concurrent use.
type Calculator struct {
	tokenizer token.Tokenizer
	reducer   *parser.Reducer
	evaluator *eval.Evaluator
}

type Option func(*Calculator)

func WithTokenizer(t token.Tokenizer) Option {
	return func(c *Calculator) {
		c.tokenizer = t
	}
}

// WithLegacyDigits switches the lexer to the digit table where 'f' is 16.
func WithLegacyDigits(enabled bool) Option {
	return func(c *Calculator) {
		if enabled {
			c.tokenizer = token.NewLexer(token.WithDigitTable(token.LegacyDigits))
		}
	}
}

func New(opts ...Option) *Calculator {
	c := &Calculator{
		tokenizer: token.NewLexer(),
		reducer:   parser.NewReducer(),
		evaluator: eval.NewEvaluator(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Evaluate returns the value of the expression on a single line.
// The first failing stage aborts the pipeline.
func (c *Calculator) Evaluate(text string) (value.Value, error) {
	tr, err := c.Trace(text)
	if err != nil {
		return 0, err
	}
	return tr.Value, nil
}

// Trace is like Evaluate but keeps every intermediate stage. On error the
// stages completed before the failure are still filled in.
func (c *Calculator) Trace(text string) (*Trace, error) {
	tr := &Trace{Input: text}

	tokens, err := c.tokenizer.Tokenize(text)
	if err != nil {
		slog.Debug("tokenize failed", "input", text, "error", err)
		return tr, err
	}
	tr.Tokens = tokens

	program, err := c.reducer.Reduce(tokens)
	if err != nil {
		slog.Debug("reduce failed", "input", text, "error", err)
		return tr, err
	}
	tr.Program = program
	tr.Postfix = program.String()

	v, err := c.evaluator.Evaluate(program)
	if err != nil {
		slog.Debug("evaluate failed", "input", text, "postfix", tr.Postfix, "error", err)
		return tr, err
	}
	tr.Value = v
	tr.Done = true

	return tr, nil
}
