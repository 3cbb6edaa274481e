package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/DjordjeVuckovic/shunt-calc/internal/apperr"
	"github.com/DjordjeVuckovic/shunt-calc/internal/calc"
	"github.com/DjordjeVuckovic/shunt-calc/internal/domain"
	"github.com/DjordjeVuckovic/shunt-calc/internal/storage"
	"github.com/DjordjeVuckovic/shunt-calc/internal/token"
	"github.com/DjordjeVuckovic/shunt-calc/internal/types/operator"
	"github.com/DjordjeVuckovic/shunt-calc/internal/types/value"
)

// FailureMessage is printed for any failed evaluation.
const FailureMessage = "ERROR: failed to evaluate"

const (
	cmdQuit  = ":quit"
	cmdQ     = ":q"
	cmdOps   = ":ops"
	cmdTrace = ":trace"
	cmdHelp  = ":help"
)

// Repl reads one expression per line and prints its value.
type Repl struct {
	calculator *calc.Calculator
	in         io.Reader
	out        io.Writer
	cfg        Config
	recorder   storage.Storer
}

type Option func(*Repl)

// WithRecorder stores every evaluated line.
func WithRecorder(s storage.Storer) Option {
	return func(r *Repl) {
		r.recorder = s
	}
}

func New(calculator *calc.Calculator, in io.Reader, out io.Writer, cfg Config, opts ...Option) *Repl {
	r := &Repl{
		calculator: calculator,
		in:         in,
		out:        out,
		cfg:        cfg,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run loops until EOF, :quit or ctx is done.
func (r *Repl) Run(ctx context.Context) error {
	if r.cfg.ClearScreen {
		fmt.Fprint(r.out, clearScreen)
	}

	scanner := bufio.NewScanner(r.in)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		fmt.Fprint(r.out, r.cfg.Prompt)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			fmt.Fprintln(r.out)
			return nil
		}

		if quit := r.handleLine(ctx, scanner.Text()); quit {
			return nil
		}
	}
}

func (r *Repl) handleLine(ctx context.Context, line string) bool {
	trimmed := strings.TrimSpace(line)

	switch {
	case trimmed == cmdQuit || trimmed == cmdQ:
		return true
	case trimmed == cmdOps:
		r.printOperators()
	case trimmed == cmdHelp:
		r.printHelp()
	case trimmed == cmdTrace || strings.HasPrefix(trimmed, cmdTrace+" "):
		r.trace(ctx, strings.TrimSpace(strings.TrimPrefix(trimmed, cmdTrace)))
	default:
		tr, err := r.calculator.Trace(line)
		r.record(ctx, line, tr.Postfix, tr.Value, err)
		if err != nil {
			slog.Debug("evaluation failed", "input", line, "kind", apperr.KindOf(err), "stage", apperr.StageOf(err), "error", err)
			fmt.Fprintln(r.out, FailureMessage)
			return false
		}
		fmt.Fprintf(r.out, "= %s\n", value.Format(tr.Value))
	}
	return false
}

func (r *Repl) trace(ctx context.Context, expr string) {
	tr, err := r.calculator.Trace(expr)
	r.record(ctx, expr, tr.Postfix, tr.Value, err)

	if tr.Tokens != nil {
		fmt.Fprintf(r.out, "tokens:  %s\n", formatTokens(tr.Tokens))
	}
	if tr.Program != nil {
		fmt.Fprintf(r.out, "postfix: %s\n", tr.Postfix)
	}
	if err != nil {
		fmt.Fprintf(r.out, "%s (%s)\n", FailureMessage, err)
		return
	}
	fmt.Fprintf(r.out, "= %s\n", value.Format(tr.Value))
}

func (r *Repl) record(ctx context.Context, expr, postfix string, v value.Value, err error) {
	if r.recorder == nil {
		return
	}
	rec := domain.NewEvaluationRecord(domain.SourceREPL, expr, postfix, v, err)
	if _, serr := r.recorder.Save(ctx, rec); serr != nil {
		slog.Warn("Failed to record evaluation", "error", serr)
	}
}

func (r *Repl) printOperators() {
	w := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "OP\tNAME\tPRECEDENCE\tASSOC")
	for _, op := range operator.All {
		assoc := "left"
		if op.IsRightAssociative() {
			assoc = "right"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", op, op.Name(), op.Precedence(), assoc)
	}
	_ = w.Flush()
}

func (r *Repl) printHelp() {
	fmt.Fprintln(r.out, "enter an expression, e.g. (x1f + 3) // b10")
	fmt.Fprintln(r.out, ":trace <expr>  show tokens and postfix")
	fmt.Fprintln(r.out, ":ops           show the operator table")
	fmt.Fprintln(r.out, ":quit          exit")
}

func formatTokens(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}
