package eval

import (
	"fmt"

	"github.com/DjordjeVuckovic/shunt-calc/internal/apperr"
	"github.com/DjordjeVuckovic/shunt-calc/internal/parser"
	"github.com/DjordjeVuckovic/shunt-calc/internal/types/operator"
	"github.com/DjordjeVuckovic/shunt-calc/internal/types/value"
)

// Evaluator runs postfix programs on a fresh operand stack per call.
type Evaluator struct{}

func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate executes program left to right and returns the single value left
// on the stack.
func (e *Evaluator) Evaluate(program parser.Program) (value.Value, error) {
	if len(program) == 0 {
		return 0, apperr.NewEval(apperr.ErrEmpty)
	}

	stack := make([]value.Value, 0, len(program))

	for _, in := range program {
		switch in.Kind {
		case parser.LITERAL:
			stack = append(stack, in.Literal)
		case parser.OPERATOR:
			if len(stack) < 2 {
				return 0, apperr.NewEval(apperr.ErrTooFewArgs)
			}
			// the operand pushed last is the right-hand side
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			stack = stack[:len(stack)-2]

			res, err := Apply(in.Op, a, b)
			if err != nil {
				return 0, err
			}
			stack = append(stack, res)
		case parser.NOP:
		default:
			return 0, fmt.Errorf("evaluate: unexpected instruction kind %s", in.Kind)
		}
	}

	if len(stack) != 1 {
		return 0, &apperr.EvalError{
			Err:    apperr.ErrNonSingular,
			Detail: fmt.Sprintf("%d values left on the stack", len(stack)),
		}
	}
	return stack[0], nil
}

// Apply computes a op b. Results that do not fit a Value are reported as
// apperr.ErrBadCalculation rather than wrapping around.
func Apply(op operator.Operator, a, b value.Value) (value.Value, error) {
	x, y := int64(a), int64(b)
	var res int64

	switch op {
	case operator.Add:
		res = x + y
	case operator.Sub:
		res = x - y
	case operator.Mul:
		res = x * y
	case operator.Mod:
		if y == 0 {
			return 0, apperr.NewBadCalculation("modulo by zero")
		}
		res = x % y
	case operator.Div:
		if y == 0 {
			return 0, apperr.NewBadCalculation("division by zero")
		}
		res = x / y
	case operator.Pow:
		if y < 0 {
			return 0, apperr.NewBadCalculation("negative exponent")
		}
		p, ok := pow(x, y)
		if !ok {
			return 0, apperr.NewBadCalculation(fmt.Sprintf("%d ^ %d overflows", a, b))
		}
		res = p
	default:
		return 0, fmt.Errorf("evaluate: unknown operator %q", op)
	}

	if !value.Fits(res) {
		return 0, apperr.NewBadCalculation(fmt.Sprintf("%d %s %d overflows", a, op, b))
	}
	return value.Value(res), nil
}

// pow is exponentiation by squaring that gives up as soon as an intermediate
// leaves the Value range.
func pow(base, exp int64) (int64, bool) {
	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
			if !value.Fits(result) {
				return 0, false
			}
		}
		exp >>= 1
		if exp > 0 {
			base *= base
			if !value.Fits(base) {
				return 0, false
			}
		}
	}
	return result, true
}
