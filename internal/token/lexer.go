package token

import (
	"github.com/DjordjeVuckovic/shunt-calc/internal/apperr"
	"github.com/DjordjeVuckovic/shunt-calc/internal/types/operator"
	"github.com/DjordjeVuckovic/shunt-calc/internal/types/value"
)

// DigitTable maps a byte to its digit value. A byte is a digit in base b only
// if it is in the table and its value is below b.
type DigitTable map[byte]int64

// StandardDigits is the contiguous 0-9, a-f table.
var StandardDigits = DigitTable{
	'0': 0, '1': 1, '2': 2, '3': 3, '4': 4,
	'5': 5, '6': 6, '7': 7, '8': 8, '9': 9,
	'a': 10, 'b': 11, 'c': 12, 'd': 13, 'e': 14, 'f': 15,
}

// LegacyDigits is the historical table that skips 13: 'd' is 14, 'e' is 15
// and 'f' is 16, so 'f' is never a hex digit. Kept for compatibility.
var LegacyDigits = DigitTable{
	'0': 0, '1': 1, '2': 2, '3': 3, '4': 4,
	'5': 5, '6': 6, '7': 7, '8': 8, '9': 9,
	'a': 10, 'b': 11, 'c': 12, 'd': 14, 'e': 15, 'f': 16,
}

func (t DigitTable) digit(c byte, base int64) (int64, bool) {
	d, ok := t[c]
	if !ok || d >= base {
		return 0, false
	}
	return d, true
}

// Lexer converts one line of expression text into tokens.
//
// Grammar: numerals are bare decimal digits or a base prefix followed by
// digits (b = 2, d = 10, x = 16); operators are + - * % ^ and //; parentheses
// group. Spaces and tabs separate, a newline or carriage return ends the line.
type Lexer struct {
	digits DigitTable
}

type LexerOption func(*Lexer)

func WithDigitTable(t DigitTable) LexerOption {
	return func(l *Lexer) {
		l.digits = t
	}
}

func NewLexer(opts ...LexerOption) *Lexer {
	l := &Lexer{digits: StandardDigits}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Tokenize converts the input string into a slice of Tokens.
// Example: Input: `(x1f + 3) // b10`
func (l *Lexer) Tokenize(input string) ([]Token, error) {
	c := NewCursor(input)
	tokens := make([]Token, 0)

	for {
		ch, ok := c.Advance()
		if !ok {
			return tokens, nil
		}

		switch ch {
		case 'b', 'd', 'x':
			lit, err := l.parseNumeral(c, prefixBase(ch))
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, Literal(lit))
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			c.Pause()
			lit, err := l.parseNumeral(c, 10)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, Literal(lit))
		case '+':
			tokens = append(tokens, BinaryOp(operator.Add))
		case '*':
			tokens = append(tokens, BinaryOp(operator.Mul))
		case '-':
			tokens = append(tokens, BinaryOp(operator.Sub))
		case '%':
			tokens = append(tokens, BinaryOp(operator.Mod))
		case '^':
			tokens = append(tokens, BinaryOp(operator.Pow))
		case '/':
			// a single slash is reserved; only // is division
			next, ok := c.Advance()
			if !ok {
				return nil, apperr.NewBadChar('/')
			}
			if next != '/' {
				return nil, apperr.NewBadChar(next)
			}
			tokens = append(tokens, BinaryOp(operator.Div))
		case '(':
			tokens = append(tokens, ParenOpen())
		case ')':
			tokens = append(tokens, ParenClose())
		case ' ', '\t':
		case '\n', '\r':
			return tokens, nil
		default:
			return nil, apperr.NewBadChar(ch)
		}
	}
}

// parseNumeral reads digits of the given base starting at the cursor's next
// byte. The first non-digit is left for the caller to re-read.
func (l *Lexer) parseNumeral(c *Cursor, base int64) (value.Value, error) {
	var lit int64
	count := 0

	for {
		ch, ok := c.Advance()
		if !ok {
			break
		}
		d, ok := l.digits.digit(ch, base)
		if !ok {
			break
		}
		lit = lit*base + d
		if !value.Fits(lit) {
			return 0, apperr.NewFailedNumLit()
		}
		count++
	}
	c.Pause()

	if count == 0 {
		return 0, apperr.NewFailedNumLit()
	}
	return value.Value(lit), nil
}

func prefixBase(ch byte) int64 {
	switch ch {
	case 'b':
		return 2
	case 'x':
		return 16
	default:
		return 10
	}
}

var _ Tokenizer = (*Lexer)(nil)
