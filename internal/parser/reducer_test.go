package parser

import (
	"errors"
	"testing"

	"github.com/DjordjeVuckovic/shunt-calc/internal/apperr"
	"github.com/DjordjeVuckovic/shunt-calc/internal/token"
	"github.com/DjordjeVuckovic/shunt-calc/internal/types/operator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reduceString(t *testing.T, input string) (Program, error) {
	t.Helper()
	tokens, err := token.NewLexer().Tokenize(input)
	require.NoError(t, err)
	return NewReducer().Reduce(tokens)
}

func TestReducer_Reduce(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "precedence", input: "2+3*4", expected: "2 3 4 * +"},
		{name: "left associative sub", input: "10-3-2", expected: "10 3 - 2 -"},
		{name: "left associative div", input: "8//4//2", expected: "8 4 // 2 //"},
		{name: "pow is left associative", input: "2^3^2", expected: "2 3 ^ 2 ^"},
		{name: "right associative add", input: "1+2+3", expected: "1 2 3 + +"},
		{name: "right associative mul", input: "2*3*4", expected: "2 3 4 * *"},
		{name: "add after sub binds first", input: "2-3+4", expected: "2 3 4 + -"},
		{name: "mul after div binds first", input: "8//2*2", expected: "8 2 2 * //"},
		{name: "mod binds loosest", input: "1+2%3", expected: "1 2 + 3 %"},
		{name: "pow binds tightest", input: "2*3^2", expected: "2 3 2 ^ *"},
		{name: "parenthesis override", input: "(2+3)*4", expected: "2 3 + 4 *"},
		{name: "nested parentheses", input: "((1+2)*(3-4))", expected: "1 2 + 3 4 - *"},
		{name: "redundant parentheses", input: "((7))", expected: "7"},
		{name: "single literal", input: "42", expected: "42"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program, err := reduceString(t, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, program.String())
		})
	}
}

func TestReducer_ExactInstructions(t *testing.T) {
	program, err := reduceString(t, "2+3*4")
	require.NoError(t, err)

	assert.Equal(t, Program{
		Push(2), Push(3), Push(4), Apply(operator.Mul), Apply(operator.Add),
	}, program)
}

func TestReducer_UnclosedParens(t *testing.T) {
	inputs := []string{"(1+2", "1+2)", ")", "(", "((1)", "(1))", "1*(2+(3)"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			program, err := reduceString(t, input)
			require.Error(t, err)
			assert.Nil(t, program)
			assert.True(t, errors.Is(err, apperr.ErrUnclosedParens))

			var pe *apperr.ParseError
			assert.True(t, errors.As(err, &pe))
		})
	}
}

func TestReducer_DrainsOperatorStack(t *testing.T) {
	lines := []string{
		"1", "1+2", "(1+2)*3", "x1f+d10", "b101 ^ 2 % 3", "((1))+((2))*3//4-5^6",
		"7 // 2", "10-3-2", "2-3+4-5",
	}

	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			tokens, err := token.NewLexer().Tokenize(line)
			require.NoError(t, err)

			program, err := NewReducer().Reduce(tokens)
			require.NoError(t, err)

			var literals, operators int
			for _, tok := range tokens {
				switch tok.Type {
				case token.LITERAL:
					literals++
				case token.OPERATOR:
					operators++
				}
			}

			var gotLiterals, gotOperators int
			for _, in := range program {
				switch in.Kind {
				case LITERAL:
					gotLiterals++
				case OPERATOR:
					gotOperators++
				}
			}
			assert.Equal(t, literals, gotLiterals)
			assert.Equal(t, operators, gotOperators, "every operator reaches the output")
		})
	}
}

func TestReducer_UnknownTokenType(t *testing.T) {
	_, err := NewReducer().Reduce([]token.Token{{Type: token.Type(42)}})
	require.Error(t, err)
	assert.False(t, apperr.IsPipeline(err))
}

func TestProgram_String(t *testing.T) {
	p := Program{Push(1), Nop(), Push(2), Apply(operator.Sub)}
	assert.Equal(t, "1 2 -", p.String())
	assert.Equal(t, "NOP", NOP.String())
	assert.Equal(t, "UNKNOWN", Kind(9).String())
}
