package calc

import (
	"github.com/DjordjeVuckovic/shunt-calc/internal/parser"
	"github.com/DjordjeVuckovic/shunt-calc/internal/token"
	"github.com/DjordjeVuckovic/shunt-calc/internal/types/value"
)

type Trace struct {
	Input   string         `json:"input"`
	Tokens  []token.Token  `json:"tokens,omitempty"`
	Program parser.Program `json:"program,omitempty"`
	Postfix string         `json:"postfix,omitempty"`
	Value   value.Value    `json:"value"`
	// Done is set only when every stage succeeded.
	Done bool `json:"done"`
}
