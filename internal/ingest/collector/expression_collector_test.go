package collector

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/shunt-calc/internal/calc"
	"github.com/DjordjeVuckovic/shunt-calc/internal/domain"
	"github.com/DjordjeVuckovic/shunt-calc/internal/ingest/reader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpressionCollector_Collect(t *testing.T) {
	input := "2+3*4\n5//0\n(1+2\nx1f+d10\n"
	c := NewExpressionCollector(reader.NewTextReader(strings.NewReader(input)), calc.New(), WithWorkers(3))

	ch, err := c.Collect(context.Background())
	require.NoError(t, err)

	var got []Evaluated
	for res := range ch {
		require.NoError(t, res.Err)
		got = append(got, res.Result)
	}
	require.Len(t, got, 4)

	sort.Slice(got, func(i, j int) bool { return got[i].Line < got[j].Line })

	require.NotNil(t, got[0].Record.Value)
	assert.Equal(t, int32(14), *got[0].Record.Value)
	assert.Equal(t, "2 3 4 * +", got[0].Record.Postfix)
	assert.Equal(t, domain.SourceBatch, got[0].Record.Source)

	assert.Equal(t, "bad_calculation", got[1].Record.ErrorKind)
	assert.Equal(t, "unclosed_parens", got[2].Record.ErrorKind)

	require.NotNil(t, got[3].Record.Value)
	assert.Equal(t, int32(41), *got[3].Record.Value)
}

func TestExpressionCollector_ReaderErrorsPassThrough(t *testing.T) {
	input := "expression\n1+1\n"
	c := NewExpressionCollector(reader.NewCSVReader(strings.NewReader(input), "missing"), calc.New())

	_, err := c.Collect(context.Background())
	assert.Error(t, err)
}

func TestExpressionCollector_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	c := NewExpressionCollector(reader.NewTextReader(strings.NewReader(strings.Repeat("1+1\n", 1000))), calc.New(),
		WithWorkers(2), WithSource(domain.SourceBench))

	ch, err := c.Collect(ctx)
	require.NoError(t, err)

	first := <-ch
	assert.Equal(t, domain.SourceBench, first.Result.Record.Source)
	cancel()

	for range ch {
	}
}
