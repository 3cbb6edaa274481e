package main

import (
	"bytes"
	"testing"

	"github.com/DjordjeVuckovic/shunt-calc/internal/apperr"
	"github.com/DjordjeVuckovic/shunt-calc/internal/domain"
	"github.com/DjordjeVuckovic/shunt-calc/internal/ingest"
	"github.com/DjordjeVuckovic/shunt-calc/internal/ingest/collector"
	"github.com/DjordjeVuckovic/shunt-calc/internal/ingest/reader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintResults_InputOrder(t *testing.T) {
	evaluated := []collector.Evaluated{
		{Line: 3, Record: domain.NewEvaluationRecord(domain.SourceBatch, "5//0", "5 0 //", 0, apperr.NewBadCalculation("division by zero"))},
		{Line: 1, Record: domain.NewEvaluationRecord(domain.SourceBatch, "2+3*4", "2 3 4 * +", 14, nil)},
	}

	var buf bytes.Buffer
	printResults(&buf, evaluated)

	assert.Equal(t, "1: 2+3*4 = 14\n3: 5//0 ERROR bad_calculation\n", buf.String())
}

func TestPrintStats(t *testing.T) {
	var buf bytes.Buffer
	printStats(&buf, ingest.Stats{
		Read: 3, Succeeded: 1, Failed: 2, Saved: 3,
		ErrorsByKind: map[string]int{"too_few_args": 1, "bad_char": 1},
	})

	assert.Equal(t,
		"read=3 succeeded=1 failed=2 read_errors=0 saved=3 save_errors=0\n  bad_char=1\n  too_few_args=1\n",
		buf.String())
}

func TestCliConfig_Format(t *testing.T) {
	f, err := cliConfig{InputPath: "exprs.csv"}.format()
	require.NoError(t, err)
	assert.Equal(t, reader.FormatCSV, f)

	f, err = cliConfig{InputPath: "exprs.csv", Format: "text"}.format()
	require.NoError(t, err)
	assert.Equal(t, reader.FormatText, f)

	_, err = cliConfig{Format: "xml"}.format()
	assert.Error(t, err)
}
