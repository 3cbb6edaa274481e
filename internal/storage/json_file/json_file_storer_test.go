package json_file

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/DjordjeVuckovic/shunt-calc/internal/apperr"
	"github.com/DjordjeVuckovic/shunt-calc/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJsonFileStorer_SaveAndReadBack(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "evaluations.jsonl")

	s, err := NewJsonFileStorer(path)
	require.NoError(t, err)

	ok := domain.NewEvaluationRecord(domain.SourceBatch, "2+3*4", "2 3 4 * +", 14, nil)
	id, err := s.Save(ctx, ok)
	require.NoError(t, err)
	assert.Equal(t, ok.ID, id)

	failed := domain.NewEvaluationRecord(domain.SourceBatch, "(1", "", 0, apperr.NewUnclosedParens())
	noID := domain.NewEvaluationRecord(domain.SourceBatch, "7", "7", 7, nil)
	noID.ID = uuid.Nil
	require.NoError(t, s.SaveBulk(ctx, []domain.EvaluationRecord{failed, noID}))

	recs, err := ReadAll(path)
	require.NoError(t, err)
	require.Len(t, recs, 3)

	assert.Equal(t, "2+3*4", recs[0].Expression)
	require.NotNil(t, recs[0].Value)
	assert.Equal(t, int32(14), *recs[0].Value)

	assert.Equal(t, "unclosed_parens", recs[1].ErrorKind)
	assert.Equal(t, "parse", recs[1].ErrorStage)
	assert.Nil(t, recs[1].Value)

	assert.NotEqual(t, uuid.Nil, recs[2].ID)
}

func TestJsonFileStorer_EmptyBulk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.jsonl")
	s, err := NewJsonFileStorer(path)
	require.NoError(t, err)

	require.NoError(t, s.SaveBulk(context.Background(), nil))
	assert.NoFileExists(t, path)
}

func TestJsonFileStorer_CanceledContext(t *testing.T) {
	s, err := NewJsonFileStorer(filepath.Join(t.TempDir(), "out.jsonl"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = s.Save(ctx, domain.NewEvaluationRecord(domain.SourceAPI, "1", "1", 1, nil))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewJsonFileStorer_EmptyPath(t *testing.T) {
	_, err := NewJsonFileStorer("")
	assert.Error(t, err)
}
