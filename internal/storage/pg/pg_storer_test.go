package pg

import (
	"context"
	"flag"
	"os"
	"testing"

	"github.com/DjordjeVuckovic/shunt-calc/internal/apperr"
	"github.com/DjordjeVuckovic/shunt-calc/internal/domain"
	pkgtesting "github.com/DjordjeVuckovic/shunt-calc/pkg/testing"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
)

var (
	testCtx    context.Context
	testPool   *ConnectionPool
	testStorer *Storer
)

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	testCtx = context.Background()

	pg, err := pkgtesting.NewPGContainer(testCtx, pkgtesting.DefaultPGConfig())
	if err != nil {
		panic(err)
	}

	testPool, err = NewConnectionPool(testCtx, PoolConfig{ConnStr: pg.ConnString})
	if err != nil {
		_ = testcontainers.TerminateContainer(pg.Container)
		panic(err)
	}

	testStorer, err = NewStorer(testPool)
	if err != nil {
		panic(err)
	}

	code := m.Run()

	testPool.Close()
	_ = testcontainers.TerminateContainer(pg.Container)
	os.Exit(code)
}

func skipShort(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
}

func truncateTable(t *testing.T) {
	t.Helper()
	_, err := testPool.GetConn().Exec(testCtx, "TRUNCATE TABLE evaluations")
	require.NoError(t, err)
}

func countRows(t *testing.T) int {
	t.Helper()
	var n int
	err := testPool.GetConn().QueryRow(testCtx, "SELECT count(*) FROM evaluations").Scan(&n)
	require.NoError(t, err)
	return n
}

func TestStorer_Save(t *testing.T) {
	skipShort(t)
	truncateTable(t)

	rec := domain.NewEvaluationRecord(domain.SourceAPI, "2+3*4", "2 3 4 * +", 14, nil)
	id, err := testStorer.Save(testCtx, rec)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, id)

	got, err := testStorer.Get(testCtx, id)
	require.NoError(t, err)
	assert.Equal(t, "2+3*4", got.Expression)
	assert.Equal(t, "2 3 4 * +", got.Postfix)
	require.NotNil(t, got.Value)
	assert.Equal(t, int32(14), *got.Value)
	assert.Equal(t, domain.SourceAPI, got.Source)
}

func TestStorer_SaveFailure(t *testing.T) {
	skipShort(t)
	truncateTable(t)

	rec := domain.NewEvaluationRecord(domain.SourceBatch, "5//0", "5 0 //", 0, apperr.NewBadCalculation("division by zero"))
	id, err := testStorer.Save(testCtx, rec)
	require.NoError(t, err)

	got, err := testStorer.Get(testCtx, id)
	require.NoError(t, err)
	assert.Nil(t, got.Value)
	assert.Equal(t, "bad_calculation", got.ErrorKind)
	assert.Equal(t, "eval", got.ErrorStage)
}

func TestStorer_SaveBulk(t *testing.T) {
	skipShort(t)
	truncateTable(t)

	recs := []domain.EvaluationRecord{
		domain.NewEvaluationRecord(domain.SourceBatch, "1", "1", 1, nil),
		domain.NewEvaluationRecord(domain.SourceBatch, "(1", "", 0, apperr.NewUnclosedParens()),
		{Expression: "7", Postfix: "7", Value: ptr(int32(7)), Source: domain.SourceBatch},
	}

	require.NoError(t, testStorer.SaveBulk(testCtx, recs))
	assert.Equal(t, 3, countRows(t))
}

func TestStorer_SaveBulkEmpty(t *testing.T) {
	skipShort(t)
	truncateTable(t)

	require.NoError(t, testStorer.SaveBulk(testCtx, nil))
	assert.Equal(t, 0, countRows(t))
}

func TestStorer_GetMissing(t *testing.T) {
	skipShort(t)

	_, err := testStorer.Get(testCtx, uuid.New())
	assert.Error(t, err)
}

func TestHealthChecker(t *testing.T) {
	skipShort(t)

	assert.True(t, NewHealthChecker(testPool).Healthy(testCtx))
	assert.False(t, NewHealthChecker(nil).Healthy(testCtx))
}

func ptr[T any](v T) *T {
	return &v
}
