package engine

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DjordjeVuckovic/shunt-calc/internal/apperr"
	"github.com/DjordjeVuckovic/shunt-calc/internal/bench/plan"
	"github.com/DjordjeVuckovic/shunt-calc/internal/calc"
	"github.com/DjordjeVuckovic/shunt-calc/internal/router"
	"github.com/DjordjeVuckovic/shunt-calc/internal/types/value"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCalcAPI(t *testing.T) *httptest.Server {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	router.NewCalcRouter(e, calc.New()).Bind()

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

func executors(t *testing.T) []Executor {
	return []Executor{
		NewLocalExecutor("local", calc.New()),
		NewAPIExecutor("api", newCalcAPI(t).URL+"/"),
	}
}

func TestExecutors_Outcomes(t *testing.T) {
	tests := []struct {
		expr    string
		value   value.Value
		kind    string
		postfix string
	}{
		{expr: "2+3*4", value: 14, postfix: "2 3 4 * +"},
		{expr: "0-7//2", value: -3, postfix: "0 7 2 // -"},
		{expr: "5/2", kind: "bad_char"},
		{expr: "(1+2", kind: "unclosed_parens"},
		{expr: "5%0", kind: "bad_calculation"},
		{expr: "1 2", kind: "non_singular"},
	}

	for _, exec := range executors(t) {
		for _, tt := range tests {
			t.Run(exec.Name()+"/"+tt.expr, func(t *testing.T) {
				got, err := exec.Execute(context.Background(), tt.expr)
				require.NoError(t, err)
				assert.Equal(t, tt.kind, got.ErrorKind)
				if tt.kind == "" {
					assert.Equal(t, tt.value, got.Value)
					assert.Equal(t, tt.postfix, got.Postfix)
				}
			})
		}
		require.NoError(t, exec.Close())
	}
}

func TestLocalExecutor_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLocalExecutor("local", calc.New()).Execute(ctx, "1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAPIExecutor_TransportErrors(t *testing.T) {
	t.Run("unexpected status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		_, err := NewAPIExecutor("api", srv.URL).Execute(context.Background(), "1")
		assert.ErrorContains(t, err, "503")
	})

	t.Run("validation error has no kind", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"expression is required","title":"validation error"}`))
		}))
		defer srv.Close()

		_, err := NewAPIExecutor("api", srv.URL).Execute(context.Background(), "1")
		assert.ErrorContains(t, err, "expression is required")
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		_, err := NewAPIExecutor("api", url).Execute(context.Background(), "1")
		assert.Error(t, err)
	})
}

func TestCreateFromPlan(t *testing.T) {
	execs, cleanup, err := CreateFromPlan(map[string]plan.Engine{
		"local":  {Type: plan.EngineLocal},
		"legacy": {Type: plan.EngineLocal, LegacyDigits: true},
		"api":    {Type: plan.EngineAPI, Connection: "http://localhost:8080"},
	})
	require.NoError(t, err)
	defer cleanup()
	assert.Len(t, execs, 3)

	got, err := execs["legacy"].Execute(context.Background(), "xf")
	require.NoError(t, err)
	assert.Equal(t, value.Value(16), got.Value)

	_, _, err = CreateFromPlan(map[string]plan.Engine{"pg": {Type: "postgres"}})
	assert.Error(t, err)
}
