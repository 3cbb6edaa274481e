package apperr_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DjordjeVuckovic/shunt-calc/internal/apperr"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   string
	}{
		{"validation", apperr.NewValidation("expression is required"), http.StatusBadRequest, ""},
		{"lex", apperr.NewBadChar('?'), http.StatusBadRequest, "bad_char"},
		{"parse", apperr.NewUnclosedParens(), http.StatusBadRequest, "unclosed_parens"},
		{"eval", apperr.NewBadCalculation("division by zero"), http.StatusUnprocessableEntity, "bad_calculation"},
		{"http", echo.NewHTTPError(http.StatusNotFound, "not found"), http.StatusNotFound, ""},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, ""},
	}

	e := echo.New()
	handler := apperr.GlobalErrorHandler()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
			assert.Equal(t, tt.wantKind, body["kind"])
		})
	}
}
