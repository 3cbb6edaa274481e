package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/shunt-calc/internal/dto"
)

const evalPath = "/v1/eval"

// APIExecutor posts expressions to a running calc API.
type APIExecutor struct {
	name    string
	baseURL string
	client  *http.Client
}

func NewAPIExecutor(name, baseURL string) *APIExecutor {
	return &APIExecutor{
		name:    name,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (e *APIExecutor) Execute(ctx context.Context, expr string) (*Execution, error) {
	body, err := json.Marshal(dto.EvalRequest{Expression: &expr, Trace: true})
	if err != nil {
		return nil, fmt.Errorf("api encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+evalPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("api create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := e.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("api request: %w", err)
	}
	defer resp.Body.Close()
	latency := time.Since(start)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("api read response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		var evalResp dto.EvalResponse
		if err := json.Unmarshal(respBody, &evalResp); err != nil {
			return nil, fmt.Errorf("api parse response: %w", err)
		}
		return &Execution{Value: evalResp.Value, Postfix: evalResp.Postfix, Latency: latency}, nil
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		var errResp dto.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err != nil {
			return nil, fmt.Errorf("api parse error response: %w", err)
		}
		// validation errors carry no kind
		if errResp.Kind == "" {
			return nil, fmt.Errorf("api status %d: %s", resp.StatusCode, errResp.Error)
		}
		return &Execution{ErrorKind: errResp.Kind, Latency: latency}, nil
	default:
		return nil, fmt.Errorf("api status %d: %s", resp.StatusCode, string(respBody))
	}
}

func (e *APIExecutor) Name() string { return e.name }
func (e *APIExecutor) Close() error {
	e.client.CloseIdleConnections()
	return nil
}
