package domain

import (
	"time"

	"github.com/DjordjeVuckovic/shunt-calc/internal/apperr"
	"github.com/DjordjeVuckovic/shunt-calc/internal/types/value"
	"github.com/google/uuid"
)

// Source tells where an evaluation was requested from.
type Source string

const (
	SourceAPI   Source = "api"
	SourceBatch Source = "batch"
	SourceREPL  Source = "repl"
	SourceBench Source = "bench"
)

// ErrorKindInternal marks a failure that did not come from the pipeline.
const ErrorKindInternal = "internal"

// EvaluationRecord is one audited run of the pipeline. Exactly one of Value
// and ErrorKind is set.
type EvaluationRecord struct {
	ID          uuid.UUID    `json:"id"`
	Expression  string       `json:"expression"`
	Postfix     string       `json:"postfix,omitempty"`
	Value       *value.Value `json:"value,omitempty"`
	ErrorKind   string       `json:"errorKind,omitempty"`
	ErrorStage  string       `json:"errorStage,omitempty"`
	Source      Source       `json:"source"`
	EvaluatedAt time.Time    `json:"evaluatedAt"`
}

// NewEvaluationRecord builds a record from the outcome of one evaluation.
// err must be nil on success.
func NewEvaluationRecord(source Source, expression, postfix string, v value.Value, err error) EvaluationRecord {
	rec := EvaluationRecord{
		ID:          uuid.New(),
		Expression:  expression,
		Postfix:     postfix,
		Source:      source,
		EvaluatedAt: time.Now().UTC(),
	}
	if err != nil {
		rec.ErrorKind = apperr.KindOf(err)
		if rec.ErrorKind == "" {
			rec.ErrorKind = ErrorKindInternal
		}
		rec.ErrorStage = string(apperr.StageOf(err))
		return rec
	}
	rec.Value = &v
	return rec
}

func (r EvaluationRecord) Succeeded() bool {
	return r.Value != nil
}
