package es

import (
	"time"

	"github.com/DjordjeVuckovic/shunt-calc/internal/domain"
	"github.com/google/uuid"
)

// Document is the indexed form of an evaluation record.
type Document struct {
	ID          string    `json:"id"`
	Expression  string    `json:"expression"`
	Postfix     string    `json:"postfix,omitempty"`
	Value       *int32    `json:"value,omitempty"`
	Succeeded   bool      `json:"succeeded"`
	ErrorKind   string    `json:"error_kind,omitempty"`
	ErrorStage  string    `json:"error_stage,omitempty"`
	Source      string    `json:"source"`
	EvaluatedAt time.Time `json:"evaluated_at"`
	IndexedAt   time.Time `json:"indexed_at"`
}

func toDocument(rec domain.EvaluationRecord) Document {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	return Document{
		ID:          rec.ID.String(),
		Expression:  rec.Expression,
		Postfix:     rec.Postfix,
		Value:       rec.Value,
		Succeeded:   rec.Succeeded(),
		ErrorKind:   rec.ErrorKind,
		ErrorStage:  rec.ErrorStage,
		Source:      string(rec.Source),
		EvaluatedAt: rec.EvaluatedAt,
		IndexedAt:   time.Now().UTC(),
	}
}

func (d Document) toDomain() (domain.EvaluationRecord, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return domain.EvaluationRecord{}, err
	}
	return domain.EvaluationRecord{
		ID:          id,
		Expression:  d.Expression,
		Postfix:     d.Postfix,
		Value:       d.Value,
		ErrorKind:   d.ErrorKind,
		ErrorStage:  d.ErrorStage,
		Source:      domain.Source(d.Source),
		EvaluatedAt: d.EvaluatedAt,
	}, nil
}
