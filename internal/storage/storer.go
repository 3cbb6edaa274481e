package storage

import (
	"context"

	"github.com/DjordjeVuckovic/shunt-calc/internal/domain"
	"github.com/google/uuid"
)

// Storer persists evaluation records. Implementations assign an ID when the
// record has none.
type Storer interface {
	Save(ctx context.Context, rec domain.EvaluationRecord) (uuid.UUID, error)
	SaveBulk(ctx context.Context, recs []domain.EvaluationRecord) error
}

type Type string

const (
	ES       Type = "es"
	PG       Type = "pg"
	InMem    Type = "in_mem"
	JsonFile Type = "json_file"
)

var Types = []Type{ES, PG, InMem, JsonFile}

func (t Type) Valid() bool {
	for _, known := range Types {
		if t == known {
			return true
		}
	}
	return false
}

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}
