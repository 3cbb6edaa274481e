package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/shunt-calc/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const evaluationsTable = "evaluations"

var evaluationColumns = []string{
	"id", "expression", "postfix", "value", "error_kind", "error_stage", "source", "evaluated_at",
}

type Storer struct {
	db *pgxpool.Pool
}

func NewStorer(pool *ConnectionPool) (*Storer, error) {
	if pool == nil {
		return nil, fmt.Errorf("connection pool is nil")
	}
	return &Storer{db: pool.conn}, nil
}

func (s *Storer) Save(ctx context.Context, rec domain.EvaluationRecord) (uuid.UUID, error) {
	rec = withDefaults(rec, time.Now().UTC())

	cmd := `
        INSERT INTO evaluations (id, expression, postfix, value, error_kind, error_stage, source, evaluated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id;
    `
	var id uuid.UUID
	err := s.db.QueryRow(ctx, cmd, toRow(rec)...).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert evaluation: %w", err)
	}

	return id, nil
}

func (s *Storer) SaveBulk(ctx context.Context, recs []domain.EvaluationRecord) error {
	if len(recs) == 0 {
		return nil
	}

	rows := make([][]any, len(recs))
	now := time.Now().UTC()
	for i, rec := range recs {
		rows[i] = toRow(withDefaults(rec, now))
	}

	n, err := s.db.CopyFrom(
		ctx,
		pgx.Identifier{evaluationsTable},
		evaluationColumns,
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to bulk insert evaluations: %w", err)
	}
	if int(n) != len(recs) {
		return fmt.Errorf("bulk insert wrote %d of %d evaluations", n, len(recs))
	}
	return nil
}

// Get loads one record by id. pgx.ErrNoRows is returned when it does not exist.
func (s *Storer) Get(ctx context.Context, id uuid.UUID) (domain.EvaluationRecord, error) {
	query := `
        SELECT id, expression, postfix, value, error_kind, error_stage, source, evaluated_at
        FROM evaluations
        WHERE id = $1;
    `
	var rec domain.EvaluationRecord
	var source string
	err := s.db.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.Expression, &rec.Postfix, &rec.Value, &rec.ErrorKind, &rec.ErrorStage, &source, &rec.EvaluatedAt,
	)
	if err != nil {
		return domain.EvaluationRecord{}, fmt.Errorf("failed to load evaluation %s: %w", id, err)
	}
	rec.Source = domain.Source(source)
	return rec, nil
}

func withDefaults(rec domain.EvaluationRecord, now time.Time) domain.EvaluationRecord {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.EvaluatedAt.IsZero() {
		rec.EvaluatedAt = now
	}
	return rec
}

func toRow(rec domain.EvaluationRecord) []any {
	return []any{
		rec.ID,
		rec.Expression,
		rec.Postfix,
		rec.Value,
		rec.ErrorKind,
		rec.ErrorStage,
		string(rec.Source),
		rec.EvaluatedAt,
	}
}
