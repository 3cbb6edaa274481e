package in_mem

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/DjordjeVuckovic/shunt-calc/internal/domain"
	"github.com/google/uuid"
)

type InMemStorer struct {
	storageLock sync.RWMutex
	storage     map[uuid.UUID]domain.EvaluationRecord
}

func NewInMemStorer() *InMemStorer {
	return &InMemStorer{
		storage: make(map[uuid.UUID]domain.EvaluationRecord),
	}
}

func (s *InMemStorer) Save(ctx context.Context, rec domain.EvaluationRecord) (uuid.UUID, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}

	s.storageLock.Lock()
	defer s.storageLock.Unlock()
	s.storage[rec.ID] = rec

	slog.Debug("Saved evaluation to in-memory storage", "id", rec.ID, "expression", rec.Expression)
	return rec.ID, nil
}

func (s *InMemStorer) SaveBulk(ctx context.Context, recs []domain.EvaluationRecord) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	for _, rec := range recs {
		if rec.ID == uuid.Nil {
			rec.ID = uuid.New()
		}
		s.storage[rec.ID] = rec
	}

	slog.Debug("Saved evaluations to in-memory storage", "count", len(recs))
	return nil
}

func (s *InMemStorer) Get(id uuid.UUID) (domain.EvaluationRecord, bool) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()
	rec, ok := s.storage[id]
	return rec, ok
}

// All returns every stored record, oldest first.
func (s *InMemStorer) All() []domain.EvaluationRecord {
	s.storageLock.RLock()
	out := make([]domain.EvaluationRecord, 0, len(s.storage))
	for _, rec := range s.storage {
		out = append(out, rec)
	}
	s.storageLock.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].EvaluatedAt.Before(out[j].EvaluatedAt)
	})
	return out
}

func (s *InMemStorer) Len() int {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()
	return len(s.storage)
}
