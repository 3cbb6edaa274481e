package json_file

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/DjordjeVuckovic/shunt-calc/internal/domain"
	"github.com/google/uuid"
)

// JsonFileStorer appends records to a file, one JSON object per line.
type JsonFileStorer struct {
	mu       sync.Mutex
	filePath string
}

func NewJsonFileStorer(filePath string) (*JsonFileStorer, error) {
	if filePath == "" {
		return nil, fmt.Errorf("json file path is empty")
	}
	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return &JsonFileStorer{filePath: filePath}, nil
}

func (s *JsonFileStorer) Save(ctx context.Context, rec domain.EvaluationRecord) (uuid.UUID, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if err := s.appendRecords(ctx, []domain.EvaluationRecord{rec}); err != nil {
		return uuid.Nil, err
	}
	return rec.ID, nil
}

func (s *JsonFileStorer) SaveBulk(ctx context.Context, recs []domain.EvaluationRecord) error {
	if len(recs) == 0 {
		return nil
	}
	for i := range recs {
		if recs[i].ID == uuid.Nil {
			recs[i].ID = uuid.New()
		}
	}
	return s.appendRecords(ctx, recs)
}

func (s *JsonFileStorer) appendRecords(ctx context.Context, recs []domain.EvaluationRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", s.filePath, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for _, rec := range recs {
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("failed to encode record %s: %w", rec.ID, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.filePath, err)
	}

	slog.Debug("Appended evaluations to json file", "path", s.filePath, "count", len(recs))
	return nil
}

// ReadAll loads every record previously written to path.
func ReadAll(path string) ([]domain.EvaluationRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var recs []domain.EvaluationRecord
	dec := json.NewDecoder(f)
	for dec.More() {
		var rec domain.EvaluationRecord
		if err := dec.Decode(&rec); err != nil {
			return nil, fmt.Errorf("failed to decode record %d: %w", len(recs), err)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}
