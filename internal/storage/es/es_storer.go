package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/DjordjeVuckovic/shunt-calc/internal/domain"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/google/uuid"
)

type Storer struct {
	client    *elasticsearch.TypedClient
	indexName string
	config    ClientConfig
}

func NewStorer(ctx context.Context, config ClientConfig) (*Storer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}
	storer := &Storer{
		client:    client,
		indexName: config.IndexName,
		config:    config,
	}

	if err := storer.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}

	return storer, nil
}

func (e *Storer) Save(ctx context.Context, rec domain.EvaluationRecord) (uuid.UUID, error) {
	doc := toDocument(rec)

	res, err := e.client.Index(e.indexName).Id(doc.ID).Document(doc).Do(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to index document: %w", err)
	}

	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse evaluation ID: %w", err)
	}

	slog.Debug("document indexed", "id", doc.ID, "index", e.indexName, "result", res.Result)
	return id, nil
}

func (e *Storer) SaveBulk(ctx context.Context, recs []domain.EvaluationRecord) error {
	if len(recs) == 0 {
		return nil
	}

	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:         e.indexName,
		Client:        e.client,
		NumWorkers:    4,
		FlushBytes:    5e+6,
		FlushInterval: 30 * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to create bulk indexer: %w", err)
	}

	var successful, failed atomic.Int64

	for _, rec := range recs {
		doc := toDocument(rec)

		docBytes, err := json.Marshal(doc)
		if err != nil {
			slog.Error("failed to marshal document", "error", err, "id", doc.ID)
			failed.Add(1)
			continue
		}

		err = bi.Add(
			ctx,
			esutil.BulkIndexerItem{
				Action:     "index",
				DocumentID: doc.ID,
				Body:       bytes.NewReader(docBytes),
				OnSuccess: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem) {
					successful.Add(1)
				},
				OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
					failed.Add(1)
					if err != nil {
						slog.Error("bulk index error", "error", err, "id", item.DocumentID)
					} else {
						slog.Error("bulk index error", "status", res.Status, "error", res.Error.Type, "reason", res.Error.Reason, "id", item.DocumentID)
					}
				},
			},
		)
		if err != nil {
			failed.Add(1)
			slog.Error("failed to add document to bulk indexer", "error", err, "id", doc.ID)
		}
	}

	if err := bi.Close(ctx); err != nil {
		return fmt.Errorf("failed to close bulk indexer: %w", err)
	}

	slog.Info("Bulk indexing completed",
		"successful", successful.Load(),
		"failed", failed.Load(),
		"total", len(recs),
		"index", e.indexName)

	if n := failed.Load(); n > 0 {
		return fmt.Errorf("failed to index %d out of %d evaluations", n, len(recs))
	}
	return nil
}

// Get loads one evaluation document by id.
func (e *Storer) Get(ctx context.Context, id uuid.UUID) (domain.EvaluationRecord, error) {
	res, err := e.client.Get(e.indexName, id.String()).Do(ctx)
	if err != nil {
		return domain.EvaluationRecord{}, fmt.Errorf("failed to get document %s: %w", id, err)
	}
	if !res.Found {
		return domain.EvaluationRecord{}, fmt.Errorf("evaluation %s not found", id)
	}

	var doc Document
	if err := json.Unmarshal(res.Source_, &doc); err != nil {
		return domain.EvaluationRecord{}, fmt.Errorf("failed to decode document %s: %w", id, err)
	}
	return doc.toDomain()
}

// Count returns the number of indexed evaluations after refreshing the index.
func (e *Storer) Count(ctx context.Context) (int64, error) {
	if _, err := e.client.Indices.Refresh().Index(e.indexName).Do(ctx); err != nil {
		return 0, fmt.Errorf("failed to refresh index: %w", err)
	}
	res, err := e.client.Count().Index(e.indexName).Do(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}
	return res.Count, nil
}

func (e *Storer) EnsureIndex(ctx context.Context) error {
	exists, err := e.client.Indices.Exists(e.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}
	if exists {
		slog.Info("Index already exists", "index", e.indexName)
		return nil
	}

	mappings := types.TypeMapping{
		Properties: map[string]types.Property{
			"id":           types.NewKeywordProperty(),
			"expression":   expressionProperty(),
			"postfix":      types.NewKeywordProperty(),
			"value":        types.NewIntegerNumberProperty(),
			"succeeded":    types.NewBooleanProperty(),
			"error_kind":   types.NewKeywordProperty(),
			"error_stage":  types.NewKeywordProperty(),
			"source":       types.NewKeywordProperty(),
			"evaluated_at": types.NewDateProperty(),
			"indexed_at":   types.NewDateProperty(),
		},
	}

	createRes, err := e.client.Indices.Create(e.indexName).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	if !createRes.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created successfully", "index", e.indexName)
	return nil
}

// expressionProperty indexes the raw text as a keyword and as whitespace
// separated terms.
func expressionProperty() types.Property {
	analyzer := "whitespace"
	textProp := types.NewTextProperty()
	textProp.Analyzer = &analyzer
	textProp.Fields = map[string]types.Property{
		"keyword": types.NewKeywordProperty(),
	}
	return textProp
}
