package store

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/blugelabs/bluge"
	"github.com/google/uuid"
)

// DefaultSearchLimit bounds search results when no limit is given.
const DefaultSearchLimit = 10

const (
	fieldSymptoms = "symptoms"
	fieldKeywords = "keywords"
	fieldCategory = "category"
	fieldSeverity = "severity"
)

// Query selects indexed records.
type Query struct {
	Text     string
	Category string
	Severity string
	Limit    int
}

// Hit is one search result.
type Hit struct {
	ID       uuid.UUID
	Score    float64
	Category string
	Severity string
	Symptoms string
}

// Index is a full-text index over stored symptoms and matched keywords.
type Index struct {
	writer *bluge.Writer
	log    *slog.Logger
}

// NewIndex opens (or creates) a bluge index at path.
func NewIndex(path string, log *slog.Logger) (*Index, error) {
	if log == nil {
		log = slog.Default()
	}
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(path))
	if err != nil {
		return nil, fmt.Errorf("open index at %s: %w", path, err)
	}
	return &Index{writer: writer, log: log}, nil
}

// Add indexes rec, replacing any previous document with the same ID.
func (i *Index) Add(_ context.Context, rec StoredRecord) error {
	doc := bluge.NewDocument(rec.ID.String()).
		AddField(bluge.NewTextField(fieldSymptoms, rec.Symptoms).StoreValue()).
		AddField(bluge.NewTextField(fieldKeywords, strings.Join(rec.Result.Explainability.KeyKeywords, " "))).
		AddField(bluge.NewKeywordField(fieldCategory, rec.Result.MedicalCategory).StoreValue()).
		AddField(bluge.NewKeywordField(fieldSeverity, string(rec.Result.Severity)).StoreValue())
	if err := i.writer.Update(doc.ID(), doc); err != nil {
		return fmt.Errorf("index record %s: %w", rec.ID, err)
	}
	return nil
}

// Search returns the best-scoring records for q. An empty text matches nothing.
func (i *Index) Search(ctx context.Context, q Query) ([]Hit, error) {
	text := strings.TrimSpace(q.Text)
	if text == "" {
		return nil, nil
	}
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	textQuery := bluge.NewBooleanQuery().SetMinShould(1).
		AddShould(bluge.NewMatchQuery(text).SetField(fieldSymptoms)).
		AddShould(bluge.NewMatchQuery(text).SetField(fieldKeywords))
	query := bluge.NewBooleanQuery().AddMust(textQuery)
	if q.Category != "" {
		query.AddMust(bluge.NewTermQuery(q.Category).SetField(fieldCategory))
	}
	if q.Severity != "" {
		query.AddMust(bluge.NewTermQuery(strings.ToUpper(q.Severity)).SetField(fieldSeverity))
	}

	reader, err := i.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := reader.Close(); err != nil {
			i.log.Warn("closing index reader", "error", err)
		}
	}()

	matches, err := reader.Search(ctx, bluge.NewTopNSearch(limit, query))
	if err != nil {
		return nil, err
	}
	var hits []Hit
	match, err := matches.Next()
	for err == nil && match != nil {
		hit := Hit{Score: match.Score}
		var idErr error
		visitErr := match.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case "_id":
				hit.ID, idErr = uuid.ParseBytes(value)
			case fieldSymptoms:
				hit.Symptoms = string(value)
			case fieldCategory:
				hit.Category = string(value)
			case fieldSeverity:
				hit.Severity = string(value)
			}
			return true
		})
		if visitErr != nil {
			return nil, visitErr
		}
		if idErr != nil {
			return nil, fmt.Errorf("indexed document id: %w", idErr)
		}
		hits = append(hits, hit)
		match, err = matches.Next()
	}
	if err != nil {
		return nil, err
	}
	return hits, nil
}

// Close flushes and closes the index.
func (i *Index) Close() error {
	return i.writer.Close()
}
