// Package store persists triage results and indexes their symptoms for search.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/zen-systems/medtriage/pkg/schema"
)

// ErrNotFound is returned when no record has the requested ID.
var ErrNotFound = errors.New("triage record not found")

// DefaultHistoryLimit caps history listings when no limit is given.
const DefaultHistoryLimit = 50

// StoredRecord is a triage result together with the request that produced it.
type StoredRecord struct {
	ID           uuid.UUID       `json:"id"`
	At           time.Time       `json:"at"`
	PatientID    string          `json:"patient_id,omitempty"`
	Symptoms     string          `json:"symptoms"`
	Age          *int            `json:"age,omitempty"`
	Gender       schema.Gender   `json:"gender,omitempty"`
	ModelVersion string          `json:"model_version"`
	Result       schema.Record   `json:"result"`
	Metadata     schema.Metadata `json:"metadata"`
}

// NewStoredRecord wraps rec with a fresh ID and the current time.
func NewStoredRecord(rec schema.Record, patientID, modelVersion string) StoredRecord {
	return StoredRecord{
		ID:           uuid.New(),
		At:           time.Now().UTC(),
		PatientID:    patientID,
		Symptoms:     rec.Symptoms,
		Age:          rec.Age,
		Gender:       rec.Gender,
		ModelVersion: modelVersion,
		Result:       rec,
		Metadata:     rec.Metadata,
	}
}

// Record returns the triage record with its request fields and metadata restored.
func (s StoredRecord) Record() schema.Record {
	rec := s.Result
	rec.Symptoms = s.Symptoms
	rec.Age = s.Age
	rec.Gender = s.Gender
	rec.Metadata = s.Metadata
	return rec
}

// Repository stores triage results. Implementations are safe for concurrent use.
type Repository interface {
	Save(ctx context.Context, rec StoredRecord) error
	Get(ctx context.Context, id uuid.UUID) (StoredRecord, error)
	// Recent lists the newest records first.
	Recent(ctx context.Context, limit int) ([]StoredRecord, error)
	// History lists a patient's records, newest first.
	History(ctx context.Context, patientID string, limit int) ([]StoredRecord, error)
	Close() error
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultHistoryLimit
	}
	return limit
}
