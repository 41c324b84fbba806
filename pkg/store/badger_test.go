package store

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/zen-systems/medtriage/pkg/schema"
)

func sampleRecord(patientID, symptoms string, at time.Time) StoredRecord {
	rec := schema.Record{
		Symptoms:        symptoms,
		Age:             lo.ToPtr(34),
		Gender:          "F",
		MedicalCategory: "Orthopedics",
		Severity:        schema.SeverityHigh,
		AssignedDoctor:  "Orthopedics",
		RoomAllotted:    schema.RoomEmergency,
		Status:          schema.StatusAssigned,
		Explainability: schema.Explainability{
			KeyKeywords:   []string{"accident", "leg"},
			ExplanationEN: "Symptoms indicate bone or joint injury.",
			ExplanationKN: "kn",
			ExplanationHI: "hi",
		},
		Metadata: schema.Metadata{
			Language:      schema.LangEnglish,
			LanguageRatio: 1.0,
			Method:        schema.MethodKeywordScoring,
			Confidence:    1.0,
		},
	}
	stored := NewStoredRecord(rec, patientID, "rule-only")
	stored.At = at
	return stored
}

func newBadgerRepo(t *testing.T) *BadgerRepository {
	t.Helper()
	repo, err := NewBadgerRepository(t.TempDir(), slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestBadgerRepository_Save_And_Get(t *testing.T) {
	req := require.New(t)
	repo := newBadgerRepo(t)
	ctx := context.Background()

	// Given a saved record
	original := sampleRecord("patient-1", "bike accident, leg pain", time.Now().UTC())
	req.NoError(repo.Save(ctx, original))

	// When loading it by ID
	loaded, err := repo.Get(ctx, original.ID)
	req.NoError(err)

	// Then the full record is restored
	req.Equal(original.ID, loaded.ID)
	req.True(original.At.Equal(loaded.At))
	req.Equal("patient-1", loaded.PatientID)
	req.Equal("rule-only", loaded.ModelVersion)
	rec := loaded.Record()
	req.Equal("bike accident, leg pain", rec.Symptoms)
	req.Equal(34, *rec.Age)
	req.Equal(schema.Gender("F"), rec.Gender)
	req.Equal(schema.SeverityHigh, rec.Severity)
	req.Equal([]string{"accident", "leg"}, rec.Explainability.KeyKeywords)
	req.Equal(schema.MethodKeywordScoring, rec.Metadata.Method)
}

func TestBadgerRepository_Get_Unknown(t *testing.T) {
	repo := newBadgerRepo(t)
	_, err := repo.Get(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestBadgerRepository_Save_RequiresID(t *testing.T) {
	repo := newBadgerRepo(t)
	rec := sampleRecord("", "headache", time.Now())
	rec.ID = uuid.Nil
	require.Error(t, repo.Save(context.Background(), rec))
}

func TestBadgerRepository_Recent_NewestFirst(t *testing.T) {
	req := require.New(t)
	repo := newBadgerRepo(t)
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	var ids []uuid.UUID
	for i := 0; i < 5; i++ {
		rec := sampleRecord("", "case", base.Add(time.Duration(i)*time.Minute))
		req.NoError(repo.Save(ctx, rec))
		ids = append(ids, rec.ID)
	}

	records, err := repo.Recent(ctx, 3)
	req.NoError(err)
	req.Len(records, 3)
	req.Equal([]uuid.UUID{ids[4], ids[3], ids[2]}, lo.Map(records, func(r StoredRecord, _ int) uuid.UUID { return r.ID }))

	all, err := repo.Recent(ctx, 0)
	req.NoError(err)
	req.Len(all, 5)
}

func TestBadgerRepository_History_PatientIsolation(t *testing.T) {
	req := require.New(t)
	repo := newBadgerRepo(t)
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	// Given records for two patients, one of whose IDs prefixes the other
	first := sampleRecord("p1", "first visit", base)
	second := sampleRecord("p1", "second visit", base.Add(time.Hour))
	other := sampleRecord("p1:x", "other patient", base.Add(2*time.Hour))
	anonymous := sampleRecord("", "no patient", base.Add(3*time.Hour))
	for _, rec := range []StoredRecord{first, second, other, anonymous} {
		req.NoError(repo.Save(ctx, rec))
	}

	// When listing the history of p1
	history, err := repo.History(ctx, "p1", 0)
	req.NoError(err)

	// Then only p1's records are returned, newest first
	req.Len(history, 2)
	req.Equal(second.ID, history[0].ID)
	req.Equal(first.ID, history[1].ID)

	none, err := repo.History(ctx, "unknown", 10)
	req.NoError(err)
	req.Empty(none)
}
