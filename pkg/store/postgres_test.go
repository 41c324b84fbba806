package store

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Set MEDTRIAGE_TEST_POSTGRES_DSN to run these against a disposable database.
func newPostgresRepo(t *testing.T) *PostgresRepository {
	t.Helper()
	dsn := os.Getenv("MEDTRIAGE_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("MEDTRIAGE_TEST_POSTGRES_DSN not set")
	}
	ctx := context.Background()
	repo, err := NewPostgresRepository(ctx, dsn, slog.Default())
	require.NoError(t, err)
	_, err = repo.db.ExecContext(ctx, `TRUNCATE triage_results`)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestPostgresRepository_Save_And_Get(t *testing.T) {
	req := require.New(t)
	repo := newPostgresRepo(t)
	ctx := context.Background()

	original := sampleRecord("patient-1", "bike accident, leg pain", time.Now().UTC().Truncate(time.Microsecond))
	req.NoError(repo.Save(ctx, original))

	loaded, err := repo.Get(ctx, original.ID)
	req.NoError(err)
	req.Equal(original.ID, loaded.ID)
	req.True(original.At.Equal(loaded.At))
	req.Equal(original.Record().Explainability, loaded.Record().Explainability)
	req.Equal(34, *loaded.Age)

	_, err = repo.Get(ctx, uuid.New())
	req.ErrorIs(err, ErrNotFound)
}

func TestPostgresRepository_History(t *testing.T) {
	req := require.New(t)
	repo := newPostgresRepo(t)
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	first := sampleRecord("p1", "first", base)
	second := sampleRecord("p1", "second", base.Add(time.Hour))
	other := sampleRecord("p2", "other", base.Add(2*time.Hour))
	for _, rec := range []StoredRecord{first, second, other} {
		req.NoError(repo.Save(ctx, rec))
	}

	history, err := repo.History(ctx, "p1", 0)
	req.NoError(err)
	req.Len(history, 2)
	req.Equal(second.ID, history[0].ID)

	recent, err := repo.Recent(ctx, 1)
	req.NoError(err)
	req.Len(recent, 1)
	req.Equal(other.ID, recent[0].ID)
}
