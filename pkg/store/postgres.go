package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/samber/lo"

	"github.com/zen-systems/medtriage/pkg/schema"
)

//go:embed schema.sql
var schemaSQL string

const selectColumns = `
	triage_id, patient_id, symptoms, patient_age, patient_gender,
	medical_category, severity, assigned_doctor, room_allotted, triage_status,
	key_keywords, explanation_en, explanation_kn, explanation_hi,
	detected_language, language_ratio, classification_method, confidence_score,
	model_version, analysis_timestamp`

// PostgresRepository keeps triage records in the triage_results table.
type PostgresRepository struct {
	db  *sql.DB
	log *slog.Logger
}

// Migrate creates the triage_results table and its indexes if missing.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("migrate triage_results: %w", err)
	}
	return nil
}

// NewPostgresRepository connects to dsn and applies the schema.
func NewPostgresRepository(ctx context.Context, dsn string, log *slog.Logger) (*PostgresRepository, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	repo, err := NewPostgresRepositoryFromDB(ctx, db, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

// NewPostgresRepositoryFromDB wraps an open connection pool and applies the schema.
func NewPostgresRepositoryFromDB(ctx context.Context, db *sql.DB, log *slog.Logger) (*PostgresRepository, error) {
	if log == nil {
		log = slog.Default()
	}
	if err := Migrate(ctx, db); err != nil {
		return nil, err
	}
	return &PostgresRepository{db: db, log: log}, nil
}

func (r *PostgresRepository) Save(ctx context.Context, rec StoredRecord) error {
	if rec.ID == uuid.Nil {
		return fmt.Errorf("record ID is required")
	}
	res := rec.Result
	var age sql.NullInt64
	if rec.Age != nil {
		age = sql.NullInt64{Int64: int64(*rec.Age), Valid: true}
	}
	keywords := res.Explainability.KeyKeywords
	if keywords == nil {
		keywords = []string{}
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO triage_results (
			triage_id, patient_id, symptoms, patient_age, patient_gender,
			medical_category, severity, assigned_doctor, room_allotted, triage_status,
			key_keywords, explanation_en, explanation_kn, explanation_hi,
			detected_language, language_ratio, classification_method, confidence_score,
			model_version, analysis_timestamp
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`,
		rec.ID, nullString(rec.PatientID), rec.Symptoms, age, nullString(string(rec.Gender)),
		res.MedicalCategory, string(res.Severity), res.AssignedDoctor, res.RoomAllotted, string(res.Status),
		pq.Array(keywords), res.Explainability.ExplanationEN, res.Explainability.ExplanationKN, res.Explainability.ExplanationHI,
		rec.Metadata.Language, rec.Metadata.LanguageRatio, string(rec.Metadata.Method), rec.Metadata.Confidence,
		rec.ModelVersion, rec.At,
	)
	if err != nil {
		return fmt.Errorf("insert triage result: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, id uuid.UUID) (StoredRecord, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM triage_results WHERE triage_id = $1`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return StoredRecord{}, ErrNotFound
	}
	return rec, err
}

func (r *PostgresRepository) Recent(ctx context.Context, limit int) ([]StoredRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+selectColumns+` FROM triage_results ORDER BY analysis_timestamp DESC LIMIT $1`,
		normalizeLimit(limit))
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

func (r *PostgresRepository) History(ctx context.Context, patientID string, limit int) ([]StoredRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+selectColumns+` FROM triage_results WHERE patient_id = $1 ORDER BY analysis_timestamp DESC LIMIT $2`,
		patientID, normalizeLimit(limit))
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (StoredRecord, error) {
	var (
		rec       StoredRecord
		patientID sql.NullString
		gender    sql.NullString
		age       sql.NullInt64
		severity  string
		status    string
		method    string
		keywords  []string
	)
	res := &rec.Result
	err := row.Scan(
		&rec.ID, &patientID, &rec.Symptoms, &age, &gender,
		&res.MedicalCategory, &severity, &res.AssignedDoctor, &res.RoomAllotted, &status,
		pq.Array(&keywords), &res.Explainability.ExplanationEN, &res.Explainability.ExplanationKN, &res.Explainability.ExplanationHI,
		&rec.Metadata.Language, &rec.Metadata.LanguageRatio, &method, &rec.Metadata.Confidence,
		&rec.ModelVersion, &rec.At,
	)
	if err != nil {
		return StoredRecord{}, err
	}
	rec.PatientID = patientID.String
	rec.Gender = schema.Gender(gender.String)
	if age.Valid {
		rec.Age = lo.ToPtr(int(age.Int64))
	}
	res.Severity = schema.Severity(severity)
	res.Status = schema.Status(status)
	res.Explainability.KeyKeywords = lo.Ternary(keywords == nil, []string{}, keywords)
	rec.Metadata.Method = schema.Method(method)
	return rec, nil
}

func collect(rows *sql.Rows) ([]StoredRecord, error) {
	defer rows.Close()
	var out []StoredRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
