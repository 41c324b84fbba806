// Package evidence writes an on-disk audit bundle for batch triage runs.
//
// Layout:
//
//	<base>/<run-id>/run.json
//	<base>/<run-id>/cases/<index>.json
//	<base>/<run-id>/blobs/<kind>-<sha>.txt
package evidence

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/zen-systems/medtriage/pkg/schema"
)

const (
	dirPerm  = 0700
	filePerm = 0600
)

// RunRecord captures run-level metadata.
type RunRecord struct {
	ID           string            `json:"id"`
	Timestamp    time.Time         `json:"timestamp"`
	InputFile    string            `json:"input_file"`
	InputHash    string            `json:"input_hash"`
	Capability   string            `json:"capability"`
	ModelHash    string            `json:"model_hash,omitempty"`
	Cases        int               `json:"cases"`
	Invalid      int               `json:"invalid"`
	Severities   map[string]int    `json:"severities"`
	Statuses     map[string]int    `json:"statuses"`
	ToolVersions map[string]string `json:"tool_versions,omitempty"`
	DurationMs   int64             `json:"duration_ms"`
}

// Tally counts a record in the run's severity and status totals.
func (r *RunRecord) Tally(rec schema.Record) {
	if r.Severities == nil {
		r.Severities = map[string]int{}
	}
	if r.Statuses == nil {
		r.Statuses = map[string]int{}
	}
	r.Severities[string(rec.Severity)]++
	r.Statuses[string(rec.Status)]++
}

// CaseRecord captures evidence for a single case.
type CaseRecord struct {
	Index           int             `json:"index"`
	PatientID       string          `json:"patient_id,omitempty"`
	SymptomsRef     string          `json:"symptoms_ref,omitempty"`
	SymptomsHash    string          `json:"symptoms_hash,omitempty"`
	Age             *int            `json:"age,omitempty"`
	Gender          string          `json:"gender,omitempty"`
	ValidationError string          `json:"validation_error,omitempty"`
	Result          schema.Record   `json:"result"`
	Metadata        schema.Metadata `json:"metadata"`
	StoredID        string          `json:"stored_id,omitempty"`
}

// Writer writes evidence bundles to disk.
type Writer struct {
	baseDir string
	runDir  string
}

// NewWriter creates a new evidence writer rooted at baseDir/runID.
func NewWriter(baseDir, runID string) (*Writer, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("base directory is required")
	}
	if runID == "" {
		return nil, fmt.Errorf("run ID is required")
	}

	runDir := filepath.Join(baseDir, runID)
	for _, dir := range []string{runDir, filepath.Join(runDir, "cases"), filepath.Join(runDir, "blobs")} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return nil, err
		}
		// MkdirAll leaves existing directories and the umask alone.
		if err := os.Chmod(dir, dirPerm); err != nil {
			return nil, err
		}
	}

	return &Writer{baseDir: baseDir, runDir: runDir}, nil
}

// RunDir returns the run directory path.
func (w *Writer) RunDir() string {
	return w.runDir
}

// WriteRun writes run metadata to run.json.
func (w *Writer) WriteRun(record RunRecord) error {
	return writeJSON(filepath.Join(w.runDir, "run.json"), record)
}

// WriteCase writes a case record to cases/<index>.json.
func (w *Writer) WriteCase(record CaseRecord) error {
	if record.Index < 0 {
		return fmt.Errorf("case index must not be negative")
	}
	path := filepath.Join(w.runDir, "cases", fmt.Sprintf("%05d.json", record.Index))
	return writeJSON(path, record)
}

// WriteBlob stores content under blobs/ keyed by its sha256 and returns the
// run-relative reference and the hex digest. Identical content is written once.
func (w *Writer) WriteBlob(kind string, content []byte) (string, string, error) {
	sum := sha256.Sum256(content)
	sha := hex.EncodeToString(sum[:])
	ref := fmt.Sprintf("blobs/%s-%s.txt", sanitizeKind(kind), sha[:16])
	path := filepath.Join(w.runDir, filepath.FromSlash(ref))

	if _, err := os.Stat(path); err == nil {
		return ref, sha, nil
	}
	if err := os.WriteFile(path, content, filePerm); err != nil {
		return "", "", err
	}
	return ref, sha, nil
}

// HashFile returns the sha256 hex digest of the file at path.
func HashFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

func sanitizeKind(kind string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(kind) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "blob"
	}
	return b.String()
}

func writeJSON(path string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, filePerm)
}
