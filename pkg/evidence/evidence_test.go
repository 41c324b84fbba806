package evidence

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/zen-systems/medtriage/pkg/schema"
)

func TestEvidenceWriter(t *testing.T) {
	dir := t.TempDir()
	writer, err := NewWriter(dir, "run-123")
	if err != nil {
		t.Fatalf("new writer: %v", err)
	}

	run := RunRecord{
		ID:         "run-123",
		Timestamp:  time.Now().UTC(),
		InputFile:  "cases.yaml",
		InputHash:  "abc",
		Capability: "rule-only",
		Cases:      1,
	}
	run.Tally(schema.Record{Severity: schema.SeverityHigh, Status: schema.StatusAssigned})
	if err := writer.WriteRun(run); err != nil {
		t.Fatalf("write run: %v", err)
	}

	c := CaseRecord{
		Index:  0,
		Result: schema.Record{MedicalCategory: "Orthopedics", Severity: schema.SeverityHigh},
	}
	if err := writer.WriteCase(c); err != nil {
		t.Fatalf("write case: %v", err)
	}

	if _, err := os.Stat(filepath.Join(writer.RunDir(), "run.json")); err != nil {
		t.Fatalf("missing run.json: %v", err)
	}
	casePath := filepath.Join(writer.RunDir(), "cases", "00000.json")
	if _, err := os.Stat(casePath); err != nil {
		t.Fatalf("missing case file: %v", err)
	}

	if runtime.GOOS != "windows" {
		assertPerm(t, writer.RunDir(), 0700)
		assertPerm(t, filepath.Join(writer.RunDir(), "cases"), 0700)
		assertPerm(t, filepath.Join(writer.RunDir(), "blobs"), 0700)
		assertPerm(t, filepath.Join(writer.RunDir(), "run.json"), 0600)
		assertPerm(t, casePath, 0600)
	}

	data, err := os.ReadFile(filepath.Join(writer.RunDir(), "run.json"))
	if err != nil {
		t.Fatalf("read run.json: %v", err)
	}
	var decoded RunRecord
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode run.json: %v", err)
	}
	if decoded.Severities["HIGH"] != 1 || decoded.Statuses["ASSIGNED"] != 1 {
		t.Fatalf("unexpected tallies: %+v %+v", decoded.Severities, decoded.Statuses)
	}
}

func TestNewWriterRequiresArguments(t *testing.T) {
	if _, err := NewWriter("", "run"); err == nil {
		t.Fatalf("expected error for empty base dir")
	}
	if _, err := NewWriter(t.TempDir(), ""); err == nil {
		t.Fatalf("expected error for empty run id")
	}
}

func TestWriteCaseRejectsNegativeIndex(t *testing.T) {
	writer, err := NewWriter(t.TempDir(), "run")
	if err != nil {
		t.Fatalf("new writer: %v", err)
	}
	if err := writer.WriteCase(CaseRecord{Index: -1}); err == nil {
		t.Fatalf("expected error for negative index")
	}
}

func TestWriteBlob(t *testing.T) {
	dir := t.TempDir()
	writer, err := NewWriter(dir, "run1")
	if err != nil {
		t.Fatalf("new writer: %v", err)
	}

	content := []byte("chest pain radiating to left arm")
	sum := sha256.Sum256(content)
	expectedSha := hex.EncodeToString(sum[:])

	ref, sha, err := writer.WriteBlob("symptoms", content)
	if err != nil {
		t.Fatalf("write blob: %v", err)
	}
	if sha != expectedSha {
		t.Fatalf("sha mismatch: %s", sha)
	}

	blobPath := filepath.Join(writer.RunDir(), ref)
	data, err := os.ReadFile(blobPath)
	if err != nil {
		t.Fatalf("read blob: %v", err)
	}
	if string(data) != string(content) {
		t.Fatalf("content mismatch: %q", string(data))
	}
	if runtime.GOOS != "windows" {
		assertPerm(t, blobPath, 0600)
	}

	ref2, sha2, err := writer.WriteBlob("symptoms", content)
	if err != nil {
		t.Fatalf("write blob again: %v", err)
	}
	if ref2 != ref || sha2 != sha {
		t.Fatalf("expected same ref and sha")
	}
}

func TestWriteBlobKindSanitization(t *testing.T) {
	dir := t.TempDir()
	writer, err := NewWriter(dir, "run2")
	if err != nil {
		t.Fatalf("new writer: %v", err)
	}

	ref, _, err := writer.WriteBlob("Symptoms 123/../", []byte("x"))
	if err != nil {
		t.Fatalf("write blob: %v", err)
	}

	if !strings.HasPrefix(ref, "blobs/") {
		t.Fatalf("expected blobs prefix: %s", ref)
	}
	if strings.Count(ref, "/") != 1 {
		t.Fatalf("unexpected path separators in ref: %s", ref)
	}

	kindSegment := strings.TrimPrefix(ref, "blobs/")
	kindSegment = strings.TrimSuffix(kindSegment, filepath.Ext(kindSegment))
	kind := strings.SplitN(kindSegment, "-", 2)[0]
	if kind != "symptoms123" {
		t.Fatalf("unexpected kind segment: %q", kind)
	}
}

func TestWriteBlobKindFallback(t *testing.T) {
	dir := t.TempDir()
	writer, err := NewWriter(dir, "run3")
	if err != nil {
		t.Fatalf("new writer: %v", err)
	}

	ref, _, err := writer.WriteBlob("!!!", []byte("y"))
	if err != nil {
		t.Fatalf("write blob: %v", err)
	}

	if !strings.HasPrefix(ref, "blobs/blob-") {
		t.Fatalf("expected blob kind fallback in ref: %s", ref)
	}
}

func TestHashFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.yaml")
	if err := os.WriteFile(path, []byte("hello"), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := HashFile(path)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	sum := sha256.Sum256([]byte("hello"))
	if got != hex.EncodeToString(sum[:]) {
		t.Fatalf("unexpected hash %s", got)
	}
	if _, err := HashFile(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func assertPerm(t *testing.T, path string, expected os.FileMode) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}
	if info.Mode().Perm() != expected {
		t.Fatalf("expected %s mode %o, got %o", path, expected, info.Mode().Perm())
	}
}
