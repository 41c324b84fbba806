package store

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const (
	recordPrefix  = "triage:"
	idPrefix      = "triage_id:"
	patientPrefix = "triage_patient:"
)

// BadgerRepository keeps triage records in an embedded badger database.
//
// Records live under "triage:{timestamp_padded}:{uuid}" so a reverse prefix scan
// yields newest first. "triage_id:{uuid}" and "triage_patient:{hex_patient}:{timestamp_padded}:{uuid}"
// point back to the record key.
type BadgerRepository struct {
	db  *badger.DB
	log *slog.Logger
}

// NewBadgerRepository opens (or creates) a badger database at path.
func NewBadgerRepository(path string, log *slog.Logger) (*BadgerRepository, error) {
	if log == nil {
		log = slog.Default()
	}
	db, err := badger.Open(badger.DefaultOptions(path).WithLoggingLevel(badger.ERROR))
	if err != nil {
		return nil, fmt.Errorf("open badger at %s: %w", path, err)
	}
	return &BadgerRepository{db: db, log: log}, nil
}

func recordKey(rec StoredRecord) []byte {
	return []byte(fmt.Sprintf("%s%019d:%s", recordPrefix, rec.At.UnixNano(), rec.ID))
}

func patientKeyPrefix(patientID string) []byte {
	return []byte(patientPrefix + hex.EncodeToString([]byte(patientID)) + ":")
}

// Save stores rec and its lookup keys in one transaction.
func (r *BadgerRepository) Save(_ context.Context, rec StoredRecord) error {
	if rec.ID == uuid.Nil {
		return fmt.Errorf("record ID is required")
	}
	bytes, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	key := recordKey(rec)
	return r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(key, bytes); err != nil {
			return err
		}
		if err := txn.Set([]byte(idPrefix+rec.ID.String()), key); err != nil {
			return err
		}
		if rec.PatientID != "" {
			pk := append(patientKeyPrefix(rec.PatientID), key[len(recordPrefix):]...)
			if err := txn.Set(pk, key); err != nil {
				return err
			}
		}
		return nil
	})
}

// Get loads the record with the given ID.
func (r *BadgerRepository) Get(_ context.Context, id uuid.UUID) (StoredRecord, error) {
	var rec StoredRecord
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(idPrefix + id.String()))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		key, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		rec, err = readRecord(txn, key)
		return err
	})
	return rec, err
}

// Recent lists up to limit records, newest first.
func (r *BadgerRepository) Recent(_ context.Context, limit int) ([]StoredRecord, error) {
	limit = normalizeLimit(limit)
	var records []StoredRecord
	err := r.db.View(func(txn *badger.Txn) error {
		return scanReverse(txn, []byte(recordPrefix), limit, func(value []byte) error {
			var rec StoredRecord
			if err := json.Unmarshal(value, &rec); err != nil {
				return err
			}
			records = append(records, rec)
			return nil
		})
	})
	return records, err
}

// History lists up to limit records of one patient, newest first.
func (r *BadgerRepository) History(_ context.Context, patientID string, limit int) ([]StoredRecord, error) {
	limit = normalizeLimit(limit)
	var records []StoredRecord
	err := r.db.View(func(txn *badger.Txn) error {
		return scanReverse(txn, patientKeyPrefix(patientID), limit, func(value []byte) error {
			rec, err := readRecord(txn, value)
			if err != nil {
				return err
			}
			records = append(records, rec)
			return nil
		})
	})
	return records, err
}

// Close closes the underlying database.
func (r *BadgerRepository) Close() error {
	return r.db.Close()
}

func readRecord(txn *badger.Txn, key []byte) (StoredRecord, error) {
	var rec StoredRecord
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return rec, ErrNotFound
	}
	if err != nil {
		return rec, err
	}
	err = item.Value(func(value []byte) error {
		return json.Unmarshal(value, &rec)
	})
	return rec, err
}

// scanReverse visits the values under prefix from the highest key down.
func scanReverse(txn *badger.Txn, prefix []byte, limit int, visit func(value []byte) error) error {
	options := badger.DefaultIteratorOptions
	options.Reverse = true
	it := txn.NewIterator(options)
	defer it.Close()

	seekKey := append(append([]byte{}, prefix...), 0xFF)
	count := 0
	for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
		if count == limit {
			break
		}
		value, err := it.Item().ValueCopy(nil)
		if err != nil {
			return err
		}
		if err := visit(value); err != nil {
			return err
		}
		count++
	}
	return nil
}
