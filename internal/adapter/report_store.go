package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"

	m "github.com/anonymousfse26/orbis/internal/model"
)

const recordKeyPrefix = "iteration/"

// ReportStore persists and retrieves iteration records.
type ReportStore interface {
	SaveRecords(path m.Path, records []m.IterationRecord) error
	LoadRecords(path m.Path) ([]m.IterationRecord, error)
}

type reportStore struct {
	logger *slog.Logger
}

// NewReportStore constructs a ReportStore backed by a badger database in
// the given directory.
func NewReportStore(logger *slog.Logger) ReportStore {
	return &reportStore{logger: logger}
}

// SaveRecords writes records keyed by iteration number. Records already in
// the store are overwritten.
func (rs *reportStore) SaveRecords(path m.Path, records []m.IterationRecord) error {
	db, err := rs.open(path, false)
	if err != nil {
		return err
	}

	defer func() { _ = db.Close() }()

	return db.Update(func(txn *badger.Txn) error {
		for _, record := range records {
			value, err := json.Marshal(record)
			if err != nil {
				return fmt.Errorf("encode iteration %d: %w", record.Iteration, err)
			}

			if err := txn.Set(recordKey(record.Iteration), value); err != nil {
				return fmt.Errorf("store iteration %d: %w", record.Iteration, err)
			}
		}

		return nil
	})
}

// LoadRecords returns every record in iteration order.
func (rs *reportStore) LoadRecords(path m.Path) ([]m.IterationRecord, error) {
	if _, err := os.Stat(string(path)); err != nil {
		return nil, fmt.Errorf("no records at %s: %w", path, err)
	}

	db, err := rs.open(path, true)
	if err != nil {
		return nil, err
	}

	defer func() { _ = db.Close() }()

	var records []m.IterationRecord

	err = db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(recordKeyPrefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var record m.IterationRecord

			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &record)
			})
			if err != nil {
				return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
			}

			records = append(records, record)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (rs *reportStore) open(path m.Path, readOnly bool) (*badger.DB, error) {
	if path == "" {
		return nil, errors.New("path is required for the record store")
	}

	if !readOnly {
		if err := os.MkdirAll(string(path), 0o750); err != nil {
			return nil, fmt.Errorf("create record directory %s: %w", path, err)
		}
	}

	opts := badger.DefaultOptions(string(path)).WithReadOnly(readOnly)

	if rs.logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: rs.logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open record store: %w", err)
	}

	return db, nil
}

// recordKey zero-pads the iteration so keys sort numerically.
func recordKey(iteration int) []byte {
	return []byte(fmt.Sprintf("%s%08d", recordKeyPrefix, iteration))
}

// badgerLogger adapts slog.Logger to badger's Logger interface.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}
