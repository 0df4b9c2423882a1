package store

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"paypulse/domain/labor"
	"paypulse/internal/errors"
	"paypulse/ports"
)

// Storage keys. Both documents are plain JSON with the domain shapes;
// there is no versioning, a schema change requires a data wipe.
const (
	datasetKey = "paypulse:dataset"
	historyKey = "paypulse:upload_history"
)

// DatasetStore accumulates normalized records across upload batches,
// keyed by originating file. Every mutation is read-modify-write against
// the key-value port and persists the full updated documents immediately.
// The mutex serializes mutations; reads always come from persisted state,
// so a failed write can never leave memory ahead of the store.
type DatasetStore struct {
	mu sync.Mutex
	kv ports.KeyValueStore
}

// New creates a dataset store over the given persistence port
func New(kv ports.KeyValueStore) *DatasetStore {
	return &DatasetStore{kv: kv}
}

// Load reads the persisted dataset, returning an empty one when nothing
// has been stored yet.
func (s *DatasetStore) Load(ctx context.Context) (labor.Dataset, error) {
	data, err := s.kv.Get(ctx, datasetKey)
	if err != nil {
		return labor.Dataset{}, errors.Wrap(err, "failed to load dataset")
	}
	if data == nil {
		return labor.EmptyDataset(), nil
	}

	var dataset labor.Dataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		return labor.Dataset{}, errors.Wrap(err, "persisted dataset is corrupt")
	}
	if dataset.PayrollData == nil {
		dataset.PayrollData = []labor.PayrollRecord{}
	}
	if dataset.FeeData == nil {
		dataset.FeeData = []labor.FeeRecord{}
	}
	return dataset, nil
}

// History reads the persisted upload history, empty when nothing stored.
func (s *DatasetStore) History(ctx context.Context) ([]labor.UploadHistoryEntry, error) {
	data, err := s.kv.Get(ctx, historyKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load upload history")
	}
	if data == nil {
		return []labor.UploadHistoryEntry{}, nil
	}

	var history []labor.UploadHistoryEntry
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, errors.Wrap(err, "persisted upload history is corrupt")
	}
	return history, nil
}

// Append concatenates a batch's records onto the dataset and its history
// entries onto the upload history, then persists both. There is no
// deduplication: uploading the same file twice doubles its records by
// design. A failed persistence write is returned to the caller; the
// previously persisted state stays authoritative.
func (s *DatasetStore) Append(ctx context.Context, payroll []labor.PayrollRecord, fee []labor.FeeRecord, entries []labor.UploadHistoryEntry) (labor.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dataset, err := s.Load(ctx)
	if err != nil {
		return labor.Dataset{}, err
	}
	history, err := s.History(ctx)
	if err != nil {
		return labor.Dataset{}, err
	}

	dataset.PayrollData = append(dataset.PayrollData, payroll...)
	dataset.FeeData = append(dataset.FeeData, fee...)
	history = append(history, entries...)

	if err := s.persist(ctx, dataset, history); err != nil {
		return labor.Dataset{}, err
	}

	log.Printf("[DatasetStore] appended %d payroll + %d fee records (now %d total)",
		len(payroll), len(fee), dataset.RecordCount())
	return dataset, nil
}

// RemoveByFile deletes every record of the given type whose FileName
// matches, along with the matching history entry. Records from other
// files are untouched.
func (s *DatasetStore) RemoveByFile(ctx context.Context, fileName string, fileType labor.FileType) (labor.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dataset, err := s.Load(ctx)
	if err != nil {
		return labor.Dataset{}, err
	}
	history, err := s.History(ctx)
	if err != nil {
		return labor.Dataset{}, err
	}

	removed := 0
	switch fileType {
	case labor.FileTypePayroll:
		kept := dataset.PayrollData[:0]
		for _, r := range dataset.PayrollData {
			if r.FileName == fileName {
				removed++
				continue
			}
			kept = append(kept, r)
		}
		dataset.PayrollData = kept
	case labor.FileTypeFee:
		kept := dataset.FeeData[:0]
		for _, r := range dataset.FeeData {
			if r.FileName == fileName {
				removed++
				continue
			}
			kept = append(kept, r)
		}
		dataset.FeeData = kept
	default:
		return labor.Dataset{}, errors.InvalidInput("file type must be payroll or fee")
	}

	keptHistory := history[:0]
	for _, entry := range history {
		if entry.FileName == fileName && entry.FileType == fileType {
			continue
		}
		keptHistory = append(keptHistory, entry)
	}

	if err := s.persist(ctx, dataset, keptHistory); err != nil {
		return labor.Dataset{}, err
	}

	log.Printf("[DatasetStore] removed %d %s records from %s", removed, fileType, fileName)
	return dataset, nil
}

// persist writes the dataset first, then the history. A crash between
// the two writes can desynchronize them; acceptable for this data, and a
// failure of either write is reported rather than swallowed.
func (s *DatasetStore) persist(ctx context.Context, dataset labor.Dataset, history []labor.UploadHistoryEntry) error {
	datasetJSON, err := json.Marshal(dataset)
	if err != nil {
		return errors.Wrap(err, "failed to encode dataset")
	}
	historyJSON, err := json.Marshal(history)
	if err != nil {
		return errors.Wrap(err, "failed to encode upload history")
	}

	if err := s.kv.Set(ctx, datasetKey, datasetJSON); err != nil {
		return errors.PersistenceWrite(datasetKey, err)
	}
	if err := s.kv.Set(ctx, historyKey, historyJSON); err != nil {
		return errors.PersistenceWrite(historyKey, err)
	}
	return nil
}
