package kv

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"paypulse/internal/errors"
)

// FileStore is a KeyValueStore persisted as one JSON document on disk.
// Every Set/Remove rewrites the file through a temp-file rename, so a
// crash mid-write never leaves a torn document behind.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore opens (or lazily creates) a JSON-file-backed store
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return nil, err
	}
	value, ok := values[key]
	if !ok {
		return nil, nil
	}
	return value, nil
}

func (s *FileStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}
	values[key] = json.RawMessage(value)
	return s.flush(values)
}

func (s *FileStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}
	delete(values, key)
	return s.flush(values)
}

func (s *FileStore) load() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return make(map[string]json.RawMessage), nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read store file %s", s.path)
	}

	values := make(map[string]json.RawMessage)
	if len(data) > 0 {
		if err := json.Unmarshal(data, &values); err != nil {
			return nil, errors.Wrapf(err, "store file %s is corrupt", s.path)
		}
	}
	return values, nil
}

func (s *FileStore) flush(values map[string]json.RawMessage) error {
	data, err := json.Marshal(values)
	if err != nil {
		return errors.Wrap(err, "failed to encode store contents")
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".paypulse-*")
	if err != nil {
		return errors.Wrap(err, "failed to create temp store file")
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrap(err, "failed to write store file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, "failed to close store file")
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, "failed to replace store file")
	}
	return nil
}
