package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// FileStore keeps all keys in a single JSON object file. A missing file is
// an empty store; every Set rewrites the whole file.
type FileStore struct {
	path string
	log  *zap.Logger
	mu   sync.Mutex
}

// NewFileStore returns a FileStore backed by the file at path. A nil log
// discards diagnostics.
func NewFileStore(path string, log *zap.Logger) *FileStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &FileStore{path: path, log: log}
}

func (fs *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	data, err := fs.read()
	if err != nil {
		return "", false, err
	}
	v, ok := data[key]
	return v, ok, nil
}

// Set stores value under key. A file that cannot be decoded is replaced by
// one holding only key.
func (fs *FileStore) Set(_ context.Context, key, value string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	data, err := fs.read()
	if err != nil {
		fs.log.Warn("discarding unreadable store file", zap.String("path", fs.path), zap.Error(err))
		data = make(map[string]string)
	}
	data[key] = value

	b, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	if err := fs.write(b); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	return nil
}

func (fs *FileStore) read() (map[string]string, error) {
	data := make(map[string]string)
	b, err := os.ReadFile(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			return data, nil
		}
		return nil, fmt.Errorf("read store: %w", err)
	}
	if len(b) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("decode store: %w", err)
	}
	if data == nil {
		data = make(map[string]string)
	}
	return data, nil
}

// write replaces the file through a temp file in the same directory, so a
// crash leaves either the old or the new content.
func (fs *FileStore) write(b []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(fs.path), filepath.Base(fs.path)+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0600); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), fs.path)
}
