// Package storage provides the raw text key/value backends that account
// collections are persisted into.
package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Store is a text key/value store. Get reports a missing key with
// found == false and a nil error.
type Store interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}

// Backend names accepted by Open.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// ErrUnknownBackend is returned by Open for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown storage backend")

// MemoryStore keeps values in process memory.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Config selects and parameterizes a backend for Open.
type Config struct {
	Backend     string
	Path        string
	DatabaseDSN string
	RedisAddr   string
	// Logger receives backend diagnostics; nil discards them.
	Logger *zap.Logger
}

// Open builds the Store described by cfg. The returned close function
// releases the backend's connections and is never nil.
func Open(ctx context.Context, cfg Config) (Store, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Backend {
	case BackendMemory:
		return NewMemoryStore(), noop, nil
	case BackendFile, "":
		return NewFileStore(cfg.Path, cfg.Logger), noop, nil
	case BackendPostgres:
		s, err := OpenPostgres(cfg.DatabaseDSN)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil
	case BackendRedis:
		s, err := OpenRedis(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil
	default:
		return nil, noop, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
