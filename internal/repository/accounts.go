// Package repository persists the account collection into a key/value store,
// sanitizing whatever it reads back.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/atinyakov/AccountKeeper/internal/metrics"
	"github.com/atinyakov/AccountKeeper/internal/models"
	"github.com/atinyakov/AccountKeeper/internal/storage"
)

// DefaultStorageKey is the key the account collection is stored under.
const DefaultStorageKey = "accountkeeper.accounts.v1"

// AccountsStorage loads and saves the whole account collection as a single
// JSON array. Neither operation ever fails: faults are logged and swallowed.
type AccountsStorage struct {
	store storage.Store
	key   string
	log   *zap.Logger
}

// NewAccountsStorage returns an AccountsStorage over store. An empty key
// means DefaultStorageKey, a nil log discards diagnostics.
func NewAccountsStorage(store storage.Store, key string, log *zap.Logger) *AccountsStorage {
	if key == "" {
		key = DefaultStorageKey
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &AccountsStorage{store: store, key: key, log: log}
}

// Key returns the storage key in use.
func (s *AccountsStorage) Key() string {
	return s.key
}

// Load reads the stored collection. Missing data, unreadable storage and a
// malformed blob all yield an empty slice; malformed entries are skipped.
func (s *AccountsStorage) Load(ctx context.Context) []models.Account {
	raw, found, err := s.store.Get(ctx, s.key)
	if err != nil {
		s.log.Warn("failed to load accounts from storage", zap.String("key", s.key), zap.Error(err))
		metrics.StorageFailures.WithLabelValues(metrics.OpLoad).Inc()
		return []models.Account{}
	}
	if !found || raw == "" {
		return []models.Account{}
	}

	accounts, err := s.decode([]byte(raw))
	if err != nil {
		s.log.Warn("failed to decode stored accounts", zap.String("key", s.key), zap.Error(err))
		metrics.DroppedEntries.WithLabelValues(metrics.ReasonMalformedBlob).Inc()
		return []models.Account{}
	}
	return accounts
}

// Save overwrites the stored collection with accounts.
func (s *AccountsStorage) Save(ctx context.Context, accounts []models.Account) {
	b, err := json.Marshal(normalize(accounts))
	if err != nil {
		s.log.Warn("failed to encode accounts", zap.Error(err))
		metrics.StorageFailures.WithLabelValues(metrics.OpSave).Inc()
		return
	}
	if err := s.store.Set(ctx, s.key, string(b)); err != nil {
		s.log.Warn("failed to save accounts to storage", zap.String("key", s.key), zap.Error(err))
		metrics.StorageFailures.WithLabelValues(metrics.OpSave).Inc()
		return
	}
	metrics.AccountsStored.Set(float64(len(accounts)))
}

// normalize returns accounts with every nil slice replaced by an empty one,
// so the stored array and each labels field encode as [] rather than null.
func normalize(accounts []models.Account) []models.Account {
	out := make([]models.Account, len(accounts))
	for i, a := range accounts {
		if a.Labels == nil {
			a.Labels = []models.LabelItem{}
		}
		out[i] = a
	}
	return out
}

// decode parses raw into accounts. Syntax errors are returned; a valid JSON
// value that is not an array decodes to an empty slice.
func (s *AccountsStorage) decode(raw []byte) ([]models.Account, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			s.log.Debug("stored accounts are not an array", zap.String("key", s.key), zap.String("got", typeErr.Value))
			return []models.Account{}, nil
		}
		return nil, fmt.Errorf("parse accounts: %w", err)
	}

	accounts := make([]models.Account, 0, len(entries))
	for i, entry := range entries {
		account, ok := SanitizeAccount(entry)
		if !ok {
			s.log.Debug("dropping malformed stored account", zap.String("key", s.key), zap.Int("index", i))
			metrics.DroppedEntries.WithLabelValues(metrics.ReasonInvalidEntry).Inc()
			continue
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}
