// Package service owns the in-memory account collection and the form
// workflow around it, writing the collection through to storage after every
// change.
package service

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/atinyakov/AccountKeeper/internal/models"
)

// ErrAccountNotFound is returned when no account has the requested id.
var ErrAccountNotFound = errors.New("account not found")

// ErrInvalidID is returned by Submit for a draft whose id is blank.
var ErrInvalidID = errors.New("account id must not be blank")

// ErrUnconvertibleDraft is returned by Submit when a draft passed validation
// but still could not be turned into an account.
var ErrUnconvertibleDraft = errors.New("draft cannot be converted to an account")

// AccountStorage persists the whole collection. Implementations never fail;
// see repository.AccountsStorage.
type AccountStorage interface {
	// Load returns the stored collection, empty when nothing usable is stored.
	Load(ctx context.Context) []models.Account
	// Save overwrites the stored collection.
	Save(ctx context.Context, accounts []models.Account)
}

// AccountsService is the single owner of the canonical account collection.
type AccountsService struct {
	mu       sync.Mutex
	storage  AccountStorage
	newID    models.IDGenerator
	log      *zap.Logger
	accounts []models.Account
}

// NewAccountsService builds a service over storage. The collection stays
// empty until Load is called. A nil newID uses models.NewUUID.
func NewAccountsService(storage AccountStorage, newID models.IDGenerator, log *zap.Logger) *AccountsService {
	if newID == nil {
		newID = models.NewUUID
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &AccountsService{
		storage:  storage,
		newID:    newID,
		log:      log,
		accounts: []models.Account{},
	}
}

// Load replaces the in-memory collection with what storage holds.
func (s *AccountsService) Load(ctx context.Context) {
	accounts := s.storage.Load(ctx)
	if accounts == nil {
		accounts = []models.Account{}
	}

	s.mu.Lock()
	s.accounts = accounts
	s.mu.Unlock()

	s.log.Info("accounts loaded", zap.Int("count", len(accounts)))
}

// List returns a copy of the collection in insertion order.
func (s *AccountsService) List() []models.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.accounts)
}

// Get returns the account with the given id.
func (s *AccountsService) Get(id string) (models.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		return s.accounts[i], true
	}
	return models.Account{}, false
}

// Upsert replaces the account with the same id, or appends it, and saves.
func (s *AccountsService) Upsert(ctx context.Context, account models.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(account.ID); i >= 0 {
		s.accounts[i] = account
	} else {
		s.accounts = append(s.accounts, account)
	}
	s.storage.Save(ctx, slices.Clone(s.accounts))
}

// Remove deletes the account with the given id and saves. It reports
// whether anything was removed; nothing is written when it was not.
func (s *AccountsService) Remove(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.accounts = slices.Delete(s.accounts, i, i+1)
	s.storage.Save(ctx, slices.Clone(s.accounts))
	return true
}

// NewDraft returns an empty draft with a freshly generated id.
func (s *AccountsService) NewDraft() models.AccountDraft {
	return models.NewEmptyAccountDraft(s.newID)
}

// EditDraft projects the stored account with the given id into a draft.
func (s *AccountsService) EditDraft(id string) (models.AccountDraft, error) {
	account, ok := s.Get(id)
	if !ok {
		return models.AccountDraft{}, ErrAccountNotFound
	}
	return models.AccountToDraft(account), nil
}

// Submit validates draft and, when it has no errors, stores the resulting
// account. A non-empty errors map means nothing was persisted.
func (s *AccountsService) Submit(ctx context.Context, draft models.AccountDraft) (models.Account, models.AccountDraftErrors, error) {
	if strings.TrimSpace(draft.ID) == "" {
		return models.Account{}, models.AccountDraftErrors{}, ErrInvalidID
	}
	errs := models.ValidateAccountDraft(draft)
	if len(errs) > 0 {
		return models.Account{}, errs, nil
	}

	account, ok := models.DraftToAccount(draft)
	if !ok {
		return models.Account{}, errs, ErrUnconvertibleDraft
	}

	s.Upsert(ctx, account)
	return account, errs, nil
}

// indexOf must be called with s.mu held.
func (s *AccountsService) indexOf(id string) int {
	return slices.IndexFunc(s.accounts, func(a models.Account) bool { return a.ID == id })
}
