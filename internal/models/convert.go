package models

import (
	"strings"

	"github.com/google/uuid"
)

// IDGenerator returns a fresh identifier that is unique within the collection.
type IDGenerator func() string

// NewUUID is the default IDGenerator.
func NewUUID() string {
	return uuid.NewString()
}

// NewEmptyAccountDraft returns a blank draft with a new id and no type selected.
// A nil generator falls back to NewUUID.
func NewEmptyAccountDraft(newID IDGenerator) AccountDraft {
	if newID == nil {
		newID = NewUUID
	}
	return AccountDraft{ID: newID()}
}

// DraftToAccount converts a draft into a canonical record. It returns false
// when the draft has no valid type; lengths and required fields are not
// checked here, so callers validate first.
//
// The password is kept only for LOCAL accounts.
func DraftToAccount(draft AccountDraft) (Account, bool) {
	if !IsAccountType(draft.Type) {
		return Account{}, false
	}

	account := Account{
		ID:     draft.ID,
		Labels: ParseLabels(draft.LabelInput),
		Type:   draft.Type,
		Login:  strings.TrimSpace(draft.Login),
	}
	if draft.Type == AccountTypeLocal {
		password := draft.Password
		account.Password = &password
	}
	return account, true
}

// AccountToDraft projects a stored record into the editable form.
func AccountToDraft(account Account) AccountDraft {
	draft := AccountDraft{
		ID:         account.ID,
		LabelInput: JoinLabels(account.Labels),
		Type:       account.Type,
		Login:      account.Login,
	}
	if account.Password != nil {
		draft.Password = *account.Password
	}
	return draft
}
