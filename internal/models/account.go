// Package models defines the account records kept by AccountKeeper, their
// editable draft form, and the pure rules that validate and convert between
// the two.
package models

import "strings"

// AccountType identifies how an account authenticates.
type AccountType string

const (
	// AccountTypeLDAP is an account backed by a directory; it never stores a password.
	AccountTypeLDAP AccountType = "LDAP"
	// AccountTypeLocal is a local account whose password is kept in the record.
	AccountTypeLocal AccountType = "LOCAL"
)

// AccountTypeOption pairs an account type with its display label.
type AccountTypeOption struct {
	Label string
	Value AccountType
}

// AccountTypeOptions lists the selectable account types in display order.
var AccountTypeOptions = []AccountTypeOption{
	{Label: "LDAP", Value: AccountTypeLDAP},
	{Label: "Локальная", Value: AccountTypeLocal},
}

// Field limits, counted in characters.
const (
	MaxLabelInputLength = 50
	MaxLoginLength      = 100
	MaxPasswordLength   = 100
)

// LabelSeparator joins label texts in the editable label input.
const LabelSeparator = ";"

// LabelItem is a single free-text tag attached to an account.
type LabelItem struct {
	Text string `json:"text"`
}

// Account is the canonical persisted record.
//
// Password is non-nil only for LOCAL accounts.
type Account struct {
	ID       string      `json:"id"`
	Labels   []LabelItem `json:"labels"`
	Type     AccountType `json:"type"`
	Login    string      `json:"login"`
	Password *string     `json:"password"`
}

// AccountDraft is the editable projection of an Account. Type may be empty
// while the user has not picked one yet.
type AccountDraft struct {
	ID         string      `json:"id"`
	LabelInput string      `json:"labelInput"`
	Type       AccountType `json:"type"`
	Login      string      `json:"login"`
	Password   string      `json:"password"`
}

// DraftField names a validated field of AccountDraft.
type DraftField string

const (
	FieldLabelInput DraftField = "labelInput"
	FieldType       DraftField = "type"
	FieldLogin      DraftField = "login"
	FieldPassword   DraftField = "password"
)

// AccountDraftErrors maps failing draft fields to a user-facing message.
// A field missing from the map is valid.
type AccountDraftErrors map[DraftField]string

// IsAccountType reports whether t is one of the known account types.
func IsAccountType(t AccountType) bool {
	return t == AccountTypeLDAP || t == AccountTypeLocal
}

// ParseLabels splits input on LabelSeparator, trims every piece and drops
// the empty ones. The result is never nil.
func ParseLabels(input string) []LabelItem {
	labels := make([]LabelItem, 0)
	for _, part := range strings.Split(input, LabelSeparator) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		labels = append(labels, LabelItem{Text: part})
	}
	return labels
}

// JoinLabels renders labels back into the editable single-string form.
func JoinLabels(labels []LabelItem) string {
	texts := make([]string, len(labels))
	for i, l := range labels {
		texts[i] = l.Text
	}
	return strings.Join(texts, LabelSeparator)
}
