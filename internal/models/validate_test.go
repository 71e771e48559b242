package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAccountDraft(t *testing.T) {
	tests := []struct {
		name  string
		draft AccountDraft
		want  AccountDraftErrors
	}{
		{
			name:  "valid local draft",
			draft: AccountDraft{ID: "1", LabelInput: "a;b", Type: AccountTypeLocal, Login: "user", Password: "secret"},
			want:  AccountDraftErrors{},
		},
		{
			name:  "local draft without password",
			draft: AccountDraft{ID: "1", LabelInput: "a;b", Type: AccountTypeLocal, Login: "user", Password: ""},
			want:  AccountDraftErrors{FieldPassword: "Обязательное поле"},
		},
		{
			name: "ldap ignores a long password",
			draft: AccountDraft{
				ID:       "1",
				Type:     AccountTypeLDAP,
				Login:    "user",
				Password: "ignored-but-too-long-" + strings.Repeat("x", 100),
			},
			want: AccountDraftErrors{},
		},
		{
			name:  "ldap ignores an empty password",
			draft: AccountDraft{ID: "1", Type: AccountTypeLDAP, Login: "user"},
			want:  AccountDraftErrors{},
		},
		{
			name:  "empty draft reports every required field",
			draft: AccountDraft{ID: "1"},
			want: AccountDraftErrors{
				FieldType:  MessageTypeRequired,
				FieldLogin: MessageRequired,
			},
		},
		{
			name:  "unknown type",
			draft: AccountDraft{ID: "1", Type: "ADMIN", Login: "user", Password: "p"},
			want:  AccountDraftErrors{FieldType: MessageTypeRequired},
		},
		{
			name:  "whitespace login is required, not too long",
			draft: AccountDraft{ID: "1", Type: AccountTypeLDAP, Login: strings.Repeat(" ", 150)},
			want:  AccountDraftErrors{FieldLogin: MessageRequired},
		},
		{
			name:  "login is trimmed before the length check",
			draft: AccountDraft{ID: "1", Type: AccountTypeLDAP, Login: "  " + strings.Repeat("l", 100) + "  "},
			want:  AccountDraftErrors{},
		},
		{
			name:  "login too long",
			draft: AccountDraft{ID: "1", Type: AccountTypeLDAP, Login: strings.Repeat("l", 101)},
			want:  AccountDraftErrors{FieldLogin: MessageLoginMax},
		},
		{
			name:  "label input at the limit",
			draft: AccountDraft{ID: "1", LabelInput: strings.Repeat("a", 50), Type: AccountTypeLDAP, Login: "u"},
			want:  AccountDraftErrors{},
		},
		{
			name:  "label input over the limit",
			draft: AccountDraft{ID: "1", LabelInput: strings.Repeat("a", 51), Type: AccountTypeLDAP, Login: "u"},
			want:  AccountDraftErrors{FieldLabelInput: MessageLabelMax},
		},
		{
			name:  "label length counts characters, not bytes",
			draft: AccountDraft{ID: "1", LabelInput: strings.Repeat("я", 50), Type: AccountTypeLDAP, Login: "u"},
			want:  AccountDraftErrors{},
		},
		{
			name:  "password at the limit",
			draft: AccountDraft{ID: "1", Type: AccountTypeLocal, Login: "u", Password: strings.Repeat("p", 100)},
			want:  AccountDraftErrors{},
		},
		{
			name:  "password over the limit",
			draft: AccountDraft{ID: "1", Type: AccountTypeLocal, Login: "u", Password: strings.Repeat("p", 101)},
			want:  AccountDraftErrors{FieldPassword: MessagePasswordMax},
		},
		{
			name:  "whitespace password on local is required",
			draft: AccountDraft{ID: "1", Type: AccountTypeLocal, Login: "u", Password: "   "},
			want:  AccountDraftErrors{FieldPassword: MessageRequired},
		},
		{
			name:  "over-long whitespace password reports length only",
			draft: AccountDraft{ID: "1", Type: AccountTypeLocal, Login: "u", Password: strings.Repeat(" ", 101)},
			want:  AccountDraftErrors{FieldPassword: MessagePasswordMax},
		},
		{
			name: "all fields failing at once",
			draft: AccountDraft{
				ID:         "1",
				LabelInput: strings.Repeat("a", 51),
				Type:       "",
				Login:      "",
				Password:   strings.Repeat("p", 101),
			},
			want: AccountDraftErrors{
				FieldLabelInput: MessageLabelMax,
				FieldType:       MessageTypeRequired,
				FieldLogin:      MessageRequired,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateAccountDraft(tt.draft))
		})
	}
}

func TestValidateAccountDraft_BoundaryLengths(t *testing.T) {
	for _, n := range []int{0, 50, 100, 101} {
		s := strings.Repeat("x", n)
		for _, typ := range []AccountType{"", AccountTypeLDAP, AccountTypeLocal} {
			draft := AccountDraft{ID: "b", LabelInput: s, Type: typ, Login: s, Password: s}
			assert.NotPanics(t, func() { ValidateAccountDraft(draft) })
		}
	}
}

func TestValidateAccountDraft_FreshResult(t *testing.T) {
	draft := AccountDraft{ID: "1", Type: AccountTypeLocal, Login: "u"}
	first := ValidateAccountDraft(draft)
	first[FieldLogin] = "tampered"

	draft.Password = "now set"
	assert.Empty(t, ValidateAccountDraft(draft))
}
