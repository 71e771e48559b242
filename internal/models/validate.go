package models

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Validation messages shown next to the offending form field.
var (
	MessageRequired     = "Обязательное поле"
	MessageTypeRequired = "Выберите тип записи"
	MessageLabelMax     = fmt.Sprintf("Максимум %d символов", MaxLabelInputLength)
	MessageLoginMax     = fmt.Sprintf("Максимум %d символов", MaxLoginLength)
	MessagePasswordMax  = fmt.Sprintf("Максимум %d символов", MaxPasswordLength)
)

// ValidateAccountDraft checks every field of draft independently and returns
// the errors found. An empty map means the draft can be saved.
//
// The password is checked only for LOCAL drafts, length first: an
// over-long password of spaces reports the length error, not the required one.
func ValidateAccountDraft(draft AccountDraft) AccountDraftErrors {
	errs := AccountDraftErrors{}

	if charCount(draft.LabelInput) > MaxLabelInputLength {
		errs[FieldLabelInput] = MessageLabelMax
	}

	if !IsAccountType(draft.Type) {
		errs[FieldType] = MessageTypeRequired
	}

	login := strings.TrimSpace(draft.Login)
	switch {
	case login == "":
		errs[FieldLogin] = MessageRequired
	case charCount(login) > MaxLoginLength:
		errs[FieldLogin] = MessageLoginMax
	}

	if draft.Type == AccountTypeLocal {
		switch {
		case charCount(draft.Password) > MaxPasswordLength:
			errs[FieldPassword] = MessagePasswordMax
		case strings.TrimSpace(draft.Password) == "":
			errs[FieldPassword] = MessageRequired
		}
	}

	return errs
}

func charCount(s string) int {
	return utf8.RuneCountInString(s)
}
