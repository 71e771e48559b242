package shell

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/atinyakov/AccountKeeper/internal/models"
)

// promptDraft asks for every draft field, showing the current value of base
// in brackets. An empty answer keeps the current value; a single "-" clears it.
func (s *Shell) promptDraft(base models.AccountDraft) (models.AccountDraft, bool) {
	draft := base
	var ok bool

	if draft.LabelInput, ok = s.ask("Labels (separated by ;)", draft.LabelInput); !ok {
		return draft, false
	}

	var typ string
	if typ, ok = s.ask(typePrompt(), string(draft.Type)); !ok {
		return draft, false
	}
	draft.Type = models.AccountType(strings.ToUpper(strings.TrimSpace(typ)))

	if draft.Login, ok = s.ask("Login", draft.Login); !ok {
		return draft, false
	}

	if draft.Type == models.AccountTypeLocal {
		if draft.Password, ok = s.askSecret("Password", draft.Password); !ok {
			return draft, false
		}
	}
	return draft, true
}

// ask prints label and reads one line. It returns false on end of input.
func (s *Shell) ask(label, current string) (string, bool) {
	return s.read(label, current, current)
}

// askSecret is ask with the current value masked.
func (s *Shell) askSecret(label, current string) (string, bool) {
	return s.read(label, current, strings.Repeat("*", utf8.RuneCountInString(current)))
}

func (s *Shell) read(label, current, shown string) (string, bool) {
	if shown != "" {
		fmt.Fprintf(s.out, "%s [%s]: ", label, shown)
	} else {
		fmt.Fprintf(s.out, "%s: ", label)
	}
	if !s.in.Scan() {
		return current, false
	}
	answer := s.in.Text()
	switch {
	case answer == "":
		return current, true
	case answer == "-":
		return "", true
	default:
		return answer, true
	}
}

func typePrompt() string {
	names := make([]string, len(models.AccountTypeOptions))
	for i, opt := range models.AccountTypeOptions {
		names[i] = fmt.Sprintf("%s = %s", opt.Value, opt.Label)
	}
	return "Type (" + strings.Join(names, ", ") + ")"
}

// fieldOrder fixes the order validation errors are printed in.
var fieldOrder = []models.DraftField{
	models.FieldLabelInput,
	models.FieldType,
	models.FieldLogin,
	models.FieldPassword,
}

func (s *Shell) printErrors(errs models.AccountDraftErrors) {
	fmt.Fprintln(s.out, "Account not saved:")
	for _, f := range fieldOrder {
		if msg, ok := errs[f]; ok {
			fmt.Fprintf(s.out, "  %s: %s\n", f, msg)
		}
	}
}
