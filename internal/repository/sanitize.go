package repository

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/atinyakov/AccountKeeper/internal/models"
)

// SanitizeAccount rebuilds a trustworthy Account from one untrusted stored
// JSON value. It returns false when the value cannot be an account: not an
// object, blank id, unknown type or non-string login. Bad labels are dropped
// individually, and the password survives only on LOCAL accounts.
func SanitizeAccount(raw json.RawMessage) (models.Account, bool) {
	fields, ok := object(raw)
	if !ok {
		return models.Account{}, false
	}

	id, ok := stringField(fields, "id")
	if !ok || strings.TrimSpace(id) == "" {
		return models.Account{}, false
	}

	typ, ok := stringField(fields, "type")
	if !ok || !models.IsAccountType(models.AccountType(typ)) {
		return models.Account{}, false
	}

	login, ok := stringField(fields, "login")
	if !ok {
		return models.Account{}, false
	}

	account := models.Account{
		ID:     id,
		Labels: sanitizeLabels(fields["labels"]),
		Type:   models.AccountType(typ),
		Login:  login,
	}
	if account.Type == models.AccountTypeLocal {
		if password, ok := stringField(fields, "password"); ok {
			account.Password = &password
		}
	}
	return account, true
}

// sanitizeLabels keeps the well-formed labels of raw in order. Anything other
// than an array yields no labels.
func sanitizeLabels(raw json.RawMessage) []models.LabelItem {
	labels := make([]models.LabelItem, 0)

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return labels
	}
	for _, item := range items {
		if label, ok := sanitizeLabel(item); ok {
			labels = append(labels, label)
		}
	}
	return labels
}

func sanitizeLabel(raw json.RawMessage) (models.LabelItem, bool) {
	fields, ok := object(raw)
	if !ok {
		return models.LabelItem{}, false
	}
	text, ok := stringField(fields, "text")
	if !ok {
		return models.LabelItem{}, false
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return models.LabelItem{}, false
	}
	return models.LabelItem{Text: text}, true
}

// object decodes raw as a JSON object. null is not an object.
func object(raw json.RawMessage) (map[string]json.RawMessage, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return nil, false
	}
	return fields, true
}

// stringField returns fields[key] if it is present and a JSON string.
func stringField(fields map[string]json.RawMessage, key string) (string, bool) {
	raw, ok := fields[key]
	if !ok {
		return "", false
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}
