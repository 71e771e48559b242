// Package http exposes the account collection as a JSON API.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/atinyakov/AccountKeeper/internal/models"
	"github.com/atinyakov/AccountKeeper/internal/service"
)

// AccountsService defines the account operations required by AccountsHandler.
type AccountsService interface {
	// List returns every stored account in order.
	List() []models.Account
	// NewDraft returns an empty draft with a fresh id.
	NewDraft() models.AccountDraft
	// EditDraft projects the stored account id into a draft.
	EditDraft(id string) (models.AccountDraft, error)
	// Submit validates and stores draft, returning field errors when invalid.
	Submit(ctx context.Context, draft models.AccountDraft) (models.Account, models.AccountDraftErrors, error)
	// Remove deletes the account id, reporting whether it existed.
	Remove(ctx context.Context, id string) bool
}

// AccountsHandler handles HTTP requests for accounts and their drafts.
type AccountsHandler struct {
	AccountsService AccountsService
	// Logger receives response write failures; nil discards them.
	Logger *zap.Logger
}

// ValidationErrorResponse is the 422 body returned for an invalid draft.
type ValidationErrorResponse struct {
	Errors models.AccountDraftErrors `json:"errors"`
}

// List handles GET /api/accounts.
func (h *AccountsHandler) List(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.AccountsService.List())
}

// NewDraft handles POST /api/accounts/drafts.
func (h *AccountsHandler) NewDraft(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusCreated, h.AccountsService.NewDraft())
}

// EditDraft handles GET /api/accounts/{id}/draft.
func (h *AccountsHandler) EditDraft(w http.ResponseWriter, r *http.Request) {
	draft, err := h.AccountsService.EditDraft(chi.URLParam(r, "id"))
	if errors.Is(err, service.ErrAccountNotFound) {
		http.Error(w, "account not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, draft)
}

// Save handles PUT /api/accounts/{id}. The body is a draft; the id in the
// path takes precedence over the one in the body.
func (h *AccountsHandler) Save(w http.ResponseWriter, r *http.Request) {
	var draft models.AccountDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	draft.ID = chi.URLParam(r, "id")

	account, errs, err := h.AccountsService.Submit(r.Context(), draft)
	if errors.Is(err, service.ErrInvalidID) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if len(errs) > 0 {
		h.writeJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{Errors: errs})
		return
	}
	h.writeJSON(w, http.StatusOK, account)
}

// Delete handles DELETE /api/accounts/{id}.
func (h *AccountsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.AccountsService.Remove(r.Context(), chi.URLParam(r, "id")) {
		http.Error(w, "account not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AccountsHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil && h.Logger != nil {
		h.Logger.Debug("failed to write response", zap.Int("status", status), zap.Error(err))
	}
}
