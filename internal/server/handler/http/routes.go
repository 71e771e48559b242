package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/atinyakov/AccountKeeper/internal/middleware"
)

// NewRouter constructs the HTTP handler serving the AccountKeeper API.
//
// Routes:
//
//	GET    /api/accounts            → accountsHandler.List
//	POST   /api/accounts/drafts     → accountsHandler.NewDraft
//	GET    /api/accounts/{id}/draft → accountsHandler.EditDraft
//	PUT    /api/accounts/{id}       → accountsHandler.Save
//	DELETE /api/accounts/{id}       → accountsHandler.Delete
//	GET    /metrics                 → prometheus exposition
//
// Middleware chain (applied in order):
//  1. Recoverer: panics become 500
//  2. WithRequestLogging(logger): one log line per request
//  3. AllowContentType("application/json"): non-JSON bodies on /api get 415
func NewRouter(accountsHandler *AccountsHandler, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.WithRequestLogging(logger))

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(chiMiddleware.AllowContentType("application/json"))

		r.Get("/accounts", accountsHandler.List)
		r.Post("/accounts/drafts", accountsHandler.NewDraft)
		r.Get("/accounts/{id}/draft", accountsHandler.EditDraft)
		r.Put("/accounts/{id}", accountsHandler.Save)
		r.Delete("/accounts/{id}", accountsHandler.Delete)
	})

	return r
}
