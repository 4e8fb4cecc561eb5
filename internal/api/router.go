// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"finledger/internal/api/handler"
	"finledger/internal/auth"
)

// NewRouter sets up and returns a new HTTP router.
func NewRouter(
	userHandler *handler.UserHandler,
	statementHandler *handler.StatementHandler,
	tokens *auth.TokenManager,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(handler.DefaultTimeout))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/users", userHandler.CreateUser)
		r.Post("/sessions", userHandler.CreateSession)

		// Routes requiring a valid session token
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(tokens))

			r.Get("/profile", userHandler.GetProfile)

			r.Route("/statements", func(r chi.Router) {
				r.Post("/deposit", statementHandler.Deposit)
				r.Post("/withdraw", statementHandler.Withdraw)
				r.Get("/balance", statementHandler.GetBalance)
				r.Get("/{statementID}", statementHandler.GetStatementOperation)
			})
		})
	})

	return r
}
