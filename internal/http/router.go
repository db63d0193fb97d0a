package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/bolao/internal/auth"
	"github.com/MrJamesThe3rd/bolao/internal/http/agent"
	"github.com/MrJamesThe3rd/bolao/internal/http/comment"
	"github.com/MrJamesThe3rd/bolao/internal/http/importcsv"
	"github.com/MrJamesThe3rd/bolao/internal/http/registration"
	"github.com/MrJamesThe3rd/bolao/internal/http/respond"
	"github.com/MrJamesThe3rd/bolao/internal/http/transaction"
	"github.com/MrJamesThe3rd/bolao/internal/metrics"
)

type Handlers struct {
	Registration *registration.Handler
	Comments     *comment.Handler
	Import       *importcsv.Handler
	Transactions *transaction.Handler
	Agents       *agent.Handler
}

func New(h Handlers, authn *auth.Authenticator, allowedOrigins []string) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	router.Use(metrics.Middleware)

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		respond.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	router.Handle("/metrics", metrics.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/check-email", h.Registration.Routes)

		r.Route("/comments", func(r chi.Router) {
			r.Use(authn.Authenticate)
			r.Use(middleware.AllowContentType("application/json"))
			h.Comments.Routes(r)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(authn.Authenticate)
			r.Use(authn.RequireAdmin)

			h.Import.Routes(r)

			r.Group(func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				h.Transactions.Routes(r)
			})

			h.Agents.Routes(r)
		})
	})

	return router
}
