package surveyimport

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vals999/asis-backend/internal/middleware"
)

// SetupRoutes wires the CSV upload endpoint. Imports are admin-only and
// rate-limited; a runaway client re-posting the same file would otherwise
// mint duplicate surveys on every attempt.
func SetupRoutes(fetcher middleware.SessionFetcher, ratePerMinute int) http.Handler {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimitMiddleware(ratePerMinute))
		r.Use(middleware.SessionMiddleware(fetcher))
		r.Use(middleware.AdminMiddleware(fetcher))
		r.Post("/", UploadHandler)
	})

	return r
}
