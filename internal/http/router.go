package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/rentcredit/rentcredit/internal/http/dashboard"
	"github.com/rentcredit/rentcredit/internal/http/export"
	"github.com/rentcredit/rentcredit/internal/http/importcsv"
	"github.com/rentcredit/rentcredit/internal/http/payment"
	"github.com/rentcredit/rentcredit/internal/http/session"
	"github.com/rentcredit/rentcredit/internal/http/tenant"
)

func New(
	corsOrigin string,
	sessionV1 *session.Handler,
	tenantsV1 *tenant.Handler,
	paymentsV1 *payment.Handler,
	dashboardV1 *dashboard.Handler,
	importV1 *importcsv.Handler,
	exportV1 *export.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{corsOrigin},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/session", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			sessionV1.Routes(r)
		})

		r.Route("/tenants", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			tenantsV1.Routes(r)
		})

		r.Route("/payments", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			paymentsV1.Routes(r)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			dashboardV1.Routes(r)
		})

		r.Route("/import", importV1.Routes)

		r.Route("/export", exportV1.Routes)
	})

	return router
}
