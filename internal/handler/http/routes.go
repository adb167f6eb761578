package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}
	router.Use(middleware.Compress(5, "application/json"))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/verify", h.verifyEmail)
		r.Get("/api/auth/verify", h.verifyEmail)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/logout", h.logout)
		r.Post("/api/auth/password/forgot", h.forgotPassword)
		r.Post("/api/auth/password/reset", h.resetPassword)

		r.Get("/api/version/", h.getServerVersion)
		if h.gatherer != nil {
			r.Method("GET", "/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))
		}
	})

	// routes for any signed-in user
	router.Group(func(r chi.Router) {
		r.Use(h.requireAuth)

		r.Get("/api/auth/csrf", h.csrfToken)
		r.Get("/api/user/me", h.currentUser)
		r.With(h.requireAccess).Get("/api/access/status", h.accessStatus)
	})

	// back office
	router.Group(func(r chi.Router) {
		r.Use(h.requireAuth)
		r.Use(h.requireAdmin)

		r.Post("/api/admin/access-codes", h.createAccessCode)
		r.Get("/api/admin/access-codes", h.listAccessCodes)
		r.Post("/api/admin/access-codes/{code}/deactivate", h.deactivateAccessCode)
		r.Put("/api/admin/users/{id}/subscription", h.setSubscription)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
