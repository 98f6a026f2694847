package bffapp

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/CePseudoBE/taxcalc/internal/config"
	"github.com/CePseudoBE/taxcalc/internal/domain/rules"
	authsvc "github.com/CePseudoBE/taxcalc/internal/services/auth"
	"github.com/CePseudoBE/taxcalc/internal/session"
	"github.com/CePseudoBE/taxcalc/internal/transport/http/handlers"
)

type Dependencies struct {
	SessionManager *session.Manager
	Backend        handlers.Backend
	AuthService    *authsvc.Service
	Logger         *zap.Logger
	Config         config.Config
}

func RegisterRoutes(r chi.Router, deps Dependencies) {
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(deps.AuthService)
	submissionHandler := handlers.NewSubmissionHandler(deps.Backend)
	adminHandler := handlers.NewAdminReviewHandler(deps.Backend)
	savedSearchHandler := handlers.NewSavedSearchHandler(deps.Backend)
	profileHandler := handlers.NewProfileHandler(deps.Backend)

	sessionMW := SessionMiddleware(deps.SessionManager)
	requireAuth := Require(rules.Authenticated)
	requirePrivileged := Require(rules.Privileged)

	r.Get("/healthz", healthHandler.Get)

	r.Route("/api", func(r chi.Router) {
		r.Use(sessionMW)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/register", authHandler.Register)
			r.Post("/google", authHandler.Google)
			r.Get("/check", authHandler.Check)
			r.Post("/logout", authHandler.Logout)
		})

		r.With(requireAuth).Post("/submissions", submissionHandler.Create)
		r.With(requireAuth).Get("/submissions/my", submissionHandler.Mine)

		r.Route("/admin/submissions", func(r chi.Router) {
			r.Use(requirePrivileged)
			r.Get("/", adminHandler.List)
			r.Put("/{id}/approve", adminHandler.Approve)
			r.Put("/{id}/reject", adminHandler.Reject)
		})

		r.Route("/saved-searches", func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/", savedSearchHandler.List)
			r.Post("/", savedSearchHandler.Create)
			r.Delete("/{id}", savedSearchHandler.Delete)
		})

		r.With(requireAuth).Get("/users/me", profileHandler.Me)
		r.With(requireAuth).Delete("/users/me", profileHandler.DeleteAccount)
	})
}
