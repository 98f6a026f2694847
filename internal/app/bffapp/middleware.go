package bffapp

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/CePseudoBE/taxcalc/internal/domain/rules"
	"github.com/CePseudoBE/taxcalc/internal/infra/backend"
	"github.com/CePseudoBE/taxcalc/internal/session"
	httperrors "github.com/CePseudoBE/taxcalc/internal/transport/http/errors"
)

func ApplyMiddlewares(r chiRouter, log *zap.Logger) {
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(requestLogger(log))
}

// SessionMiddleware binds the per-request cookie store into the context so
// handlers and the Require middleware share one view of the session.
func SessionMiddleware(manager *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if manager == nil {
				httperrors.WriteError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "session store is unavailable")
				return
			}
			ctx := session.WithStore(r.Context(), manager.Bind(w, r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Require declares a route's access level. Every non-public route goes
// through this single policy gate, so no privileged route can be left with an
// ad hoc check.
func Require(requirement rules.Requirement) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			store, ok := session.StoreFromContext(r.Context())
			if !ok {
				httperrors.WriteError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "session store is unavailable")
				return
			}

			switch rules.Check(requirement, store.Read(), time.Now()) {
			case rules.DenyNone:
				next.ServeHTTP(w, r)
			case rules.DenyForbidden:
				httperrors.WriteError(w, http.StatusForbidden, backend.CodeForbidden, "Admin or moderator access required")
			default:
				httperrors.WriteError(w, http.StatusUnauthorized, backend.CodeUnauthorized, "Authentication required")
			}
		})
	}
}

func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			if log != nil {
				log.Info("http_request",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Duration("duration", time.Since(start)),
				)
			}
		})
	}
}

type chiRouter interface {
	Use(middlewares ...func(http.Handler) http.Handler)
}
