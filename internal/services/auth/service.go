package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/CePseudoBE/taxcalc/internal/domain/model"
	"github.com/CePseudoBE/taxcalc/internal/infra/backend"
	"github.com/CePseudoBE/taxcalc/internal/pkg/validate"
)

// SessionStore is the per-request view of the encrypted session cookie.
type SessionStore interface {
	Read() model.Session
	Write(model.Session) error
	Clear()
}

// Backend issues calls to the authoritative API.
type Backend interface {
	Do(ctx context.Context, req backend.Request, out any) error
}

// Service is the auth gateway: the only component that writes tokens into the
// session store. Per session it walks Anonymous -> Authenticated -> Anonymous.
type Service struct {
	backend Backend
	now     func() time.Time
}

func NewService(b Backend) *Service {
	return &Service{backend: b, now: time.Now}
}

// Login exchanges credentials for a backend token, stores the token in the
// session, and returns the identity. On any failure the session is untouched.
func (s *Service) Login(ctx context.Context, store SessionStore, email, password string) (model.Identity, error) {
	if !validate.Required(email) || !validate.Required(password) {
		return model.Identity{}, ErrInvalidInput
	}
	return s.authenticate(ctx, store, backend.Request{
		Method:   http.MethodPost,
		Endpoint: "/auth/login",
		Body:     credentialsRequest{Email: email, Password: password},
	})
}

// Register creates an account on the backend and signs the session in, same
// contract as Login.
func (s *Service) Register(ctx context.Context, store SessionStore, email, password string) (model.Identity, error) {
	if !validate.Required(email) || !validate.Required(password) {
		return model.Identity{}, ErrInvalidInput
	}
	return s.authenticate(ctx, store, backend.Request{
		Method:   http.MethodPost,
		Endpoint: "/auth/register",
		Body:     credentialsRequest{Email: email, Password: password},
	})
}

// GoogleLogin forwards a Google ID token assertion to the backend; the
// backend owns its verification.
func (s *Service) GoogleLogin(ctx context.Context, store SessionStore, idToken string) (model.Identity, error) {
	if !validate.Required(idToken) {
		return model.Identity{}, ErrInvalidInput
	}
	return s.authenticate(ctx, store, backend.Request{
		Method:   http.MethodPost,
		Endpoint: "/auth/google",
		Body:     googleRequest{IDToken: idToken},
	})
}

func (s *Service) authenticate(ctx context.Context, store SessionStore, req backend.Request) (model.Identity, error) {
	var payload authPayload
	if err := s.backend.Do(ctx, req, &payload); err != nil {
		return model.Identity{}, err
	}

	expiresAt := int64(0)
	if payload.ExpiresIn > 0 {
		expiresAt = s.now().Add(time.Duration(payload.ExpiresIn) * time.Second).UnixMilli()
	}
	if err := store.Write(model.Session{
		AccessToken: payload.AccessToken,
		UserID:      payload.User.ID,
		ExpiresAt:   expiresAt,
	}); err != nil {
		return model.Identity{}, err
	}

	return payload.User.toModel(), nil
}

// Check resolves the current session to an identity. It returns ok=false for
// anonymous sessions without error. A locally expired session is cleared
// without a backend round trip; an unexpired one is re-validated against the
// backend, which may have revoked the token early. A rejected token is never
// left in the cookie.
func (s *Service) Check(ctx context.Context, store SessionStore) (model.Identity, bool, error) {
	sess := store.Read()
	if sess.Anonymous() {
		return model.Identity{}, false, nil
	}
	if sess.Expired(s.now()) {
		store.Clear()
		return model.Identity{}, false, nil
	}

	var payload identityPayload
	err := s.backend.Do(ctx, backend.Request{
		Method:   http.MethodGet,
		Endpoint: "/auth/check",
		Token:    sess.AccessToken,
	}, &payload)
	if err != nil {
		var be *backend.Error
		if errors.As(err, &be) && be.Kind != backend.KindUpstream {
			// Definite rejection: the backend saw the token and refused it.
			// A mere outage is not grounds to drop the session.
			store.Clear()
			return model.Identity{}, false, nil
		}
		return model.Identity{}, false, err
	}

	return payload.toModel(), true, nil
}

// Logout revokes the token on the backend when one exists and clears the
// session either way. Revocation is best effort: logout always succeeds
// locally, including on an already-empty session.
func (s *Service) Logout(ctx context.Context, store SessionStore) {
	sess := store.Read()
	if !sess.Anonymous() {
		_ = s.backend.Do(ctx, backend.Request{
			Method:   http.MethodPost,
			Endpoint: "/auth/logout",
			Token:    sess.AccessToken,
		}, nil)
	}
	store.Clear()
}
