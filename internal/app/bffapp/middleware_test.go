package bffapp

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/CePseudoBE/taxcalc/internal/domain/model"
	"github.com/CePseudoBE/taxcalc/internal/domain/rules"
	"github.com/CePseudoBE/taxcalc/internal/session"
)

func newSessionRequest(t *testing.T, sess *model.Session) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()

	manager, err := session.NewManager(session.Config{
		Secret: "middleware-test-secret-32-bytes!!",
		TTL:    time.Hour,
	})
	if err != nil {
		t.Fatalf("create session manager: %v", err)
	}

	if sess != nil {
		seed := httptest.NewRecorder()
		seedReq := httptest.NewRequest(http.MethodGet, "/", nil)
		if err := manager.Bind(seed, seedReq).Write(*sess); err != nil {
			t.Fatalf("write session: %v", err)
		}
		for _, c := range seed.Result().Cookies() {
			seedReq := httptest.NewRequest(http.MethodGet, "/api/submissions", nil)
			seedReq.AddCookie(c)
			rr := httptest.NewRecorder()
			ctx := session.WithStore(seedReq.Context(), manager.Bind(rr, seedReq))
			return seedReq.WithContext(ctx), rr
		}
		t.Fatalf("session write produced no cookie")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/submissions", nil)
	rr := httptest.NewRecorder()
	ctx := session.WithStore(req.Context(), manager.Bind(rr, req))
	return req.WithContext(ctx), rr
}

func TestRequireAuthenticatedRejectsAnonymous(t *testing.T) {
	mw := Require(rules.Authenticated)
	req, rr := newSessionRequest(t, nil)

	mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatalf("handler must not be called for anonymous session")
	})).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: got %d want %d", rr.Code, http.StatusUnauthorized)
	}
}

func TestRequireAuthenticatedAllowsLiveSession(t *testing.T) {
	mw := Require(rules.Authenticated)
	req, rr := newSessionRequest(t, &model.Session{
		AccessToken: "token",
		UserID:      7,
		ExpiresAt:   time.Now().Add(time.Hour).UnixMilli(),
	})

	mw(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})).ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("unexpected status: got %d want %d, body %s", rr.Code, http.StatusNoContent, rr.Body.String())
	}
}

func TestRequireAuthenticatedRejectsExpiredSession(t *testing.T) {
	mw := Require(rules.Authenticated)
	req, rr := newSessionRequest(t, &model.Session{
		AccessToken: "token",
		UserID:      7,
		ExpiresAt:   time.Now().Add(-time.Minute).UnixMilli(),
	})

	mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatalf("handler must not be called for expired session")
	})).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: got %d want %d", rr.Code, http.StatusUnauthorized)
	}
}

func TestRequirePublicPassesAnonymous(t *testing.T) {
	mw := Require(rules.Public)
	req, rr := newSessionRequest(t, nil)

	mw(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})).ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("unexpected status: got %d want %d", rr.Code, http.StatusNoContent)
	}
}

func TestRequireWithoutBoundStoreFailsClosed(t *testing.T) {
	mw := Require(rules.Public)
	req := httptest.NewRequest(http.MethodGet, "/api/submissions", nil)
	rr := httptest.NewRecorder()

	mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatalf("handler must not be called without a session store")
	})).ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected status: got %d want %d", rr.Code, http.StatusInternalServerError)
	}
}
