package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/CePseudoBE/taxcalc/internal/infra/httpclient"
)

func TestDoDecodesEnvelopeData(t *testing.T) {
	var gotAuth, gotClient string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotClient = r.Header.Get("X-Client-Name")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"id":7,"email":"a@b.com"},"success":true}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, httpclient.New(time.Second))
	var out struct {
		ID    int64  `json:"id"`
		Email string `json:"email"`
	}
	if err := c.Do(context.Background(), Request{Method: http.MethodGet, Endpoint: "/auth/check", Token: "T"}, &out); err != nil {
		t.Fatalf("do: %v", err)
	}

	if out.ID != 7 || out.Email != "a@b.com" {
		t.Fatalf("unexpected payload: %+v", out)
	}
	if gotAuth != "Bearer T" {
		t.Fatalf("unexpected authorization header: %q", gotAuth)
	}
	if gotClient != "taxcalc-bff" {
		t.Fatalf("unexpected client name header: %q", gotClient)
	}
}

func TestDoOmitsBearerHeaderWithoutToken(t *testing.T) {
	var sawAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuth = r.Header["Authorization"]
		_, _ = w.Write([]byte(`{"data":null,"success":true}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, httpclient.New(time.Second))
	if err := c.Do(context.Background(), Request{Method: http.MethodPost, Endpoint: "/auth/login", Body: map[string]string{"email": "a@b.com"}}, nil); err != nil {
		t.Fatalf("do: %v", err)
	}
	if sawAuth {
		t.Fatalf("authorization header must be absent without a token")
	}
}

func TestDoMapsStatusCodes(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantKind    Kind
		wantStatus  int
		wantMessage string
	}{
		{"unauthorized", http.StatusUnauthorized, `{"message":"token expired","success":false}`, KindUnauthenticated, 401, "token expired"},
		{"forbidden", http.StatusForbidden, `{"message":"ROLE_MODERATOR missing on account","success":false}`, KindForbidden, 403, "ROLE_MODERATOR missing on account"},
		{"validation", http.StatusBadRequest, `{"message":"fuel is required","success":false}`, KindValidation, 400, "fuel is required"},
		{"conflict passes through", http.StatusConflict, `{"message":"duplicate submission","success":false}`, KindRejection, 409, "duplicate submission"},
		{"not found passes through", http.StatusNotFound, `{"message":"unknown saved search","success":false}`, KindRejection, 404, "unknown saved search"},
		{"server error hides details", http.StatusInternalServerError, `{"message":"NullPointerException at TaxService.java:42","success":false}`, KindUpstream, 502, "backend request failed"},
		{"error without body", http.StatusUnauthorized, ``, KindUnauthenticated, 401, "authentication failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, httpclient.New(time.Second))
			err := c.Do(context.Background(), Request{Method: http.MethodGet, Endpoint: "/x"}, nil)

			var be *Error
			if !errors.As(err, &be) {
				t.Fatalf("expected *Error, got %v", err)
			}
			if be.Kind != tt.wantKind {
				t.Fatalf("unexpected kind: got %d want %d", be.Kind, tt.wantKind)
			}
			if be.Status != tt.wantStatus {
				t.Fatalf("unexpected status: got %d want %d", be.Status, tt.wantStatus)
			}
			if be.Message != tt.wantMessage {
				t.Fatalf("unexpected message: got %q want %q", be.Message, tt.wantMessage)
			}
		})
	}
}

func TestDoReportsTimeoutAsDistinctKind(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, httpclient.New(20*time.Millisecond))
	err := c.Do(context.Background(), Request{Method: http.MethodGet, Endpoint: "/slow"}, nil)

	var be *Error
	if !errors.As(err, &be) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if be.Kind != KindUpstream {
		t.Fatalf("unexpected kind: got %d want %d", be.Kind, KindUpstream)
	}
	if be.Status != http.StatusGatewayTimeout {
		t.Fatalf("unexpected status: got %d want %d", be.Status, http.StatusGatewayTimeout)
	}
	if be.Code != CodeTimeout {
		t.Fatalf("unexpected code: %q", be.Code)
	}
}

func TestDoReportsUnreachableBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens anymore

	c := NewClient(srv.URL, httpclient.New(time.Second))
	err := c.Do(context.Background(), Request{Method: http.MethodGet, Endpoint: "/x"}, nil)

	var be *Error
	if !errors.As(err, &be) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if be.Kind != KindUpstream || be.Status != http.StatusBadGateway {
		t.Fatalf("unexpected error: %+v", be)
	}
}
