package handlers

import (
	"errors"
	"net/http"

	"github.com/CePseudoBE/taxcalc/internal/infra/backend"
	authsvc "github.com/CePseudoBE/taxcalc/internal/services/auth"
	"github.com/CePseudoBE/taxcalc/internal/transport/http/dto"
	httperrors "github.com/CePseudoBE/taxcalc/internal/transport/http/errors"
)

type AuthHandler struct {
	service *authsvc.Service
}

func NewAuthHandler(service *authsvc.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	store, ok := requestStore(w, r)
	if !ok {
		return
	}

	var req dto.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "Email and password are required")
		return
	}

	identity, err := h.service.Login(r.Context(), store, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, authsvc.ErrInvalidInput) {
			writeBadRequest(w, "Email and password are required")
			return
		}
		writeAuthFailure(w, err, "Invalid email or password")
		return
	}

	httperrors.WriteMessage(w, http.StatusOK, dto.NewUserResponse(identity), "Login successful")
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	store, ok := requestStore(w, r)
	if !ok {
		return
	}

	var req dto.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "Email and password are required")
		return
	}

	identity, err := h.service.Register(r.Context(), store, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, authsvc.ErrInvalidInput) {
			writeBadRequest(w, "Email and password are required")
			return
		}
		// Registration failures without a backend status read as input
		// problems, not credential problems.
		var be *backend.Error
		if errors.As(err, &be) {
			writeBackendError(w, nil, err)
			return
		}
		writeBadRequest(w, "Registration failed")
		return
	}

	httperrors.WriteMessage(w, http.StatusOK, dto.NewUserResponse(identity), "Registration successful")
}

func (h *AuthHandler) Google(w http.ResponseWriter, r *http.Request) {
	store, ok := requestStore(w, r)
	if !ok {
		return
	}

	var req dto.GoogleAuthRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "Google ID token is required")
		return
	}

	identity, err := h.service.GoogleLogin(r.Context(), store, req.IDToken)
	if err != nil {
		if errors.Is(err, authsvc.ErrInvalidInput) {
			writeBadRequest(w, "Google ID token is required")
			return
		}
		writeAuthFailure(w, err, "Google authentication failed")
		return
	}

	httperrors.WriteMessage(w, http.StatusOK, dto.NewUserResponse(identity), "Google login successful")
}

func (h *AuthHandler) Check(w http.ResponseWriter, r *http.Request) {
	store, ok := requestStore(w, r)
	if !ok {
		return
	}

	identity, authenticated, err := h.service.Check(r.Context(), store)
	if err != nil {
		writeBackendError(w, nil, err)
		return
	}
	if !authenticated {
		writeUnauthorized(w, "Not authenticated")
		return
	}

	httperrors.WriteData(w, http.StatusOK, dto.NewUserResponse(identity))
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	store, ok := requestStore(w, r)
	if !ok {
		return
	}

	h.service.Logout(r.Context(), store)
	httperrors.WriteMessage(w, http.StatusOK, nil, "Logout successful")
}

// writeAuthFailure surfaces a failed sign-in. Backend-declared failures keep
// their status and message; anything else defaults to a 401 with a neutral
// wording so credential handling never leaks detail.
func writeAuthFailure(w http.ResponseWriter, err error, defaultMessage string) {
	var be *backend.Error
	if errors.As(err, &be) {
		writeBackendError(w, nil, err)
		return
	}
	writeUnauthorized(w, defaultMessage)
}
