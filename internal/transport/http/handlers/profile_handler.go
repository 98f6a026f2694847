package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/CePseudoBE/taxcalc/internal/infra/backend"
	httperrors "github.com/CePseudoBE/taxcalc/internal/transport/http/errors"
)

type ProfileHandler struct {
	backend Backend
}

func NewProfileHandler(b Backend) *ProfileHandler {
	return &ProfileHandler{backend: b}
}

func (h *ProfileHandler) Me(w http.ResponseWriter, r *http.Request) {
	store, ok := requestStore(w, r)
	if !ok {
		return
	}
	sess := store.Read()

	var profile json.RawMessage
	if err := h.backend.Do(r.Context(), backend.Request{
		Method:   http.MethodGet,
		Endpoint: "/users/me",
		Token:    sess.AccessToken,
	}, &profile); err != nil {
		writeBackendError(w, store, err)
		return
	}

	httperrors.WriteData(w, http.StatusOK, profile)
}

// DeleteAccount removes the account on the backend, then drops the session:
// the credential belongs to an account that no longer exists.
func (h *ProfileHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	store, ok := requestStore(w, r)
	if !ok {
		return
	}
	sess := store.Read()

	if err := h.backend.Do(r.Context(), backend.Request{
		Method:   http.MethodDelete,
		Endpoint: "/users/me",
		Token:    sess.AccessToken,
	}, nil); err != nil {
		writeBackendError(w, store, err)
		return
	}

	store.Clear()
	httperrors.WriteMessage(w, http.StatusOK, nil, "Account deleted successfully")
}
