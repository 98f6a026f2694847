package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/CePseudoBE/taxcalc/internal/infra/backend"
	"github.com/CePseudoBE/taxcalc/internal/pkg/validate"
	"github.com/CePseudoBE/taxcalc/internal/transport/http/dto"
	httperrors "github.com/CePseudoBE/taxcalc/internal/transport/http/errors"
)

type SavedSearchHandler struct {
	backend Backend
}

func NewSavedSearchHandler(b Backend) *SavedSearchHandler {
	return &SavedSearchHandler{backend: b}
}

func (h *SavedSearchHandler) List(w http.ResponseWriter, r *http.Request) {
	store, ok := requestStore(w, r)
	if !ok {
		return
	}
	sess := store.Read()

	var searches json.RawMessage
	if err := h.backend.Do(r.Context(), backend.Request{
		Method:   http.MethodGet,
		Endpoint: "/saved-searches",
		Token:    sess.AccessToken,
	}, &searches); err != nil {
		writeBackendError(w, store, err)
		return
	}

	httperrors.WriteData(w, http.StatusOK, searches)
}

func (h *SavedSearchHandler) Create(w http.ResponseWriter, r *http.Request) {
	store, ok := requestStore(w, r)
	if !ok {
		return
	}
	sess := store.Read()

	var req dto.SavedSearchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if !validate.Required(req.Region) || req.FirstRegistrationDate == nil || !validate.Required(req.Label) {
		writeBadRequest(w, "Region, registration date and label are required")
		return
	}
	if req.VariantID == nil && req.SubmissionID == nil {
		writeBadRequest(w, "Either variantId or submissionId is required")
		return
	}

	var created json.RawMessage
	if err := h.backend.Do(r.Context(), backend.Request{
		Method:   http.MethodPost,
		Endpoint: "/saved-searches",
		Body:     req,
		Token:    sess.AccessToken,
	}, &created); err != nil {
		writeBackendError(w, store, err)
		return
	}

	httperrors.WriteMessage(w, http.StatusOK, created, "Search saved successfully")
}

func (h *SavedSearchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	store, ok := requestStore(w, r)
	if !ok {
		return
	}
	sess := store.Read()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || !validate.PositiveID(id) {
		writeBadRequest(w, "Invalid saved search ID")
		return
	}

	if err := h.backend.Do(r.Context(), backend.Request{
		Method:   http.MethodDelete,
		Endpoint: fmt.Sprintf("/saved-searches/%d", id),
		Token:    sess.AccessToken,
	}, nil); err != nil {
		writeBackendError(w, store, err)
		return
	}

	httperrors.WriteMessage(w, http.StatusOK, nil, "Saved search deleted successfully")
}
