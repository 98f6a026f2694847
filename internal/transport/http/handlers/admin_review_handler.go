package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/CePseudoBE/taxcalc/internal/infra/backend"
	"github.com/CePseudoBE/taxcalc/internal/pkg/validate"
	"github.com/CePseudoBE/taxcalc/internal/transport/http/dto"
	httperrors "github.com/CePseudoBE/taxcalc/internal/transport/http/errors"
)

// AdminReviewHandler proxies the moderation queue. Whether the caller's role
// actually suffices is re-asserted by the backend on every call; a backend
// 403 comes back to the client as the fixed privilege-denial message.
type AdminReviewHandler struct {
	backend Backend
}

func NewAdminReviewHandler(b Backend) *AdminReviewHandler {
	return &AdminReviewHandler{backend: b}
}

func (h *AdminReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	store, ok := requestStore(w, r)
	if !ok {
		return
	}
	sess := store.Read()

	endpoint := "/admin/submissions"
	if status := r.URL.Query().Get("status"); status != "" {
		endpoint += "?status=" + url.QueryEscape(status)
	}

	var submissions json.RawMessage
	if err := h.backend.Do(r.Context(), backend.Request{
		Method:   http.MethodGet,
		Endpoint: endpoint,
		Token:    sess.AccessToken,
	}, &submissions); err != nil {
		writeBackendError(w, store, err)
		return
	}

	httperrors.WriteData(w, http.StatusOK, submissions)
}

func (h *AdminReviewHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, "approve", "Submission approved successfully")
}

func (h *AdminReviewHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, "reject", "Submission rejected successfully")
}

func (h *AdminReviewHandler) review(w http.ResponseWriter, r *http.Request, verb, successMessage string) {
	store, ok := requestStore(w, r)
	if !ok {
		return
	}
	sess := store.Read()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || !validate.PositiveID(id) {
		writeBadRequest(w, "Invalid submission ID")
		return
	}

	// The review body is optional; reject may carry reviewer feedback.
	var review dto.SubmissionReviewRequest
	if err := decodeJSON(r, &review); err != nil && !errors.Is(err, io.EOF) {
		writeBadRequest(w, "invalid request body")
		return
	}
	var body any
	if review.Feedback != "" {
		body = review
	}

	var submission json.RawMessage
	if err := h.backend.Do(r.Context(), backend.Request{
		Method:   http.MethodPut,
		Endpoint: fmt.Sprintf("/admin/submissions/%d/%s", id, verb),
		Body:     body,
		Token:    sess.AccessToken,
	}, &submission); err != nil {
		writeBackendError(w, store, err)
		return
	}

	httperrors.WriteMessage(w, http.StatusOK, submission, successMessage)
}
