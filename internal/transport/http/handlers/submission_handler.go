package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/CePseudoBE/taxcalc/internal/infra/backend"
	"github.com/CePseudoBE/taxcalc/internal/pkg/validate"
	"github.com/CePseudoBE/taxcalc/internal/transport/http/dto"
	httperrors "github.com/CePseudoBE/taxcalc/internal/transport/http/errors"
)

// SubmissionHandler proxies community vehicle submissions. Payloads stay
// opaque: presence checks here, business rules on the backend.
type SubmissionHandler struct {
	backend Backend
}

func NewSubmissionHandler(b Backend) *SubmissionHandler {
	return &SubmissionHandler{backend: b}
}

func (h *SubmissionHandler) Create(w http.ResponseWriter, r *http.Request) {
	store, ok := requestStore(w, r)
	if !ok {
		return
	}
	sess := store.Read()

	var req dto.VehicleSubmissionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if !validate.Required(req.BrandName) || !validate.Required(req.ModelName) || !validate.Required(req.VariantName) {
		writeBadRequest(w, "Brand, model and variant names are required")
		return
	}
	if req.YearStart == 0 || req.PowerKw == 0 {
		writeBadRequest(w, "Year and power are required")
		return
	}
	if !validate.Required(req.Fuel) || !validate.Required(req.EuroNorm) {
		writeBadRequest(w, "Fuel type and Euro norm are required")
		return
	}

	var created json.RawMessage
	if err := h.backend.Do(r.Context(), backend.Request{
		Method:   http.MethodPost,
		Endpoint: "/submissions",
		Body:     req,
		Token:    sess.AccessToken,
	}, &created); err != nil {
		writeBackendError(w, store, err)
		return
	}

	httperrors.WriteMessage(w, http.StatusOK, created, "Submission created successfully")
}

func (h *SubmissionHandler) Mine(w http.ResponseWriter, r *http.Request) {
	store, ok := requestStore(w, r)
	if !ok {
		return
	}
	sess := store.Read()

	var submissions json.RawMessage
	if err := h.backend.Do(r.Context(), backend.Request{
		Method:   http.MethodGet,
		Endpoint: "/submissions/mine",
		Token:    sess.AccessToken,
	}, &submissions); err != nil {
		writeBackendError(w, store, err)
		return
	}

	httperrors.WriteData(w, http.StatusOK, submissions)
}
