package handlers

import (
	"net/http"

	httperrors "github.com/CePseudoBE/taxcalc/internal/transport/http/errors"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Get(w http.ResponseWriter, _ *http.Request) {
	httperrors.Write(w, http.StatusOK, struct {
		Status  string `json:"status"`
		Service string `json:"service"`
	}{Status: "ok", Service: "bff"})
}
