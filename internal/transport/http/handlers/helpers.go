package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/CePseudoBE/taxcalc/internal/infra/backend"
	"github.com/CePseudoBE/taxcalc/internal/session"
	httperrors "github.com/CePseudoBE/taxcalc/internal/transport/http/errors"
)

// forbiddenMessage is the single privilege-denial wording the gateway ever
// emits, whatever the backend said.
const forbiddenMessage = "Admin or moderator access required"

// Backend is the outbound client surface the gateways use.
type Backend interface {
	Do(ctx context.Context, req backend.Request, out any) error
}

func decodeJSON(r *http.Request, target any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(target)
}

// requestStore fetches the per-request session store bound by the middleware.
func requestStore(w http.ResponseWriter, r *http.Request) (*session.Store, bool) {
	store, ok := session.StoreFromContext(r.Context())
	if !ok {
		writeInternal(w, "session store is unavailable")
		return nil, false
	}
	return store, true
}

func writeBadRequest(w http.ResponseWriter, message string, details ...string) {
	httperrors.WriteError(w, http.StatusBadRequest, backend.CodeValidation, message, details...)
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	httperrors.WriteError(w, http.StatusUnauthorized, backend.CodeUnauthorized, message)
}

func writeForbidden(w http.ResponseWriter) {
	httperrors.WriteError(w, http.StatusForbidden, backend.CodeForbidden, forbiddenMessage)
}

func writeInternal(w http.ResponseWriter, message string) {
	httperrors.WriteError(w, http.StatusInternalServerError, "INTERNAL_ERROR", message)
}

// writeBackendError translates a failed backend call into the client
// envelope. A backend 401 also drops the local session when a store is given:
// a token the backend refused must not stay cached. A backend 403 is always
// rewritten to the fixed privilege-denial message so backend role details
// never leak. Everything else passes status and message through.
func writeBackendError(w http.ResponseWriter, store *session.Store, err error) {
	var be *backend.Error
	if !errors.As(err, &be) {
		writeInternal(w, "internal server error")
		return
	}

	switch be.Kind {
	case backend.KindUnauthenticated:
		if store != nil {
			store.Clear()
		}
		writeUnauthorized(w, be.Message)
	case backend.KindForbidden:
		writeForbidden(w)
	case backend.KindValidation:
		writeBadRequest(w, be.Message, be.Details...)
	default:
		httperrors.WriteError(w, be.Status, be.Code, be.Message, be.Details...)
	}
}
