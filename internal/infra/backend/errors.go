package backend

import "fmt"

// Kind classifies a failed backend call. Raw HTTP status codes are resolved
// into a Kind once, here at the client boundary; downstream gateways branch on
// Kind, never on status codes.
type Kind int

const (
	// KindValidation is a backend-declared input failure (HTTP 400).
	KindValidation Kind = iota
	// KindUnauthenticated means the token was missing, expired or revoked
	// (HTTP 401). Callers must drop the local session when they see it.
	KindUnauthenticated
	// KindForbidden means the token was valid but the role insufficient
	// (HTTP 403).
	KindForbidden
	// KindUpstream means the backend was unreachable, timed out, or failed
	// internally (transport error or HTTP 5xx).
	KindUpstream
	// KindRejection is any other backend-declared business error; status and
	// message pass through to the client untouched.
	KindRejection
)

const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeUnavailable  = "UPSTREAM_UNAVAILABLE"
	CodeTimeout      = "UPSTREAM_TIMEOUT"
	CodeRejection    = "BACKEND_ERROR"
)

// Error is the sum-type result of a failed backend call.
type Error struct {
	Kind    Kind
	Status  int
	Code    string
	Message string
	Details []string
}

func (e *Error) Error() string {
	return fmt.Sprintf("backend: %s (status %d)", e.Message, e.Status)
}
