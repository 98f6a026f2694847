package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

const clientName = "taxcalc-bff"

// Request describes one call to the authoritative backend API.
type Request struct {
	Method   string
	Endpoint string
	// Body is serialized as JSON when non-nil.
	Body any
	// Token is forwarded as a bearer credential when non-empty. It never
	// appears anywhere else.
	Token string
}

// envelope is the backend's fixed wire contract.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Success bool            `json:"success"`
}

// Client calls the authoritative backend and resolves failures into *Error.
// It is stateless; the per-request token is the only credential it touches.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// Do executes a single backend call and unmarshals the envelope's data field
// into out when out is non-nil. Failed calls are never retried: replaying an
// identity or mutation call without the caller's consent is unsafe.
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	var bodyReader io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+req.Endpoint, bodyReader)
	if err != nil {
		return fmt.Errorf("create backend request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Client-Name", clientName)
	httpReq.Header.Set("X-Request-ID", requestID(ctx))
	if req.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.Token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if isTimeout(err) {
			return &Error{
				Kind:    KindUpstream,
				Status:  http.StatusGatewayTimeout,
				Code:    CodeTimeout,
				Message: "backend did not respond in time",
			}
		}
		return &Error{
			Kind:    KindUpstream,
			Status:  http.StatusBadGateway,
			Code:    CodeUnavailable,
			Message: "backend is unavailable",
		}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{
			Kind:    KindUpstream,
			Status:  http.StatusBadGateway,
			Code:    CodeUnavailable,
			Message: "backend response could not be read",
		}
	}

	var env envelope
	// A malformed body on an error response still yields a usable Error below.
	_ = json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp.StatusCode, env.Message)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("unmarshal backend data: %w", err)
		}
	}
	return nil
}

func statusError(status int, message string) *Error {
	switch {
	case status == http.StatusUnauthorized:
		if message == "" {
			message = "authentication failed"
		}
		return &Error{Kind: KindUnauthenticated, Status: status, Code: CodeUnauthorized, Message: message}
	case status == http.StatusForbidden:
		if message == "" {
			message = "access denied"
		}
		return &Error{Kind: KindForbidden, Status: status, Code: CodeForbidden, Message: message}
	case status == http.StatusBadRequest:
		if message == "" {
			message = "request validation failed"
		}
		return &Error{Kind: KindValidation, Status: status, Code: CodeValidation, Message: message}
	case status >= 500:
		// The backend's internal failure details stay behind the gateway.
		return &Error{Kind: KindUpstream, Status: http.StatusBadGateway, Code: CodeUnavailable, Message: "backend request failed"}
	default:
		if message == "" {
			message = "backend rejected the request"
		}
		return &Error{Kind: KindRejection, Status: status, Code: CodeRejection, Message: message}
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// requestID reuses the inbound request id so one id traces a call across both
// tiers, falling back to a fresh uuid for calls outside an HTTP request.
func requestID(ctx context.Context) string {
	if id := chimiddleware.GetReqID(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}
