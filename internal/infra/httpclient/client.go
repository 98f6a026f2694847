package httpclient

import (
	"net/http"
	"time"
)

// New returns an HTTP client with a hard overall timeout. Every outbound
// backend call goes through a client built here; an unbounded call could pile
// up handlers under backend latency.
func New(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &http.Client{Timeout: timeout}
}
