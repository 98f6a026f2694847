package errors

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the error half of the uniform client envelope.
type ErrorBody struct {
	Code    string   `json:"code"`
	Details []string `json:"details,omitempty"`
}

// Envelope is the single response shape of the gateway, success or failure:
// {data?, message?, error?}.
type Envelope struct {
	Data    any        `json:"data,omitempty"`
	Message string     `json:"message,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

func Write(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func WriteData(w http.ResponseWriter, status int, data any) {
	Write(w, status, Envelope{Data: data})
}

func WriteMessage(w http.ResponseWriter, status int, data any, message string) {
	Write(w, status, Envelope{Data: data, Message: message})
}

func WriteError(w http.ResponseWriter, status int, code, message string, details ...string) {
	Write(w, status, Envelope{
		Message: message,
		Error:   &ErrorBody{Code: code, Details: details},
	})
}
