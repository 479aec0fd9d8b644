package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/qauto/garage/pkg/validator"
)

// Envelope statuses.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Envelope is the body shape of every JSON response.
type Envelope struct {
	Status  string              `json:"status"`
	Message string              `json:"message,omitempty"`
	Data    any                 `json:"data,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

type jsonResponse struct {
	status int
	body   Envelope
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures JSON response
type JSONOption func(*jsonResponse)

// WithJSONStatus sets custom HTTP status code
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// WithJSONMessage sets the envelope message.
func WithJSONMessage(msg string) JSONOption {
	return func(r *jsonResponse) {
		r.body.Message = msg
	}
}

// JSON creates a successful envelope carrying v as data.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{
		status: http.StatusOK,
		body:   Envelope{Status: StatusOK, Data: v},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError creates an error envelope from err.
//
// Validation errors become 400 with per-field messages and the first
// message as the envelope message. HTTPError keeps its code and message.
// Anything else is reported as a 500 without leaking err's text.
func JSONError(err error, opts ...JSONOption) Response {
	r := &jsonResponse{
		status: http.StatusInternalServerError,
		body:   Envelope{Status: StatusError, Message: ErrInternalServerError.Message},
	}

	var httpErr HTTPError
	switch {
	case validator.IsValidationError(err):
		verrs := validator.ExtractValidationErrors(err)
		r.status = http.StatusBadRequest
		r.body.Errors = verrs.Map()
		if len(verrs) > 0 {
			r.body.Message = verrs[0].Message
		}
	case errors.As(err, &httpErr):
		r.status = httpErr.Code
		r.body.Message = httpErr.Message
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}
