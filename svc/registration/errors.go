package registration

import (
	"context"
	"errors"
	"fmt"
)

// Registry failures. AccountRegistryClient implementations wrap or return
// these so callers can classify with errors.Is.
var (
	ErrDuplicateEmail     = errors.New("registration: account with this email already exists")
	ErrTransport          = errors.New("registration: registry unreachable")
	ErrUnknown            = errors.New("registration: registry failure")
	ErrInvalidCredentials = errors.New("registration: invalid email or password")
)

var (
	ErrSubmissionInProgress = errors.New("registration: submission already in progress")
	ErrFormInvalid          = errors.New("registration: form has invalid fields")
	ErrFormClosed           = errors.New("registration: form is closed")
	ErrNoOpenForm           = errors.New("registration: no open form")
	ErrUnknownField         = errors.New("registration: unknown field")
)

// Server-error texts shown in the form banner.
const (
	MsgUserAlreadyExists   = "User already exists"
	MsgTransportFailure    = "Unable to reach the server, please try again"
	MsgUnknownFailure      = "Something went wrong, please try again"
	MsgInvalidCredentials  = "Wrong email or password"
	MsgLoginFieldsRequired = "Email and password required"
)

// ErrorKind classifies a registry failure.
type ErrorKind string

const (
	KindDuplicateEmail     ErrorKind = "duplicate_email"
	KindTransport          ErrorKind = "transport"
	KindUnknown            ErrorKind = "unknown"
	KindInvalidCredentials ErrorKind = "invalid_credentials"
)

// SubmissionError is returned from Submit and Login when the registry
// rejects the request. Message is the text shown to the user.
type SubmissionError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *SubmissionError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *SubmissionError) Unwrap() error { return e.Err }

// newSubmissionError maps a registry error to its kind and banner text.
func newSubmissionError(err error) *SubmissionError {
	switch {
	case errors.Is(err, ErrDuplicateEmail):
		return &SubmissionError{Kind: KindDuplicateEmail, Message: MsgUserAlreadyExists, Err: err}
	case errors.Is(err, ErrInvalidCredentials):
		return &SubmissionError{Kind: KindInvalidCredentials, Message: MsgInvalidCredentials, Err: err}
	case errors.Is(err, ErrTransport), errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return &SubmissionError{Kind: KindTransport, Message: MsgTransportFailure, Err: err}
	default:
		return &SubmissionError{Kind: KindUnknown, Message: MsgUnknownFailure, Err: err}
	}
}

// IsSubmissionError reports whether err carries a *SubmissionError and
// returns it.
func IsSubmissionError(err error) (*SubmissionError, bool) {
	var se *SubmissionError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
