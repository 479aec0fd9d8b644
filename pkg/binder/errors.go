package binder

import "errors"

// Common binding errors
var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON request body")
	ErrMissingContentType   = errors.New("missing content type")
	ErrMissingBearerToken   = errors.New("missing bearer token")
	ErrBinderNotApplicable  = errors.New("binder not applicable")
)
