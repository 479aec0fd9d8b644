// Package binder decodes HTTP request bodies into typed request structs.
//
// A binder is a plain func(*http.Request, any) error, so it plugs straight
// into handler.WithBinder:
//
//	http.HandleFunc("/api/auth/signup", handler.Wrap(signup,
//		handler.WithBinder[handler.Context, SignupRequest](binder.JSON()),
//	))
//
// JSON decoding is strict: unknown fields, trailing data and bodies over
// DefaultMaxJSONSize are rejected with ErrFailedToParseJSON. A binder that
// does not apply to the request returns ErrBinderNotApplicable and is
// skipped by the handler.
package binder
