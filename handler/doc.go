// Package handler provides type-safe HTTP request handling with JSON envelopes.
//
// A HandlerFunc receives a request struct already populated by one or more
// binders and returns a Response. Wrap turns it into a plain
// http.HandlerFunc that can be mounted on any router:
//
//	r.Post("/api/auth/signup", handler.Wrap(signup,
//		handler.WithBinder[handler.Context, SignupRequest](binder.JSON()),
//		handler.WithErrorHandler[handler.Context, SignupRequest](handler.NewErrorHandler(log)),
//	))
//
// # Responses
//
// Every JSON body follows Envelope:
//
//	{"status":"ok","data":{...}}
//	{"status":"error","message":"User already exists"}
//	{"status":"error","message":"Email is incorrect","errors":{"email":["Email is incorrect"]}}
//
// JSON builds a success envelope. JSONError classifies an error:
// validator.ValidationErrors become 400 with per-field messages, HTTPError
// keeps its own code and message, and anything else is a generic 500.
//
// # Decorators
//
// Decorators wrap a HandlerFunc for cross-cutting concerns such as
// authentication. They are applied in the order given, the first one being
// the outermost.
package handler
