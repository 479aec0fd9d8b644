// Package httpserver runs an http.Handler with graceful shutdown and provides
// the shared chi router setup used by the account API: request ids, panic
// recovery, access logging and a health endpoint.
package httpserver
