// Package account exposes the account registry over HTTP.
//
// Routes, relative to the /api mount point:
//
//	POST /auth/signup    {name, lastName, email, password, repeatPassword}
//	POST /auth/signin    {email, password, remember}
//	GET  /auth/logout    Authorization: Bearer <token>
//	GET  /users/current  Authorization: Bearer <token>
//
// Every response uses the handler.Envelope shape. Business failures are
// reported as 400 with a human readable message ("User already exists",
// "Passwords do not match", "Wrong email or password"); a missing or
// unknown session token is 401.
package account
