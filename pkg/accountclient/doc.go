// Package accountclient talks to the account registry HTTP API.
//
// Client implements registration.AccountRegistryClient on top of resty, so
// a registration.Orchestrator can drive a remote registry the same way it
// drives an in-process one:
//
//	client := accountclient.New("http://localhost:8080", accountclient.WithTimeout(5*time.Second))
//	orch := registration.NewOrchestrator(client)
//
// Responses are mapped onto the registration sentinels: network failures,
// timeouts and 5xx become ErrTransport, a 400 "User already exists" on
// signup becomes ErrDuplicateEmail, a 400 on signin becomes
// ErrInvalidCredentials and everything else is ErrUnknown. The server's
// message is kept in an *APIError in the error chain.
package accountclient
