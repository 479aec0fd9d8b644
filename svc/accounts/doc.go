// Package accounts is the server-side account registry behind the
// registration form.
//
// Service registers accounts with duplicate detection and bcrypt password
// hashes, authenticates logins and manages opaque session tokens. Accounts
// live in a Storage (MemoryStorage, or PostgresStorage over pgx with goose
// migrations embedded in Migrations) and sessions in a SessionStore
// (MemorySessionStore, or RedisSessionStore over go-redis).
//
// LocalClient adapts a Service to registration.AccountRegistryClient so the
// form engine can run against an in-process registry.
package accounts
