// Package redis connects to Redis with github.com/redis/go-redis/v9 and
// exposes a health probe for the HTTP server.
package redis
