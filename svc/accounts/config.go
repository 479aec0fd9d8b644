package accounts

import "time"

// Backend names accepted by Config.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

type Config struct {
	Storage         string        `env:"ACCOUNTS_STORAGE" envDefault:"memory"`
	Sessions        string        `env:"ACCOUNTS_SESSIONS" envDefault:"memory"`
	SessionTTL      time.Duration `env:"ACCOUNTS_SESSION_TTL" envDefault:"24h"`
	RememberTTL     time.Duration `env:"ACCOUNTS_REMEMBER_TTL" envDefault:"720h"`
	SessionPrefix   string        `env:"ACCOUNTS_SESSION_PREFIX" envDefault:"garage:session:"`
	BcryptCost      int           `env:"ACCOUNTS_BCRYPT_COST" envDefault:"10"`
	HookTimeout     time.Duration `env:"ACCOUNTS_HOOK_TIMEOUT" envDefault:"10s"`
}
