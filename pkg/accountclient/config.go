package accountclient

import "time"

// Config holds the client settings.
type Config struct {
	BaseURL    string        `env:"GARAGE_API_URL" envDefault:"http://localhost:8080"`
	Timeout    time.Duration `env:"GARAGE_API_TIMEOUT" envDefault:"10s"`
	RetryCount int           `env:"GARAGE_API_RETRY_COUNT" envDefault:"0"`
}

// NewFromConfig creates a Client from cfg. Extra options are applied after
// the ones derived from cfg.
func NewFromConfig(cfg Config, opts ...Option) *Client {
	base := []Option{WithTimeout(cfg.Timeout), WithRetryCount(cfg.RetryCount)}
	return New(cfg.BaseURL, append(base, opts...)...)
}
