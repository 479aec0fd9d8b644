// Package config loads typed configuration from environment variables.
//
// Values are read from the process environment, optionally seeded from one or
// more .env files through github.com/joho/godotenv, and parsed into tagged
// structs by github.com/caarlos0/env/v11:
//
//	type ServerConfig struct {
//	    Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Each struct type is parsed once per process and cached; Reset clears the
// cache, which tests use after changing the environment.
package config
