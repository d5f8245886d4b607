// Package config loads configuration from environment variables into tagged
// structs.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// optional .env files are loaded first, without overriding variables that are
// already set, then the environment is parsed into the struct using `env` and
// `envDefault` tags.
//
//	type Config struct {
//	    LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
//	    LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("FORMCHECK_")); err != nil {
//	    log.Fatalf("config: %v", err)
//	}
//
// Errors can be compared with errors.Is against ErrParsingConfig,
// ErrLoadingEnvFile and ErrNilPointer.
package config
