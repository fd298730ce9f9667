// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - LoadEnv / MustLoadEnv read one or more .env files into the process
//     environment (./.env when no path is given). Variables already set in
//     the process win; among files, later ones win.
//   - Load / MustLoad parse the environment into any struct annotated with
//     `env` tags and cache the result per type.
//   - ForceReloadConfig and ResetCache refresh the cache, mostly for tests.
//
// # Usage
//
//	type Config struct {
//		Env      string `env:"QRDECODE_ENV" envDefault:"development"`
//		LogLevel string `env:"QRDECODE_LOG_LEVEL"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// # Error Handling
//
//   - ErrParsingConfig  – the environment could not be parsed into the struct.
//   - ErrLoadingEnvFile – a .env file could not be read.
//   - ErrNilPointer     – a nil pointer was passed to Load.
//
// Failed parses are not cached, so a later Load can succeed once the
// environment is fixed.
package config
