package configs

import "time"

// Auth configures session token issuing. Secret signs the HS256 tokens and
// must be set in any real deployment; the default only keeps local runs
// going. TokenTTL bounds how long an issued session stays valid, ResetTTL
// how long a password-recovery link can be used.
type Auth struct {
	Secret   string        `env:"SECRET" envDefault:"dev-secret-change-me"`
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	ResetTTL time.Duration `env:"RESET_TTL" envDefault:"1h"`
}
