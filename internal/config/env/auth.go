package envconfig

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type authEnv struct {
	JWTSecret string        `env:"JWT_SECRET,required"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"24h"`

	GoogleClientID string `env:"GOOGLE_OIDC_CLIENT_ID,required"`

	// Accounts granted the admin capability at session establishment.
	AdminEmails []string `env:"ADMIN_EMAILS" envSeparator:","`
}

type auth struct {
	raw authEnv
}

func NewAuthConfig() (*auth, error) {
	var raw authEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &auth{raw: raw}, nil
}

func (cfg *auth) JWTSecret() []byte      { return []byte(cfg.raw.JWTSecret) }
func (cfg *auth) JWTTTL() time.Duration  { return cfg.raw.JWTTTL }
func (cfg *auth) GoogleClientID() string { return cfg.raw.GoogleClientID }
func (cfg *auth) AdminEmails() []string  { return cfg.raw.AdminEmails }
