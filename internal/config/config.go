package config

import (
	"github.com/caarlos0/env/v11"
)

type Config struct {
	AppPort string `env:"APP_PORT" envDefault:"3000"`

	GoogleClientID     string `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURI  string `env:"GOOGLE_REDIRECT_URI" envDefault:"http://localhost:3000/api/auth/callback"`

	DriveFolderID string `env:"GOOGLE_DRIVE_FOLDER_ID"`

	CookieSecure bool `env:"COOKIE_SECURE"`
}

func Load() (Config, error) {
	return env.ParseAs[Config]()
}

// OAuthConfigured reports whether the Google client credentials are set.
// Routes that need them return a config error instead of failing at startup,
// so the service can still boot in environments without provider access.
func (c Config) OAuthConfigured() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != ""
}
