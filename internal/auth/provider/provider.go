package provider

import (
	"context"
	"time"

	"github.com/okkkkun/uuid-qr-generator/internal/credentials"
)

// Provider defines the contract with the external authorization server.
// Implementations return token facts only and must not touch cookies or
// make auth decisions.
type Provider interface {
	// AuthCodeURL returns the consent URL the browser is sent to. It is a
	// pure function of the configured client, redirect URI and scopes.
	AuthCodeURL() string

	// Exchange trades a one-time authorization code for the token pair.
	// AccessExpiry is zero when the provider omits one; lifetimes are the
	// callback handler's decision.
	Exchange(ctx context.Context, code string) (credentials.Pair, error)

	// Probe checks an access token against the provider.
	Probe(ctx context.Context, accessToken string) error

	// Refresh mints a new access token from the refresh token.
	Refresh(ctx context.Context, refreshToken string) (string, time.Time, error)
}
