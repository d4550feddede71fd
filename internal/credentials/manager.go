package credentials

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

var (
	// ErrUnauthenticated means no credential is present at all; the client
	// must run the authorization flow.
	ErrUnauthenticated = errors.New("credentials: not authenticated")

	// ErrReauthRequired means a credential was present but could not be
	// validated or refreshed; the client must re-run the authorization flow.
	ErrReauthRequired = errors.New("credentials: re-authentication required")
)

// TokenClient is the narrow provider surface the Manager depends on.
// The Google provider implements it; tests substitute fakes.
type TokenClient interface {
	// Probe checks whether the access token is still accepted by the provider.
	Probe(ctx context.Context, accessToken string) error

	// Refresh exchanges the refresh token for a new access token. The
	// refresh token itself is not rotated.
	Refresh(ctx context.Context, refreshToken string) (accessToken string, expiry time.Time, err error)
}

// Manager turns the stored token pair into an HTTP client authorized to
// call the storage API, refreshing the access token transparently.
type Manager struct {
	tokens TokenClient
}

func NewManager(tokens TokenClient) *Manager {
	return &Manager{tokens: tokens}
}

// ObtainValidClient returns a client backed by a valid access token.
//
// With no tokens stored it fails ErrUnauthenticated without touching the
// network. A stored access token that still passes the provider's probe is
// used as-is. Otherwise the refresh token, when present, is exchanged for a
// new access token, which is persisted back into the store before the
// re-seeded client is returned. A missing refresh token or a failed
// exchange fails ErrReauthRequired.
func (m *Manager) ObtainValidClient(ctx context.Context, store Store) (*http.Client, error) {
	pair := store.Pair()

	if pair.Empty() {
		return nil, ErrUnauthenticated
	}

	// Tokens exist but the provider was never configured; nothing can be
	// validated or refreshed.
	if m.tokens == nil {
		return nil, ErrReauthRequired
	}

	if pair.AccessToken != "" {
		if err := m.tokens.Probe(ctx, pair.AccessToken); err == nil {
			return m.client(ctx, pair.AccessToken), nil
		}
	}

	if pair.RefreshToken == "" {
		return nil, ErrReauthRequired
	}

	accessToken, expiry, err := m.tokens.Refresh(ctx, pair.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReauthRequired, err)
	}

	// The only post-issuance mutation of the store: the new access token
	// replaces the old one, the refresh token is re-sent unchanged.
	store.SetAccess(accessToken, expiry)

	return m.client(ctx, accessToken), nil
}

func (m *Manager) client(ctx context.Context, accessToken string) *http.Client {
	return oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
	}))
}
