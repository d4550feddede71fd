package google

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"github.com/okkkkun/uuid-qr-generator/internal/credentials"
)

const issuer = "https://accounts.google.com"

// drive.file scopes access to files this app created, nothing wider.
const scopeDriveFile = "https://www.googleapis.com/auth/drive.file"

type Provider struct {
	oauthConfig *oauth2.Config
	tokeninfo   *oauth2api.Service
}

func New(
	ctx context.Context,
	clientID string,
	clientSecret string,
	redirectURL string,
) (*Provider, error) {

	if clientID == "" || clientSecret == "" || redirectURL == "" {
		return nil, errors.New("google oauth config missing required fields")
	}

	oidcProvider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to init google oidc provider: %w", err)
	}

	oauthCfg := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Endpoint:     oidcProvider.Endpoint(),
		Scopes: []string{
			scopeDriveFile,
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
	}

	tokeninfoSvc, err := oauth2api.NewService(ctx, option.WithoutAuthentication())
	if err != nil {
		return nil, fmt.Errorf("failed to init google tokeninfo service: %w", err)
	}

	return &Provider{
		oauthConfig: oauthCfg,
		tokeninfo:   tokeninfoSvc,
	}, nil
}

// AuthCodeURL builds the consent URL. Offline access plus a forced consent
// prompt guarantees Google issues a refresh token even when the user has
// granted consent before.
func (p *Provider) AuthCodeURL() string {
	return p.oauthConfig.AuthCodeURL(
		"",
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

// Exchange trades the authorization code for the token pair. Whether both
// tokens came back is the callback handler's check, not this one's.
func (p *Provider) Exchange(ctx context.Context, code string) (credentials.Pair, error) {
	token, err := p.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return credentials.Pair{}, fmt.Errorf("google token exchange failed: %w", err)
	}

	return credentials.Pair{
		AccessToken:  token.AccessToken,
		AccessExpiry: token.Expiry,
		RefreshToken: token.RefreshToken,
	}, nil
}

// Probe asks Google whether the access token is still good. tokeninfo is a
// public endpoint, so the probe itself needs no authorization.
func (p *Provider) Probe(ctx context.Context, accessToken string) error {
	_, err := p.tokeninfo.Tokeninfo().AccessToken(accessToken).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("google tokeninfo rejected access token: %w", err)
	}
	return nil
}

// Refresh mints a new access token. Google does not rotate the refresh
// token in this flow; only the access token and its expiry come back.
func (p *Provider) Refresh(ctx context.Context, refreshToken string) (string, time.Time, error) {
	src := p.oauthConfig.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})

	token, err := src.Token()
	if err != nil {
		return "", time.Time{}, fmt.Errorf("google token refresh failed: %w", err)
	}

	expiry := token.Expiry
	if expiry.IsZero() {
		expiry = time.Now().Add(credentials.DefaultAccessTTL)
	}

	return token.AccessToken, expiry, nil
}
