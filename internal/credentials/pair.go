package credentials

import "time"

const (
	AccessCookieName  = "access-token"
	RefreshCookieName = "refresh-token"

	// DefaultAccessTTL applies when the provider omits an explicit expiry.
	DefaultAccessTTL = time.Hour

	// RefreshTTL is the fixed lifetime of the refresh token cookie. The
	// provider does not rotate refresh tokens in this flow, so the original
	// 30-day window is never extended.
	RefreshTTL = 30 * 24 * time.Hour
)

// Pair holds the two bearer tokens issued by the provider.
// The refresh token, when present, outlives the access token.
type Pair struct {
	AccessToken   string
	AccessExpiry  time.Time
	RefreshToken  string
	RefreshExpiry time.Time
}

func (p Pair) Empty() bool {
	return p.AccessToken == "" && p.RefreshToken == ""
}
