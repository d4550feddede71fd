package credentials

import (
	"net/http"
	"time"
)

// CookieOptions defines how credential cookies are issued.
type CookieOptions struct {
	Path     string
	HttpOnly bool
	Secure   bool
	SameSite http.SameSite
	Domain   string
}

// normalize applies safe defaults without breaking callers
func (o CookieOptions) normalize() CookieOptions {
	if o.Path == "" {
		o.Path = "/"
	}
	if !o.HttpOnly {
		o.HttpOnly = true // bearer tokens must never be script-readable
	}
	if o.SameSite == 0 {
		o.SameSite = http.SameSiteLaxMode
	}
	return o
}

// CookieStore keeps the token pair as two independently expiring cookies.
// An instance is bound to a single request; losing the short-lived access
// cookie does not invalidate the long-lived refresh cookie.
type CookieStore struct {
	w    http.ResponseWriter
	r    *http.Request
	opts CookieOptions
}

func NewCookieStore(w http.ResponseWriter, r *http.Request, opts CookieOptions) *CookieStore {
	return &CookieStore{w: w, r: r, opts: opts.normalize()}
}

// Pair reads the tokens sent by the client. Expiries are not recoverable
// from request cookies; validity is the Manager's probe to decide.
func (s *CookieStore) Pair() Pair {
	var p Pair
	if c, err := s.r.Cookie(AccessCookieName); err == nil {
		p.AccessToken = c.Value
	}
	if c, err := s.r.Cookie(RefreshCookieName); err == nil {
		p.RefreshToken = c.Value
	}
	return p
}

func (s *CookieStore) SetPair(p Pair) {
	s.set(AccessCookieName, p.AccessToken, p.AccessExpiry)
	s.set(RefreshCookieName, p.RefreshToken, p.RefreshExpiry)
}

func (s *CookieStore) SetAccess(token string, expiry time.Time) {
	s.set(AccessCookieName, token, expiry)
}

func (s *CookieStore) Clear() {
	s.expire(AccessCookieName)
	s.expire(RefreshCookieName)
}

func (s *CookieStore) set(name, value string, expires time.Time) {
	http.SetCookie(s.w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     s.opts.Path,
		Domain:   s.opts.Domain,
		Expires:  expires,
		MaxAge:   int(time.Until(expires).Seconds()),
		HttpOnly: s.opts.HttpOnly,
		Secure:   s.opts.Secure,
		SameSite: s.opts.SameSite,
	})
}

func (s *CookieStore) expire(name string) {
	http.SetCookie(s.w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     s.opts.Path,
		Domain:   s.opts.Domain,
		MaxAge:   -1,
		HttpOnly: s.opts.HttpOnly,
		Secure:   s.opts.Secure,
		SameSite: s.opts.SameSite,
	})
}
