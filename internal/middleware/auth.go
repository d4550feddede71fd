package middleware

import (
	"net/http"

	"github.com/okkkkun/uuid-qr-generator/internal/credentials"
)

// Guard gates the protected upload routes on credential presence only.
// Token validity and refresh are the credential manager's job; the guard
// never calls the provider and never mutates the store.
type Guard struct{}

func NewGuard() *Guard {
	return &Guard{}
}

func (g *Guard) RequireCredentials(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !hasCookie(r, credentials.AccessCookieName) &&
			!hasCookie(r, credentials.RefreshCookieName) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"authentication required"}`))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func hasCookie(r *http.Request, name string) bool {
	c, err := r.Cookie(name)
	return err == nil && c.Value != ""
}
