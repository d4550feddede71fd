package credentials

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issuedCookies(t *testing.T, w *httptest.ResponseRecorder) map[string]*http.Cookie {
	t.Helper()
	byName := make(map[string]*http.Cookie)
	for _, c := range w.Result().Cookies() {
		byName[c.Name] = c
	}
	return byName
}

func TestCookieStore_SetPairAndReadBack(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	store := NewCookieStore(w, r, CookieOptions{Secure: true})

	now := time.Now()
	store.SetPair(Pair{
		AccessToken:   "at",
		AccessExpiry:  now.Add(time.Hour),
		RefreshToken:  "rt",
		RefreshExpiry: now.Add(RefreshTTL),
	})

	cookies := issuedCookies(t, w)
	require.Len(t, cookies, 2)

	ac := cookies[AccessCookieName]
	require.NotNil(t, ac)
	assert.Equal(t, "at", ac.Value)
	assert.True(t, ac.HttpOnly)
	assert.True(t, ac.Secure)
	assert.Equal(t, http.SameSiteLaxMode, ac.SameSite)
	assert.InDelta(t, 3600, ac.MaxAge, 5)

	rc := cookies[RefreshCookieName]
	require.NotNil(t, rc)
	assert.Equal(t, "rt", rc.Value)
	assert.True(t, rc.HttpOnly)
	assert.InDelta(t, int(RefreshTTL.Seconds()), rc.MaxAge, 5)

	// a follow-up request carrying the issued cookies reads the same pair
	r2 := httptest.NewRequest(http.MethodGet, "/", nil)
	r2.AddCookie(&http.Cookie{Name: AccessCookieName, Value: ac.Value})
	r2.AddCookie(&http.Cookie{Name: RefreshCookieName, Value: rc.Value})

	pair := NewCookieStore(httptest.NewRecorder(), r2, CookieOptions{}).Pair()
	assert.Equal(t, "at", pair.AccessToken)
	assert.Equal(t, "rt", pair.RefreshToken)
}

func TestCookieStore_SetAccessLeavesRefreshAlone(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	store := NewCookieStore(w, r, CookieOptions{})

	store.SetAccess("fresh", time.Now().Add(time.Hour))

	cookies := issuedCookies(t, w)
	require.Len(t, cookies, 1)
	require.NotNil(t, cookies[AccessCookieName])
	assert.Equal(t, "fresh", cookies[AccessCookieName].Value)
}

func TestCookieStore_Clear(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	store := NewCookieStore(w, r, CookieOptions{})

	store.Clear()

	cookies := issuedCookies(t, w)
	require.Len(t, cookies, 2)
	for _, name := range []string{AccessCookieName, RefreshCookieName} {
		c := cookies[name]
		require.NotNil(t, c)
		assert.Empty(t, c.Value)
		assert.Equal(t, -1, c.MaxAge)
	}
}

func TestCookieStore_PairEmptyWithoutCookies(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	store := NewCookieStore(httptest.NewRecorder(), r, CookieOptions{})

	assert.True(t, store.Pair().Empty())
}

func TestCookieOptions_Normalize(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	// zero options still produce a script-unreadable, lax, root-path cookie
	NewCookieStore(w, r, CookieOptions{}).SetAccess("at", time.Now().Add(time.Hour))

	c := issuedCookies(t, w)[AccessCookieName]
	require.NotNil(t, c)
	assert.Equal(t, "/", c.Path)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.False(t, c.Secure)
}
