package credentials

import "time"

// Store is where the token pair lives between requests. The only shipped
// implementation is cookie-backed; the interface keeps the Manager unaware
// of that, so server-side session storage could be swapped in later.
type Store interface {
	Pair() Pair
	SetPair(p Pair)
	SetAccess(token string, expiry time.Time)
	Clear()
}
