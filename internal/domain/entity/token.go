package entity

import "time"

// TokenTTL is how long a persisted action token stays valid before the
// daily sweep removes it.
const TokenTTL = 24 * time.Hour

// Token is an opaque single-purpose credential persisted for flows such
// as account confirmation and password recovery. The value is random and
// carries no claims; validity is represented by row existence.
type Token struct {
	ID         int64
	Value      string
	CustomerID int64
	CreatedAt  time.Time
	ExpiresAt  time.Time
}

// Expired reports whether the token's expiry has passed at the given
// instant. The sweep uses this; lookups do not.
func (t *Token) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
