package repository

import (
	"context"
	"errors"
	"time"

	"tienda/internal/domain/entity"
)

// ErrTokenNotFound is returned when a token is not found.
var ErrTokenNotFound = errors.New("token not found")

// TokenRepository defines the interface for action token persistence.
type TokenRepository interface {
	// FindByValue retrieves a token by its opaque value.
	FindByValue(ctx context.Context, value string) (*entity.Token, error)

	// Create persists a new token.
	Create(ctx context.Context, token *entity.Token) error

	// DeleteByValue removes the token with the given value. Tokens are
	// single-use; consumption is deletion.
	DeleteByValue(ctx context.Context, value string) error

	// DeleteByCustomerID removes every token held by a customer.
	DeleteByCustomerID(ctx context.Context, customerID int64) error

	// DeleteExpired removes tokens whose expiry precedes now and reports
	// how many rows were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
