package repository

import (
	"context"
	"errors"

	"tienda/internal/domain/entity"
)

// ErrCustomerNotFound is returned when a customer profile is not found.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerQuery carries the optional filters for listing customers.
type CustomerQuery struct {
	// SearchWords are matched against the identification column; every
	// word must match (AND of ILIKE patterns).
	SearchWords []string
	Page        int
	Limit       int
}

// CustomerRepository defines the interface for customer profile persistence.
type CustomerRepository interface {
	// FindByID retrieves a customer by its unique ID, with the account preloaded.
	FindByID(ctx context.Context, id int64) (*entity.Customer, error)

	// FindByAccountID retrieves the customer profile attached to an account.
	FindByAccountID(ctx context.Context, accountID int64) (*entity.Customer, error)

	// List retrieves a page of customers with account and review preloaded,
	// and returns the total count matching the filters.
	List(ctx context.Context, query CustomerQuery) ([]*entity.Customer, int64, error)

	// Create persists a new customer profile.
	Create(ctx context.Context, customer *entity.Customer) error

	// Update modifies an existing customer profile.
	Update(ctx context.Context, customer *entity.Customer) error
}
