package repository

import (
	"context"
	"errors"

	"tienda/internal/domain/entity"
)

// ErrDeliveryAgentNotFound is returned when a delivery agent profile is not found.
var ErrDeliveryAgentNotFound = errors.New("delivery agent not found")

// DeliveryAgentRepository defines the interface for delivery agent persistence.
type DeliveryAgentRepository interface {
	// FindByID retrieves a delivery agent by its unique ID, with the account preloaded.
	FindByID(ctx context.Context, id int64) (*entity.DeliveryAgent, error)

	// FindByAccountID retrieves the delivery agent profile attached to an account.
	FindByAccountID(ctx context.Context, accountID int64) (*entity.DeliveryAgent, error)

	// List retrieves all delivery agents, optionally filtered by availability,
	// with accounts preloaded.
	List(ctx context.Context, availability *bool) ([]*entity.DeliveryAgent, error)

	// Create persists a new delivery agent profile.
	Create(ctx context.Context, agent *entity.DeliveryAgent) error

	// Update modifies an existing delivery agent profile.
	Update(ctx context.Context, agent *entity.DeliveryAgent) error
}
