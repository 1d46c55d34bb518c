package repository

import (
	"context"
	"errors"
	"time"

	"tienda/internal/domain/entity"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderQuery carries the optional filters for listing orders.
type OrderQuery struct {
	PaymentMethod *entity.PaymentMethod
	DeliveryType  *entity.DeliveryType
	Status        *entity.OrderStatus
	// CreatedFrom/CreatedTo bound the creation timestamp: [from, to).
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	// CustomerID/DeliveryAgentID scope the listing to one caller's orders.
	CustomerID      *int64
	DeliveryAgentID *int64
	// SearchWords are matched against the owning customer's identification;
	// every word must match (AND of ILIKE patterns).
	SearchWords []string
	Page        int
	Limit       int
}

// OrderRepository defines the interface for order persistence.
type OrderRepository interface {
	// FindByID retrieves an order with lines, products, customer and
	// delivery agent preloaded.
	FindByID(ctx context.Context, id int64) (*entity.Order, error)

	// List retrieves a page of orders with associations preloaded and the
	// total count matching the filters.
	List(ctx context.Context, query OrderQuery) ([]*entity.Order, int64, error)

	// Create persists a new order together with its lines.
	Create(ctx context.Context, order *entity.Order) error

	// Update modifies an existing order (status, assignment, completedAt).
	Update(ctx context.Context, order *entity.Order) error

	// DeleteLines removes the order's lines matching the given product IDs.
	DeleteLines(ctx context.Context, orderID int64, productIDs []int64) error

	// FindCompletedBetween retrieves completed orders whose completion
	// timestamp falls in [from, to), with lines and products preloaded.
	// Used by the chart aggregations.
	FindCompletedBetween(ctx context.Context, from, to time.Time) ([]*entity.Order, error)
}
