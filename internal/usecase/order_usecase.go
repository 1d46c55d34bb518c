package usecase

import (
	"context"
	"time"

	"tienda/internal/domain/entity"
)

// --- Input DTOs ---

// OrderLineInput is one product-quantity pair of a new order.
type OrderLineInput struct {
	ProductID int64
	Quantity  int
}

// CreateOrderInput defines the data required to place an order.
type CreateOrderInput struct {
	PaymentMethod   entity.PaymentMethod
	DeliveryType    entity.DeliveryType
	Status          entity.OrderStatus // Optional; defaults to inReview.
	Address         string
	Request         string
	DeliveryAgentID *int64
	Lines           []OrderLineInput
}

// AssignAgentInput assigns a delivery agent to an order.
type AssignAgentInput struct {
	OrderID         int64
	DeliveryAgentID int64
}

// ChangeOrderStatusInput moves an order to a new status.
type ChangeOrderStatusInput struct {
	OrderID int64
	Status  entity.OrderStatus
}

// UpdateOrderLinesInput removes lines by product and applies a status update.
type UpdateOrderLinesInput struct {
	OrderID          int64
	RemoveProductIDs []int64
	Status           entity.OrderStatus
}

// ListOrdersInput carries the optional order listing filters.
type ListOrdersInput struct {
	PaymentMethod *entity.PaymentMethod
	DeliveryType  *entity.DeliveryType
	Status        *entity.OrderStatus
	CreatedFrom   *time.Time
	CreatedTo     *time.Time
	// OverToday restricts to orders created today or yesterday.
	OverToday bool
	// Search is word-tokenized and matched against customer identification.
	Search string
	Page   int
	Limit  int
}

// ChartInput selects the aggregation window. Exactly one switch must be set.
type ChartInput struct {
	LastWeek      bool
	PreviousMonth bool
}

// --- Output DTOs ---

// ListOrdersOutput returns a page of orders with pagination metadata.
type ListOrdersOutput struct {
	Orders     []*entity.Order
	Pagination Pagination
}

// ChartBucket is one time slice of a chart aggregation.
type ChartBucket struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ChartOutput returns the aggregation buckets in chronological order.
type ChartOutput struct {
	Buckets []ChartBucket
}

// OrderUsecase defines the interface for order lifecycle operations.
type OrderUsecase interface {
	// Create places an order for the calling customer. Order and lines are
	// written in one transaction and a newOrder event is emitted on commit.
	Create(ctx context.Context, identity *entity.Identity, input *CreateOrderInput) (*entity.Order, error)

	// AssignDeliveryAgent sets the order's agent (admin only). Re-assigning
	// the same agent is a conflict. Emits assignDeliveryMan.
	AssignDeliveryAgent(ctx context.Context, identity *entity.Identity, input *AssignAgentInput) (*entity.Order, error)

	// ChangeStatus moves the order to a new status. Completion stamps
	// CompletedAt once. Emits changeOrder; also changeOrderAdmin when an
	// agent is assigned and the new status is return or completed.
	ChangeStatus(ctx context.Context, identity *entity.Identity, input *ChangeOrderStatusInput) (*entity.Order, error)

	// UpdateLines removes the listed products from the order and applies a
	// status update in one transaction (admin only). Emits changeOrder.
	UpdateLines(ctx context.Context, identity *entity.Identity, input *UpdateOrderLinesInput) (*entity.Order, error)

	// List returns a filtered page of orders. Customer and agent callers
	// are automatically scoped to their own orders.
	List(ctx context.Context, identity *entity.Identity, input *ListOrdersInput) (*ListOrdersOutput, error)

	// GetByID returns one order. Customer and agent callers must own it.
	GetByID(ctx context.Context, identity *entity.Identity, orderID int64) (*entity.Order, error)

	// ChartCount buckets completed orders by day (last week) or by 7-day
	// slices of the previous month (admin only).
	ChartCount(ctx context.Context, identity *entity.Identity, input *ChartInput) (*ChartOutput, error)

	// ChartRevenue aggregates completed-order revenue over the same buckets
	// (admin only).
	ChartRevenue(ctx context.Context, identity *entity.Identity, input *ChartInput) (*ChartOutput, error)
}
