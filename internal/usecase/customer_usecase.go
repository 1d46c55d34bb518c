package usecase

import (
	"context"

	"tienda/internal/domain/entity"
)

// ListCustomersInput carries the admin customer listing filters.
type ListCustomersInput struct {
	// Search is word-tokenized and matched against identification.
	Search string
	Page   int
	Limit  int
}

// ListCustomersOutput returns a page of customers with pagination metadata.
type ListCustomersOutput struct {
	Customers  []*entity.Customer
	Pagination Pagination
}

// OwnOrdersInput lists the calling customer's orders.
type OwnOrdersInput struct {
	// OverToday switches from the completed-only default to the
	// today-or-yesterday creation window.
	OverToday bool
	Page      int
	Limit     int
}

// CustomerUsecase defines the interface for customer-facing operations
// beyond authentication.
type CustomerUsecase interface {
	// List returns a page of customers with account and review attached (admin only).
	List(ctx context.Context, identity *entity.Identity, input *ListCustomersInput) (*ListCustomersOutput, error)

	// OwnOrders returns the calling customer's orders, either completed
	// ones (default) or those created today or yesterday.
	OwnOrders(ctx context.Context, identity *entity.Identity, input *OwnOrdersInput) (*ListOrdersOutput, error)
}
