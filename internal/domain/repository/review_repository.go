package repository

import (
	"context"
	"errors"

	"tienda/internal/domain/entity"
)

// ErrReviewNotFound is returned when a review is not found.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines the interface for review persistence.
type ReviewRepository interface {
	// FindByID retrieves a review by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Review, error)

	// FindByCustomerID retrieves the review held by a customer, if any.
	FindByCustomerID(ctx context.Context, customerID int64) (*entity.Review, error)

	// ListVisible retrieves a page of visible reviews with customers and
	// accounts preloaded, and the total visible count.
	ListVisible(ctx context.Context, page, limit int) ([]*entity.Review, int64, error)

	// Create persists a new review. The customer_id column carries a unique
	// constraint; violations surface as a conflict.
	Create(ctx context.Context, review *entity.Review) error

	// Update modifies an existing review.
	Update(ctx context.Context, review *entity.Review) error

	// Delete removes a review.
	Delete(ctx context.Context, id int64) error
}
