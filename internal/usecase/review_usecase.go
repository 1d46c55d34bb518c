package usecase

import (
	"context"

	"tienda/internal/domain/entity"
)

// CreateReviewInput defines the data for a customer's one-shot review.
type CreateReviewInput struct {
	Description   string
	Qualification int
}

// UpdateReviewInput edits the caller's own review.
type UpdateReviewInput struct {
	Description   string
	Qualification int
}

// ListReviewsOutput returns a page of visible reviews with pagination metadata.
type ListReviewsOutput struct {
	Reviews    []*entity.Review
	Pagination Pagination
}

// ReviewUsecase defines the interface for store review operations.
type ReviewUsecase interface {
	// Create stores the calling customer's review. A second review is a conflict.
	Create(ctx context.Context, identity *entity.Identity, input *CreateReviewInput) (*entity.Review, error)

	// GetOwn returns the caller's review, or nil when none exists.
	GetOwn(ctx context.Context, identity *entity.Identity) (*entity.Review, error)

	// ListVisible returns a public page of visible reviews.
	ListVisible(ctx context.Context, page, limit int) (*ListReviewsOutput, error)

	// Update edits the caller's own review.
	Update(ctx context.Context, identity *entity.Identity, input *UpdateReviewInput) (*entity.Review, error)

	// Delete removes the caller's own review.
	Delete(ctx context.Context, identity *entity.Identity) error

	// ToggleVisibility publishes or retracts a review (admin only).
	ToggleVisibility(ctx context.Context, identity *entity.Identity, reviewID int64) (*entity.Review, error)
}
