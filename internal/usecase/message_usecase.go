package usecase

import (
	"context"

	"tienda/internal/domain/entity"
)

// CreateMessageInput defines the data for a storefront announcement.
type CreateMessageInput struct {
	Message string
}

// UpdateMessageInput edits an announcement's text.
type UpdateMessageInput struct {
	ID      int64
	Message string
}

// MessageUsecase defines the interface for storefront announcement management.
// Mutations are admin-gated; listing visible messages is public.
type MessageUsecase interface {
	Create(ctx context.Context, identity *entity.Identity, input *CreateMessageInput) (*entity.Message, error)
	Update(ctx context.Context, identity *entity.Identity, input *UpdateMessageInput) (*entity.Message, error)
	Delete(ctx context.Context, identity *entity.Identity, id int64) error
	ToggleVisibility(ctx context.Context, identity *entity.Identity, id int64) (*entity.Message, error)
	List(ctx context.Context, identity *entity.Identity, visibility *bool) ([]*entity.Message, error)
}
