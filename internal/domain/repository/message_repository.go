package repository

import (
	"context"
	"errors"

	"tienda/internal/domain/entity"
)

// ErrMessageNotFound is returned when a message is not found.
var ErrMessageNotFound = errors.New("message not found")

// MessageRepository defines the interface for announcement message persistence.
type MessageRepository interface {
	// FindByID retrieves a message by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Message, error)

	// List retrieves all messages, optionally filtered by visibility.
	List(ctx context.Context, visibility *bool) ([]*entity.Message, error)

	// Create persists a new message.
	Create(ctx context.Context, message *entity.Message) error

	// Update modifies an existing message.
	Update(ctx context.Context, message *entity.Message) error

	// Delete removes a message.
	Delete(ctx context.Context, id int64) error
}
