package usecase

import (
	"context"

	"tienda/internal/domain/entity"
)

// CreateAgentInput defines the data required to register a delivery agent.
type CreateAgentInput struct {
	Name           string
	Email          string
	Password       string
	Phone          string
	Identification string
}

// AgentOrdersInput lists one agent's assigned orders.
type AgentOrdersInput struct {
	DeliveryAgentID int64
	Page            int
	Limit           int
}

// DeliveryAgentUsecase defines the interface for delivery agent management.
type DeliveryAgentUsecase interface {
	// List returns delivery agents, optionally filtered by availability (admin only).
	List(ctx context.Context, identity *entity.Identity, availability *bool) ([]*entity.DeliveryAgent, error)

	// Create registers an account + agent profile pair (admin only).
	Create(ctx context.Context, identity *entity.Identity, input *CreateAgentInput) (*entity.DeliveryAgent, error)

	// ToggleStatus flips an agent between active and inactive (admin only).
	ToggleStatus(ctx context.Context, identity *entity.Identity, agentID int64) (*entity.DeliveryAgent, error)

	// ToggleOwnAvailability flips the calling agent's availability and
	// emits changeAvailabilityDeliveryMan.
	ToggleOwnAvailability(ctx context.Context, identity *entity.Identity) (*entity.DeliveryAgent, error)

	// Orders returns a page of orders assigned to an agent. Agent callers
	// are scoped to themselves; admins may query any agent.
	Orders(ctx context.Context, identity *entity.Identity, input *AgentOrdersInput) (*ListOrdersOutput, error)
}
