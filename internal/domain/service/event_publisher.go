package service

import (
	"context"
)

// Names of the events emitted by the order and delivery flows. Subscribers
// switch on these; payloads are best-effort and carry no guarantee of
// delivery.
const (
	// EventNewOrder announces a newly created order. No payload.
	EventNewOrder = "newOrder"
	// EventChangeOrder announces a status or line change on an order.
	EventChangeOrder = "changeOrder"
	// EventAssignDeliveryMan announces an agent assignment.
	EventAssignDeliveryMan = "assignDeliveryMan"
	// EventChangeOrderAdmin nudges admin clients to refresh. No payload.
	EventChangeOrderAdmin = "changeOrderAdmin"
	// EventChangeAvailabilityDeliveryMan announces an agent availability toggle. No payload.
	EventChangeAvailabilityDeliveryMan = "changeAvailabilityDeliveryMan"
)

// Event is a named notification fanned out to connected clients.
type Event struct {
	Name    string `json:"name"`
	Payload any    `json:"payload,omitempty"`
}

// OrderEventPayload is the payload carried by changeOrder and
// assignDeliveryMan events.
type OrderEventPayload struct {
	OrderID         int64  `json:"orderId"`
	CustomerID      int64  `json:"customerId"`
	DeliveryAgentID *int64 `json:"deliveryManId,omitempty"`
}

// EventPublisher defines the interface for broadcasting domain events.
type EventPublisher interface {
	// Emit publishes an event. Emission is fire-and-forget: callers log
	// failures and continue, and slow consumers may miss events.
	Emit(ctx context.Context, event Event) error

	// Close releases any resources held by the publisher
	Close() error
}
