// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role an account can have in the system.
type Role string

const (
	// RoleAdmin indicates an administrator account with neither profile attached.
	RoleAdmin Role = "admin"
	// RoleCustomer indicates a shopper account.
	RoleCustomer Role = "customer"
	// RoleDeliveryAgent indicates a courier account.
	RoleDeliveryAgent Role = "deliveryman"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleCustomer, RoleDeliveryAgent:
		return true
	default:
		return false
	}
}

// Identity is the resolved caller of a request: the base account plus
// whichever role profile was found for it. Exactly one Role is derived
// from the attached profiles; an account with neither profile is an admin.
type Identity struct {
	Account       *Account
	Customer      *Customer
	DeliveryAgent *DeliveryAgent
}

// Role derives the explicit role tag from the attached profiles.
func (id *Identity) Role() Role {
	switch {
	case id.DeliveryAgent != nil:
		return RoleDeliveryAgent
	case id.Customer != nil:
		return RoleCustomer
	default:
		return RoleAdmin
	}
}

// IsAdmin reports whether the caller is a plain account holder with
// neither sub-profile attached.
func (id *Identity) IsAdmin() bool {
	return id.Account != nil && id.Customer == nil && id.DeliveryAgent == nil
}

// OwnsOrder reports whether the caller is allowed to read the given order.
// Admins see everything; customers and agents only their own orders.
func (id *Identity) OwnsOrder(order *Order) bool {
	if id.Customer != nil {
		return order.CustomerID == id.Customer.ID
	}
	if id.DeliveryAgent != nil {
		return order.DeliveryAgentID != nil && *order.DeliveryAgentID == id.DeliveryAgent.ID
	}

	return id.Account != nil
}
