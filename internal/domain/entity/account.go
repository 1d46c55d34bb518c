// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Account is the base identity record in the system. It carries the login
// credential and a role tag; role-specific data lives in the Customer and
// DeliveryAgent profiles attached 1:1 to an account.
type Account struct {
	ID           int64     // Auto-incrementing primary key.
	Email        string    // Unique login identifier, stored lowercase.
	PasswordHash string    // bcrypt hash of the account password.
	Name         string    // Display name.
	Role         Role      // Role tag set at registration time.
	CreatedAt    time.Time // Timestamp of account creation.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// ClientType distinguishes natural persons from legal entities.
type ClientType string

const (
	// ClientTypeNatural is a natural person.
	ClientTypeNatural ClientType = "natural"
	// ClientTypeLegal is a legal entity (company).
	ClientTypeLegal ClientType = "legal"
)

// IsValid checks if the ClientType is a known value.
func (t ClientType) IsValid() bool {
	return t == ClientTypeNatural || t == ClientTypeLegal
}

// Customer is the shopper profile attached 1:1 to an Account.
// Login is gated on Confirmed until the email address has been verified.
type Customer struct {
	ID             int64
	AccountID      int64
	ClientType     ClientType
	Identification string // Fiscal/identity document number, searchable.
	Phone          string // Exactly 10 digits.
	Address        string
	Confirmed      bool // False until the confirmation token is consumed.
	Account        *Account
	Review         *Review // At most one per customer.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AgentStatus is the admin-controlled operating state of a delivery agent.
type AgentStatus string

const (
	// AgentStatusActive allows the agent to operate.
	AgentStatusActive AgentStatus = "active"
	// AgentStatusInactive blocks every request from the agent at
	// identity-resolution time.
	AgentStatusInactive AgentStatus = "inactive"
)

// DeliveryAgent is the courier profile attached 1:1 to an Account.
// Availability is self-toggled ("can accept new work now"); Status is
// admin-controlled ("is this account allowed to operate at all").
type DeliveryAgent struct {
	ID             int64
	AccountID      int64
	Availability   bool
	Status         AgentStatus
	Phone          string
	Identification string
	Account        *Account
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
