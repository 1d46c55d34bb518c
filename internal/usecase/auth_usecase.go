package usecase

import (
	"context"

	"tienda/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterCustomerInput defines the data required to register a new customer.
type RegisterCustomerInput struct {
	Name           string
	Email          string
	Password       string
	ClientType     entity.ClientType
	Identification string
	Phone          string
	Address        string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdatePasswordWithTokenInput resets a forgotten password using an action token.
type UpdatePasswordWithTokenInput struct {
	Token    string
	Password string
}

// UpdateProfileInput updates the caller's own account and customer fields.
type UpdateProfileInput struct {
	Name           string
	ClientType     entity.ClientType
	Identification string
	Phone          string
	Address        string
}

// UpdateOwnPasswordInput changes the caller's password after verifying the current one.
type UpdateOwnPasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created customer profile.
type RegisterOutput struct {
	Customer *entity.Customer
}

// LoginOutput returns the signed access token and the resolved identity.
type LoginOutput struct {
	AccessToken string
	Identity    *entity.Identity
}

// AuthUsecase defines the interface for authentication and account operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// RegisterCustomer creates the account + customer profile pair, issues a
	// confirmation token and sends the confirmation mail.
	RegisterCustomer(ctx context.Context, input *RegisterCustomerInput) (*RegisterOutput, error)

	// Login verifies credentials and returns an access token. Unconfirmed
	// customers are re-sent a confirmation token and rejected; inactive
	// delivery agents are rejected outright.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// ResolveIdentity validates a bearer token and loads the full caller
	// identity (account plus optional profiles). Inactive agents are rejected.
	ResolveIdentity(ctx context.Context, accessToken string) (*entity.Identity, error)

	// ConfirmAccount consumes a confirmation token and marks the customer confirmed.
	ConfirmAccount(ctx context.Context, token string) error

	// RequestConfirmationCode issues a fresh confirmation token for an
	// unconfirmed customer and mails it.
	RequestConfirmationCode(ctx context.Context, email string) error

	// ForgotPassword issues a password reset token and mails it.
	ForgotPassword(ctx context.Context, email string) error

	// ValidateToken reports whether an action token currently exists.
	ValidateToken(ctx context.Context, token string) error

	// UpdatePasswordWithToken resets the password for the customer holding
	// the token, consuming the token.
	UpdatePasswordWithToken(ctx context.Context, input *UpdatePasswordWithTokenInput) error

	// CurrentUser returns the caller's role-shaped profile projection.
	CurrentUser(ctx context.Context, identity *entity.Identity) (*entity.Identity, error)

	// UpdateProfile updates the caller's own account name and customer fields.
	UpdateProfile(ctx context.Context, identity *entity.Identity, input *UpdateProfileInput) error

	// ValidatePassword checks the caller's current password.
	ValidatePassword(ctx context.Context, identity *entity.Identity, password string) error

	// UpdateOwnPassword changes the caller's password.
	UpdateOwnPassword(ctx context.Context, identity *entity.Identity, input *UpdateOwnPasswordInput) error
}
