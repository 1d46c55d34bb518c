package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for the access tokens.
type Claims struct {
	AccountID int64
	Role      string
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for a given account.
	GenerateAccessToken(accountID int64, role string) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
