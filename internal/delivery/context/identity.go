package context

import (
	"github.com/labstack/echo/v4"

	"tienda/internal/domain/entity"
)

// KeyIdentity is the key for storing the resolved caller identity in context.
const KeyIdentity ContextKey = "identity"

// GetIdentity extracts the resolved identity from echo.Context.
// Returns nil when the request was not authenticated.
func GetIdentity(c echo.Context) *entity.Identity {
	if identity, ok := c.Get(string(KeyIdentity)).(*entity.Identity); ok {
		return identity
	}

	return nil
}

// SetIdentity stores the resolved identity in echo.Context.
func SetIdentity(c echo.Context, identity *entity.Identity) {
	c.Set(string(KeyIdentity), identity)
}
