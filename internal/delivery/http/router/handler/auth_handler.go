// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "tienda/internal/delivery/context"
	"tienda/internal/delivery/http/response"
	"tienda/internal/domain/entity"
	"tienda/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication-related handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, logger: logger}
}

type registerRequest struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	ClientType     string `json:"clientType" validate:"required,oneof=natural legal"`
	Identification string `json:"identification" validate:"required"`
	Phone          string `json:"phone" validate:"required,len=10,numeric"`
	Address        string `json:"address" validate:"required"`
}

// Register handles the customer registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.RegisterCustomer(c.Request().Context(), &usecase.RegisterCustomerInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		ClientType:     entity.ClientType(req.ClientType),
		Identification: req.Identification,
		Phone:          req.Phone,
		Address:        req.Address,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newCustomerView(output.Customer), "Customer registered successfully")
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login handles the login request for every role.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"accessToken": output.AccessToken,
		"role":        output.Identity.Role().String(),
		"user":        newIdentityView(output.Identity),
	}, "Login successful")
}

// Confirm consumes a confirmation token from the mail link.
func (h *AuthHandler) Confirm(c echo.Context) error {
	token := c.Param("token")
	if err := h.uc.ConfirmAccount(c.Request().Context(), token); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Account confirmed")
}

type emailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// RequestConfirmationCode re-sends a confirmation token to an unconfirmed customer.
func (h *AuthHandler) RequestConfirmationCode(c echo.Context) error {
	var req emailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.RequestConfirmationCode(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Confirmation code sent")
}

// ForgotPassword issues a password reset token by mail.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req emailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password reset mail sent")
}

// ValidateToken reports whether an action token is still usable.
func (h *AuthHandler) ValidateToken(c echo.Context) error {
	token := c.Param("token")
	if err := h.uc.ValidateToken(c.Request().Context(), token); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"valid": true}, "Token is valid")
}

type resetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// ResetPassword sets a new password using a reset token.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err := h.uc.UpdatePasswordWithToken(c.Request().Context(), &usecase.UpdatePasswordWithTokenInput{
		Token:    req.Token,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password updated")
}

// Profile returns the caller's role-shaped profile projection.
func (h *AuthHandler) Profile(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)

	out, err := h.uc.CurrentUser(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newIdentityView(out), "")
}

type updateProfileRequest struct {
	Name           string `json:"name" validate:"required"`
	ClientType     string `json:"clientType" validate:"omitempty,oneof=natural legal"`
	Identification string `json:"identification"`
	Phone          string `json:"phone" validate:"omitempty,len=10,numeric"`
	Address        string `json:"address"`
}

// UpdateProfile updates the caller's own account and profile fields.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	identity := deliverycontext.GetIdentity(c)
	err := h.uc.UpdateProfile(c.Request().Context(), identity, &usecase.UpdateProfileInput{
		Name:           req.Name,
		ClientType:     entity.ClientType(req.ClientType),
		Identification: req.Identification,
		Phone:          req.Phone,
		Address:        req.Address,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Profile updated")
}

type passwordRequest struct {
	Password string `json:"password" validate:"required"`
}

// ValidatePassword checks the caller's current password.
func (h *AuthHandler) ValidatePassword(c echo.Context) error {
	var req passwordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	identity := deliverycontext.GetIdentity(c)
	if err := h.uc.ValidatePassword(c.Request().Context(), identity, req.Password); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"valid": true}, "Password is valid")
}

type updateOwnPasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

// UpdateOwnPassword changes the caller's password.
func (h *AuthHandler) UpdateOwnPassword(c echo.Context) error {
	var req updateOwnPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	identity := deliverycontext.GetIdentity(c)
	err := h.uc.UpdateOwnPassword(c.Request().Context(), identity, &usecase.UpdateOwnPasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password updated")
}
