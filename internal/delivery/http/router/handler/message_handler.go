package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "tienda/internal/delivery/context"
	"tienda/internal/delivery/http/response"
	"tienda/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MessageHandler holds dependencies for announcement-related handlers.
type MessageHandler struct {
	uc     usecase.MessageUsecase
	logger *slog.Logger
}

// NewMessageHandler is the constructor for MessageHandler, injected by Fx.
func NewMessageHandler(uc usecase.MessageUsecase, logger *slog.Logger) *MessageHandler {
	return &MessageHandler{uc: uc, logger: logger}
}

type messageRequest struct {
	Message string `json:"message" validate:"required"`
}

// Create publishes a new storefront announcement.
func (h *MessageHandler) Create(c echo.Context) error {
	var req messageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	identity := deliverycontext.GetIdentity(c)
	message, err := h.uc.Create(c.Request().Context(), identity, &usecase.CreateMessageInput{Message: req.Message})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newMessageView(message), "Message created")
}

// Update edits an announcement's text.
func (h *MessageHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req messageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	identity := deliverycontext.GetIdentity(c)
	message, err := h.uc.Update(c.Request().Context(), identity, &usecase.UpdateMessageInput{ID: id, Message: req.Message})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newMessageView(message), "Message updated")
}

// Delete removes an announcement.
func (h *MessageHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	identity := deliverycontext.GetIdentity(c)
	if err := h.uc.Delete(c.Request().Context(), identity, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Message deleted")
}

// ToggleVisibility shows or hides an announcement.
func (h *MessageHandler) ToggleVisibility(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	identity := deliverycontext.GetIdentity(c)
	message, err := h.uc.ToggleVisibility(c.Request().Context(), identity, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newMessageView(message), "Message visibility toggled")
}

// List returns announcements; anonymous callers only see visible ones.
func (h *MessageHandler) List(c echo.Context) error {
	visibility, err := boolQuery(c, "visibility")
	if err != nil {
		return err
	}

	identity := deliverycontext.GetIdentity(c)
	messages, err := h.uc.List(c.Request().Context(), identity, visibility)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newMessageViews(messages), "")
}
