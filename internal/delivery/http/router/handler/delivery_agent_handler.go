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

// DeliveryAgentHandler holds dependencies for agent-related handlers.
type DeliveryAgentHandler struct {
	uc     usecase.DeliveryAgentUsecase
	logger *slog.Logger
}

// NewDeliveryAgentHandler is the constructor for DeliveryAgentHandler, injected by Fx.
func NewDeliveryAgentHandler(uc usecase.DeliveryAgentUsecase, logger *slog.Logger) *DeliveryAgentHandler {
	return &DeliveryAgentHandler{uc: uc, logger: logger}
}

// List returns the agent catalogue for the admin back office.
func (h *DeliveryAgentHandler) List(c echo.Context) error {
	availability, err := boolQuery(c, "availability")
	if err != nil {
		return err
	}

	identity := deliverycontext.GetIdentity(c)
	agents, err := h.uc.List(c.Request().Context(), identity, availability)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAgentViews(agents), "")
}

type createAgentRequest struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	Phone          string `json:"phone" validate:"required,len=10,numeric"`
	Identification string `json:"identification" validate:"required"`
}

// Create registers a new delivery agent.
func (h *DeliveryAgentHandler) Create(c echo.Context) error {
	var req createAgentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid agent input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	identity := deliverycontext.GetIdentity(c)
	agent, err := h.uc.Create(c.Request().Context(), identity, &usecase.CreateAgentInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		Phone:          req.Phone,
		Identification: req.Identification,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newAgentView(agent), "Delivery agent created")
}

// ToggleStatus flips an agent between active and inactive.
func (h *DeliveryAgentHandler) ToggleStatus(c echo.Context) error {
	agentID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	identity := deliverycontext.GetIdentity(c)
	agent, err := h.uc.ToggleStatus(c.Request().Context(), identity, agentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAgentView(agent), "Delivery agent status toggled")
}

// ToggleOwnAvailability flips the calling agent's availability flag.
func (h *DeliveryAgentHandler) ToggleOwnAvailability(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	agent, err := h.uc.ToggleOwnAvailability(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAgentView(agent), "Availability toggled")
}

// Orders returns a page of the agent's assigned orders.
func (h *DeliveryAgentHandler) Orders(c echo.Context) error {
	agentID, err := int64Query(c, "deliveryManId")
	if err != nil {
		return err
	}
	page, limit := pageQuery(c)

	input := &usecase.AgentOrdersInput{Page: page, Limit: limit}
	if agentID != nil {
		input.DeliveryAgentID = *agentID
	}

	identity := deliverycontext.GetIdentity(c)
	output, err := h.uc.Orders(c.Request().Context(), identity, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"orders":     newOrderViews(output.Orders),
		"pagination": newPaginationView(output.Pagination),
	}, "")
}
