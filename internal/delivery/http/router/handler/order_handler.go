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

// OrderHandler holds dependencies for order-related handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, logger: logger}
}

type orderLineRequest struct {
	ProductID int64 `json:"productId" validate:"required"`
	Quantity  int   `json:"quantity" validate:"required,min=1"`
}

type createOrderRequest struct {
	PaymentMethod   string             `json:"paymentMethod" validate:"required,oneof=counterDelivery credit"`
	DeliveryType    string             `json:"deliveryType" validate:"required,oneof=delivery pickup"`
	Status          string             `json:"status"`
	Address         string             `json:"address" validate:"required"`
	Request         string             `json:"request"`
	DeliveryAgentID *int64             `json:"deliveryManId"`
	Products        []orderLineRequest `json:"products" validate:"required,min=1,dive"`
}

// Create places an order for the calling customer.
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := &usecase.CreateOrderInput{
		PaymentMethod:   entity.PaymentMethod(req.PaymentMethod),
		DeliveryType:    entity.DeliveryType(req.DeliveryType),
		Status:          entity.OrderStatus(req.Status),
		Address:         req.Address,
		Request:         req.Request,
		DeliveryAgentID: req.DeliveryAgentID,
	}
	for _, line := range req.Products {
		input.Lines = append(input.Lines, usecase.OrderLineInput{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	identity := deliverycontext.GetIdentity(c)
	order, err := h.uc.Create(c.Request().Context(), identity, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newOrderView(order), "Order created")
}

type assignAgentRequest struct {
	DeliveryAgentID int64 `json:"deliveryManId" validate:"required"`
}

// AssignAgent sets the order's delivery agent.
func (h *OrderHandler) AssignAgent(c echo.Context) error {
	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req assignAgentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid assignment input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	identity := deliverycontext.GetIdentity(c)
	order, err := h.uc.AssignDeliveryAgent(c.Request().Context(), identity, &usecase.AssignAgentInput{
		OrderID:         orderID,
		DeliveryAgentID: req.DeliveryAgentID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOrderView(order), "Delivery agent assigned")
}

type changeStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ChangeStatus moves the order to a new status.
func (h *OrderHandler) ChangeStatus(c echo.Context) error {
	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req changeStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	identity := deliverycontext.GetIdentity(c)
	order, err := h.uc.ChangeStatus(c.Request().Context(), identity, &usecase.ChangeOrderStatusInput{
		OrderID: orderID,
		Status:  entity.OrderStatus(req.Status),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOrderView(order), "Order status changed")
}

type updateLinesRequest struct {
	RemoveProductIDs []int64 `json:"removeProductIds"`
	Status           string  `json:"status" validate:"required"`
}

// UpdateLines removes products from the order and applies a status update.
func (h *OrderHandler) UpdateLines(c echo.Context) error {
	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateLinesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order update input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	identity := deliverycontext.GetIdentity(c)
	order, err := h.uc.UpdateLines(c.Request().Context(), identity, &usecase.UpdateOrderLinesInput{
		OrderID:          orderID,
		RemoveProductIDs: req.RemoveProductIDs,
		Status:           entity.OrderStatus(req.Status),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOrderView(order), "Order updated")
}

// List returns a filtered page of orders scoped to the caller's role.
func (h *OrderHandler) List(c echo.Context) error {
	input := &usecase.ListOrdersInput{Search: c.QueryParam("search")}

	if raw := c.QueryParam("paymentMethod"); raw != "" {
		method := entity.PaymentMethod(raw)
		input.PaymentMethod = &method
	}
	if raw := c.QueryParam("deliveryType"); raw != "" {
		deliveryType := entity.DeliveryType(raw)
		input.DeliveryType = &deliveryType
	}
	if raw := c.QueryParam("status"); raw != "" {
		status := entity.OrderStatus(raw)
		input.Status = &status
	}

	var err error
	if input.CreatedFrom, err = timeQuery(c, "from"); err != nil {
		return err
	}
	if input.CreatedTo, err = timeQuery(c, "to"); err != nil {
		return err
	}

	overToday, err := boolQuery(c, "overToday")
	if err != nil {
		return err
	}
	input.OverToday = overToday != nil && *overToday

	input.Page, input.Limit = pageQuery(c)

	identity := deliverycontext.GetIdentity(c)
	output, err := h.uc.List(c.Request().Context(), identity, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"orders":     newOrderViews(output.Orders),
		"pagination": newPaginationView(output.Pagination),
	}, "")
}

// Get returns one order, rejecting foreign ones for non-admin callers.
func (h *OrderHandler) Get(c echo.Context) error {
	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	identity := deliverycontext.GetIdentity(c)
	order, err := h.uc.GetByID(c.Request().Context(), identity, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOrderView(order), "")
}

// chartInput derives the aggregation window switches from query parameters.
func chartInput(c echo.Context) (*usecase.ChartInput, error) {
	lastWeek, err := boolQuery(c, "lastWeek")
	if err != nil {
		return nil, err
	}
	previousMonth, err := boolQuery(c, "previousMonth")
	if err != nil {
		return nil, err
	}

	return &usecase.ChartInput{
		LastWeek:      lastWeek != nil && *lastWeek,
		PreviousMonth: previousMonth != nil && *previousMonth,
	}, nil
}

// ChartCount returns completed-order counts per bucket.
func (h *OrderHandler) ChartCount(c echo.Context) error {
	input, err := chartInput(c)
	if err != nil {
		return err
	}

	identity := deliverycontext.GetIdentity(c)
	output, err := h.uc.ChartCount(c.Request().Context(), identity, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.Buckets, "")
}

// ChartRevenue returns completed-order revenue per bucket.
func (h *OrderHandler) ChartRevenue(c echo.Context) error {
	input, err := chartInput(c)
	if err != nil {
		return err
	}

	identity := deliverycontext.GetIdentity(c)
	output, err := h.uc.ChartRevenue(c.Request().Context(), identity, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.Buckets, "")
}
