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

// CustomerHandler holds dependencies for customer-related handlers.
type CustomerHandler struct {
	uc     usecase.CustomerUsecase
	logger *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler, injected by Fx.
func NewCustomerHandler(uc usecase.CustomerUsecase, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{uc: uc, logger: logger}
}

// List returns a page of customers for the admin back office.
func (h *CustomerHandler) List(c echo.Context) error {
	page, limit := pageQuery(c)

	identity := deliverycontext.GetIdentity(c)
	output, err := h.uc.List(c.Request().Context(), identity, &usecase.ListCustomersInput{
		Search: c.QueryParam("search"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"customers":  newCustomerViews(output.Customers),
		"pagination": newPaginationView(output.Pagination),
	}, "")
}

// OwnOrders returns the calling customer's order history.
func (h *CustomerHandler) OwnOrders(c echo.Context) error {
	overToday, err := boolQuery(c, "overToday")
	if err != nil {
		return err
	}
	page, limit := pageQuery(c)

	identity := deliverycontext.GetIdentity(c)
	output, err := h.uc.OwnOrders(c.Request().Context(), identity, &usecase.OwnOrdersInput{
		OverToday: overToday != nil && *overToday,
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"orders":     newOrderViews(output.Orders),
		"pagination": newPaginationView(output.Pagination),
	}, "")
}
