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

// ReviewHandler holds dependencies for review-related handlers.
type ReviewHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{uc: uc, logger: logger}
}

type reviewRequest struct {
	Description   string `json:"description" validate:"required"`
	Qualification int    `json:"qualification" validate:"min=0,max=5"`
}

// Create stores the calling customer's review.
func (h *ReviewHandler) Create(c echo.Context) error {
	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	identity := deliverycontext.GetIdentity(c)
	review, err := h.uc.Create(c.Request().Context(), identity, &usecase.CreateReviewInput{
		Description:   req.Description,
		Qualification: req.Qualification,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newReviewView(review), "Review created")
}

// GetOwn returns the caller's review, or null when none exists.
func (h *ReviewHandler) GetOwn(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	review, err := h.uc.GetOwn(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newReviewView(review), "")
}

// ListVisible returns the public page of published reviews.
func (h *ReviewHandler) ListVisible(c echo.Context) error {
	page, limit := pageQuery(c)

	output, err := h.uc.ListVisible(c.Request().Context(), page, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"reviews":    newReviewViews(output.Reviews),
		"pagination": newPaginationView(output.Pagination),
	}, "")
}

// Update edits the caller's own review.
func (h *ReviewHandler) Update(c echo.Context) error {
	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	identity := deliverycontext.GetIdentity(c)
	review, err := h.uc.Update(c.Request().Context(), identity, &usecase.UpdateReviewInput{
		Description:   req.Description,
		Qualification: req.Qualification,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newReviewView(review), "Review updated")
}

// Delete removes the caller's own review.
func (h *ReviewHandler) Delete(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	if err := h.uc.Delete(c.Request().Context(), identity); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Review deleted")
}

// ToggleVisibility publishes or retracts a review.
func (h *ReviewHandler) ToggleVisibility(c echo.Context) error {
	reviewID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	identity := deliverycontext.GetIdentity(c)
	review, err := h.uc.ToggleVisibility(c.Request().Context(), identity, reviewID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newReviewView(review), "Review visibility toggled")
}
