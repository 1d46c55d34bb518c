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

// CatalogHandler holds dependencies for catalog-related handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{uc: uc, logger: logger}
}

type categoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// CreateCategory creates a catalog category.
func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	identity := deliverycontext.GetIdentity(c)
	category, err := h.uc.CreateCategory(c.Request().Context(), identity, &usecase.CreateCategoryInput{Name: req.Name})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newCategoryView(category), "Category created")
}

// UpdateCategory renames a category.
func (h *CatalogHandler) UpdateCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	identity := deliverycontext.GetIdentity(c)
	category, err := h.uc.UpdateCategory(c.Request().Context(), identity, &usecase.UpdateCategoryInput{ID: id, Name: req.Name})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCategoryView(category), "Category updated")
}

// ToggleCategoryVisibility flips a category's visibility, cascading on hide.
func (h *CatalogHandler) ToggleCategoryVisibility(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	identity := deliverycontext.GetIdentity(c)
	category, err := h.uc.ToggleCategoryVisibility(c.Request().Context(), identity, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCategoryView(category), "Category visibility toggled")
}

// GetCategory returns a single category.
func (h *CatalogHandler) GetCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	category, err := h.uc.GetCategory(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCategoryView(category), "")
}

// ListCategories returns categories with subcategories attached.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	visibility, err := boolQuery(c, "visibility")
	if err != nil {
		return err
	}

	categories, err := h.uc.ListCategories(c.Request().Context(), visibility)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCategoryViews(categories), "")
}

type subCategoryRequest struct {
	CategoryID int64  `json:"categoryId" validate:"required"`
	Name       string `json:"name" validate:"required"`
}

// CreateSubCategory creates a subcategory under a category.
func (h *CatalogHandler) CreateSubCategory(c echo.Context) error {
	var req subCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subcategory input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	identity := deliverycontext.GetIdentity(c)
	subCategory, err := h.uc.CreateSubCategory(c.Request().Context(), identity, &usecase.CreateSubCategoryInput{
		CategoryID: req.CategoryID,
		Name:       req.Name,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newSubCategoryView(subCategory), "Subcategory created")
}

type updateSubCategoryRequest struct {
	CategoryID int64  `json:"categoryId"`
	Name       string `json:"name" validate:"required"`
}

// UpdateSubCategory renames or re-parents a subcategory.
func (h *CatalogHandler) UpdateSubCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateSubCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subcategory input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	identity := deliverycontext.GetIdentity(c)
	subCategory, err := h.uc.UpdateSubCategory(c.Request().Context(), identity, &usecase.UpdateSubCategoryInput{
		ID:         id,
		CategoryID: req.CategoryID,
		Name:       req.Name,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSubCategoryView(subCategory), "Subcategory updated")
}

// ToggleSubCategoryVisibility flips a subcategory's visibility, disabling
// its products on hide.
func (h *CatalogHandler) ToggleSubCategoryVisibility(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	identity := deliverycontext.GetIdentity(c)
	subCategory, err := h.uc.ToggleSubCategoryVisibility(c.Request().Context(), identity, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSubCategoryView(subCategory), "Subcategory visibility toggled")
}

// GetSubCategory returns a single subcategory.
func (h *CatalogHandler) GetSubCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	subCategory, err := h.uc.GetSubCategory(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSubCategoryView(subCategory), "")
}

// ListSubCategories returns subcategories, optionally scoped to a category.
func (h *CatalogHandler) ListSubCategories(c echo.Context) error {
	categoryID, err := int64Query(c, "categoryId")
	if err != nil {
		return err
	}
	visibility, err := boolQuery(c, "visibility")
	if err != nil {
		return err
	}

	subCategories, err := h.uc.ListSubCategories(c.Request().Context(), categoryID, visibility)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSubCategoryViews(subCategories), "")
}

type productRequest struct {
	SubCategoryID int64   `json:"subCategoryId" validate:"required"`
	Name          string  `json:"name" validate:"required"`
	NIT           string  `json:"nit"`
	Description   string  `json:"description"`
	ImgURL        string  `json:"imgUrl"`
	PriceBefore   float64 `json:"priceBefore" validate:"gte=0"`
	PriceAfter    float64 `json:"priceAfter" validate:"gte=0"`
	IVA           float64 `json:"iva" validate:"gte=0"`
	Offer         bool    `json:"offer"`
}

// CreateProduct creates a product under a subcategory.
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	identity := deliverycontext.GetIdentity(c)
	product, err := h.uc.CreateProduct(c.Request().Context(), identity, &usecase.CreateProductInput{
		SubCategoryID: req.SubCategoryID,
		Name:          req.Name,
		NIT:           req.NIT,
		Description:   req.Description,
		ImgURL:        req.ImgURL,
		PriceBefore:   req.PriceBefore,
		PriceAfter:    req.PriceAfter,
		IVA:           req.IVA,
		Offer:         req.Offer,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newProductView(product), "Product created")
}

// UpdateProduct edits a product's descriptive and pricing fields.
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	identity := deliverycontext.GetIdentity(c)
	product, err := h.uc.UpdateProduct(c.Request().Context(), identity, &usecase.UpdateProductInput{
		ID:            id,
		SubCategoryID: req.SubCategoryID,
		Name:          req.Name,
		NIT:           req.NIT,
		Description:   req.Description,
		ImgURL:        req.ImgURL,
		PriceBefore:   req.PriceBefore,
		PriceAfter:    req.PriceAfter,
		IVA:           req.IVA,
		Offer:         req.Offer,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductView(product), "Product updated")
}

// ToggleProductAvailability flips a product's availability flag.
func (h *CatalogHandler) ToggleProductAvailability(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	identity := deliverycontext.GetIdentity(c)
	product, err := h.uc.ToggleProductAvailability(c.Request().Context(), identity, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductView(product), "Product availability toggled")
}

// ToggleProductOffer flips a product's offer flag.
func (h *CatalogHandler) ToggleProductOffer(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	identity := deliverycontext.GetIdentity(c)
	product, err := h.uc.ToggleProductOffer(c.Request().Context(), identity, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductView(product), "Product offer toggled")
}

// GetProduct returns a single product.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductView(product), "")
}

// ListProducts returns a filtered page of products.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	categoryID, err := int64Query(c, "categoryId")
	if err != nil {
		return err
	}
	subCategoryID, err := int64Query(c, "subCategoryId")
	if err != nil {
		return err
	}
	offer, err := boolQuery(c, "offer")
	if err != nil {
		return err
	}
	availability, err := boolQuery(c, "availability")
	if err != nil {
		return err
	}
	page, limit := pageQuery(c)

	output, err := h.uc.ListProducts(c.Request().Context(), &usecase.ListProductsInput{
		CategoryID:    categoryID,
		SubCategoryID: subCategoryID,
		Offer:         offer,
		Availability:  availability,
		Search:        c.QueryParam("search"),
		Page:          page,
		Limit:         limit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"products":   newProductViews(output.Products),
		"pagination": newPaginationView(output.Pagination),
	}, "")
}
