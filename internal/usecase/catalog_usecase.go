package usecase

import (
	"context"

	"tienda/internal/domain/entity"
)

// --- Input DTOs ---

// CreateCategoryInput defines the data required to create a category.
type CreateCategoryInput struct {
	Name string
}

// UpdateCategoryInput renames a category.
type UpdateCategoryInput struct {
	ID   int64
	Name string
}

// CreateSubCategoryInput defines the data required to create a subcategory.
type CreateSubCategoryInput struct {
	CategoryID int64
	Name       string
}

// UpdateSubCategoryInput renames or re-parents a subcategory.
type UpdateSubCategoryInput struct {
	ID         int64
	CategoryID int64
	Name       string
}

// CreateProductInput defines the data required to create a product.
type CreateProductInput struct {
	SubCategoryID int64
	Name          string
	NIT           string
	Description   string
	ImgURL        string
	PriceBefore   float64
	PriceAfter    float64
	IVA           float64
	Offer         bool
}

// UpdateProductInput edits a product's descriptive and pricing fields.
type UpdateProductInput struct {
	ID            int64
	SubCategoryID int64
	Name          string
	NIT           string
	Description   string
	ImgURL        string
	PriceBefore   float64
	PriceAfter    float64
	IVA           float64
	Offer         bool
}

// ListProductsInput carries the optional product listing filters.
type ListProductsInput struct {
	CategoryID    *int64
	SubCategoryID *int64
	Offer         *bool
	Availability  *bool
	Search        string
	Page          int
	Limit         int
}

// --- Output DTOs ---

// ListProductsOutput returns a page of products with pagination metadata.
type ListProductsOutput struct {
	Products   []*entity.Product
	Pagination Pagination
}

// CatalogUsecase defines the interface for catalog management operations.
// Mutations are admin-gated; reads are public.
type CatalogUsecase interface {
	CreateCategory(ctx context.Context, identity *entity.Identity, input *CreateCategoryInput) (*entity.Category, error)
	UpdateCategory(ctx context.Context, identity *entity.Identity, input *UpdateCategoryInput) (*entity.Category, error)

	// ToggleCategoryVisibility flips a category's visibility. Hiding
	// cascades to child subcategories and their products in one
	// transaction; showing does not cascade.
	ToggleCategoryVisibility(ctx context.Context, identity *entity.Identity, id int64) (*entity.Category, error)

	GetCategory(ctx context.Context, id int64) (*entity.Category, error)
	ListCategories(ctx context.Context, visibility *bool) ([]*entity.Category, error)

	CreateSubCategory(ctx context.Context, identity *entity.Identity, input *CreateSubCategoryInput) (*entity.SubCategory, error)
	UpdateSubCategory(ctx context.Context, identity *entity.Identity, input *UpdateSubCategoryInput) (*entity.SubCategory, error)

	// ToggleSubCategoryVisibility flips a subcategory's visibility. Hiding
	// disables its products in one transaction; showing does not cascade.
	ToggleSubCategoryVisibility(ctx context.Context, identity *entity.Identity, id int64) (*entity.SubCategory, error)

	GetSubCategory(ctx context.Context, id int64) (*entity.SubCategory, error)
	ListSubCategories(ctx context.Context, categoryID *int64, visibility *bool) ([]*entity.SubCategory, error)

	CreateProduct(ctx context.Context, identity *entity.Identity, input *CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, identity *entity.Identity, input *UpdateProductInput) (*entity.Product, error)
	ToggleProductAvailability(ctx context.Context, identity *entity.Identity, id int64) (*entity.Product, error)
	ToggleProductOffer(ctx context.Context, identity *entity.Identity, id int64) (*entity.Product, error)
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)
	ListProducts(ctx context.Context, input *ListProductsInput) (*ListProductsOutput, error)
}
