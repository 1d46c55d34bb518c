package repository

import (
	"context"
	"errors"

	"tienda/internal/domain/entity"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrSubCategoryNotFound is returned when a subcategory is not found.
	ErrSubCategoryNotFound = errors.New("subcategory not found")
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
)

// CategoryRepository defines the interface for category persistence.
type CategoryRepository interface {
	// FindByID retrieves a category with its subcategories preloaded.
	FindByID(ctx context.Context, id int64) (*entity.Category, error)

	// List retrieves all categories with subcategories preloaded,
	// optionally filtered by visibility.
	List(ctx context.Context, visibility *bool) ([]*entity.Category, error)

	// Create persists a new category.
	Create(ctx context.Context, category *entity.Category) error

	// Update modifies an existing category.
	Update(ctx context.Context, category *entity.Category) error
}

// SubCategoryRepository defines the interface for subcategory persistence.
type SubCategoryRepository interface {
	// FindByID retrieves a subcategory by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.SubCategory, error)

	// List retrieves subcategories, optionally scoped to a category and
	// filtered by visibility.
	List(ctx context.Context, categoryID *int64, visibility *bool) ([]*entity.SubCategory, error)

	// Create persists a new subcategory.
	Create(ctx context.Context, subCategory *entity.SubCategory) error

	// Update modifies an existing subcategory.
	Update(ctx context.Context, subCategory *entity.SubCategory) error

	// HideByCategory sets visibility=false on every subcategory of the
	// given category. Used by the category hide cascade.
	HideByCategory(ctx context.Context, categoryID int64) error
}

// ProductQuery carries the optional filters for listing products.
type ProductQuery struct {
	CategoryID    *int64
	SubCategoryID *int64
	Offer         *bool
	Availability  *bool
	// SearchWords are matched against name, description and nit; every
	// word must match at least one of the columns (AND of ILIKE ORs).
	SearchWords []string
	Page        int
	Limit       int
}

// ProductRepository defines the interface for product persistence.
type ProductRepository interface {
	// FindByID retrieves a product by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Product, error)

	// List retrieves a page of products and the total count matching the filters.
	List(ctx context.Context, query ProductQuery) ([]*entity.Product, int64, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// DisableBySubCategory sets availability=false on every product of the
	// given subcategory. Used by the subcategory hide cascade.
	DisableBySubCategory(ctx context.Context, subCategoryID int64) error

	// DisableByCategory sets availability=false on every product whose
	// subcategory belongs to the given category. Used by the category hide cascade.
	DisableByCategory(ctx context.Context, categoryID int64) error
}
