package postgres

import (
	"context"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// FindByID retrieves a product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// List retrieves a page of products and the total count matching the filters.
func (repo *productRepository) List(ctx context.Context, query repository.ProductQuery) ([]*entity.Product, int64, error) {
	base := repo.db.WithContext(ctx).Model(&model.ProductModel{})

	if query.CategoryID != nil {
		base = base.Where(
			"sub_category_id IN (?)",
			repo.db.Model(&model.SubCategoryModel{}).
				Select("id").
				Where("category_id = ?", *query.CategoryID),
		)
	}
	if query.SubCategoryID != nil {
		base = base.Where("sub_category_id = ?", *query.SubCategoryID)
	}
	if query.Offer != nil {
		base = base.Where("offer = ?", *query.Offer)
	}
	if query.Availability != nil {
		base = base.Where("availability = ?", *query.Availability)
	}
	for _, word := range query.SearchWords {
		pattern := likePattern(word)
		base = base.Where("name ILIKE ? OR description ILIKE ? OR nit ILIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}

	var productModels []*model.ProductModel
	if err := paginate(base, query.Page, query.Limit).
		Order("id ASC").
		Find(&productModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, total, nil
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid subcategory reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	// Update the entity with generated values
	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update modifies an existing product.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			"sub_category_id": product.SubCategoryID,
			"name":            product.Name,
			"nit":             product.NIT,
			"description":     product.Description,
			"img_url":         product.ImgURL,
			"availability":    product.Availability,
			"price_before":    product.PriceBefore,
			"price_after":     product.PriceAfter,
			"iva":             product.IVA,
			"offer":           product.Offer,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// DisableBySubCategory sets availability=false on every product of the given subcategory.
func (repo *productRepository) DisableBySubCategory(ctx context.Context, subCategoryID int64) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("sub_category_id = ?", subCategoryID).
		Update("availability", false).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to disable products by subcategory")
	}

	return nil
}

// DisableByCategory sets availability=false on every product whose
// subcategory belongs to the given category.
func (repo *productRepository) DisableByCategory(ctx context.Context, categoryID int64) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where(
			"sub_category_id IN (?)",
			repo.db.Model(&model.SubCategoryModel{}).
				Select("id").
				Where("category_id = ?", categoryID),
		).
		Update("availability", false).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to disable products by category")
	}

	return nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:            data.ID,
		SubCategoryID: data.SubCategoryID,
		Name:          data.Name,
		NIT:           data.NIT,
		Description:   data.Description,
		ImgURL:        data.ImgURL,
		Availability:  data.Availability,
		PriceBefore:   data.PriceBefore,
		PriceAfter:    data.PriceAfter,
		IVA:           data.IVA,
		Offer:         data.Offer,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:            data.ID,
		SubCategoryID: data.SubCategoryID,
		Name:          data.Name,
		NIT:           data.NIT,
		Description:   data.Description,
		ImgURL:        data.ImgURL,
		Availability:  data.Availability,
		PriceBefore:   data.PriceBefore,
		PriceAfter:    data.PriceAfter,
		IVA:           data.IVA,
		Offer:         data.Offer,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
