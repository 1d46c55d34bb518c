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

// subCategoryRepository implements the repository.SubCategoryRepository interface.
type subCategoryRepository struct {
	db *gorm.DB
}

// NewSubCategoryRepository is the constructor for subCategoryRepository.
func NewSubCategoryRepository(db *gorm.DB) repository.SubCategoryRepository {
	return &subCategoryRepository{
		db: db,
	}
}

// FindByID retrieves a subcategory by its unique ID.
func (repo *subCategoryRepository) FindByID(ctx context.Context, id int64) (*entity.SubCategory, error) {
	var subCategoryM model.SubCategoryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&subCategoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find subcategory by ID")
	}

	return toSubCategoryDomain(&subCategoryM), nil
}

// List retrieves subcategories, optionally scoped to a category and
// filtered by visibility.
func (repo *subCategoryRepository) List(ctx context.Context, categoryID *int64, visibility *bool) ([]*entity.SubCategory, error) {
	query := repo.db.WithContext(ctx).Order("id ASC")
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	if visibility != nil {
		query = query.Where("visibility = ?", *visibility)
	}

	var subCategoryModels []*model.SubCategoryModel
	if err := query.Find(&subCategoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list subcategories")
	}

	subCategories := make([]*entity.SubCategory, 0, len(subCategoryModels))
	for _, subCategoryM := range subCategoryModels {
		subCategories = append(subCategories, toSubCategoryDomain(subCategoryM))
	}

	return subCategories, nil
}

// Create persists a new subcategory.
func (repo *subCategoryRepository) Create(ctx context.Context, subCategory *entity.SubCategory) error {
	subCategoryM := fromSubCategoryDomain(subCategory)

	if err := repo.db.WithContext(ctx).Create(subCategoryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid category reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required subcategory information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create subcategory")
	}

	// Update the entity with generated values
	subCategory.ID = subCategoryM.ID
	subCategory.CreatedAt = subCategoryM.CreatedAt
	subCategory.UpdatedAt = subCategoryM.UpdatedAt

	return nil
}

// Update modifies an existing subcategory.
func (repo *subCategoryRepository) Update(ctx context.Context, subCategory *entity.SubCategory) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SubCategoryModel{}).
		Where("id = ?", subCategory.ID).
		Updates(map[string]interface{}{
			"category_id": subCategory.CategoryID,
			"name":        subCategory.Name,
			"visibility":  subCategory.Visibility,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update subcategory")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubCategoryNotFound
	}

	return nil
}

// HideByCategory sets visibility=false on every subcategory of the given category.
func (repo *subCategoryRepository) HideByCategory(ctx context.Context, categoryID int64) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.SubCategoryModel{}).
		Where("category_id = ?", categoryID).
		Update("visibility", false).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to hide subcategories by category")
	}

	return nil
}

// --- Mapper Functions ---

// toSubCategoryDomain converts a GORM SubCategoryModel to a domain SubCategory entity.
func toSubCategoryDomain(data *model.SubCategoryModel) *entity.SubCategory {
	if data == nil {
		return nil
	}

	return &entity.SubCategory{
		ID:         data.ID,
		CategoryID: data.CategoryID,
		Name:       data.Name,
		Visibility: data.Visibility,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromSubCategoryDomain converts a domain SubCategory entity to a GORM SubCategoryModel.
func fromSubCategoryDomain(data *entity.SubCategory) *model.SubCategoryModel {
	if data == nil {
		return nil
	}

	return &model.SubCategoryModel{
		ID:         data.ID,
		CategoryID: data.CategoryID,
		Name:       data.Name,
		Visibility: data.Visibility,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
