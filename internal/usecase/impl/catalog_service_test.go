package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	mockRepo "tienda/internal/mocks/repository"
	"tienda/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service         usecase.CatalogUsecase
	txManager       *mockRepo.MockTransactionManager
	categoryRepo    *mockRepo.MockCategoryRepository
	subCategoryRepo *mockRepo.MockSubCategoryRepository
	productRepo     *mockRepo.MockProductRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	subCategoryRepo := mockRepo.NewMockSubCategoryRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	service := NewCatalogService(CatalogServiceParams{
		TxManager:       txManager,
		CategoryRepo:    categoryRepo,
		SubCategoryRepo: subCategoryRepo,
		ProductRepo:     productRepo,
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return catalogServiceFixtures{
		service:         service,
		txManager:       txManager,
		categoryRepo:    categoryRepo,
		subCategoryRepo: subCategoryRepo,
		productRepo:     productRepo,
	}
}

func TestCatalogService_ToggleCategoryVisibility_HideCascades(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	fx.categoryRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(&entity.Category{ID: 7, Name: "Drinks", Visibility: true}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)
			mockSubCategoryRepo := mockRepo.NewMockSubCategoryRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().NewCategoryRepository().Return(mockCategoryRepo)
			mockFactory.EXPECT().NewSubCategoryRepository().Return(mockSubCategoryRepo)
			mockFactory.EXPECT().NewProductRepository().Return(mockProductRepo)

			mockCategoryRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Category")).
				Run(func(ctx context.Context, category *entity.Category) {
					assert.False(t, category.Visibility)
				}).
				Return(nil)
			mockSubCategoryRepo.EXPECT().HideByCategory(ctx, int64(7)).Return(nil)
			mockProductRepo.EXPECT().DisableByCategory(ctx, int64(7)).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	category, err := fx.service.ToggleCategoryVisibility(ctx, adminIdentity(), 7)

	require.NoError(t, err)
	assert.False(t, category.Visibility)
}

func TestCatalogService_ToggleCategoryVisibility_ShowDoesNotCascade(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	fx.categoryRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(&entity.Category{ID: 7, Name: "Drinks", Visibility: false}, nil)

	// Showing is a plain update; no transaction, no child writes.
	fx.categoryRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Category")).
		Run(func(ctx context.Context, category *entity.Category) {
			assert.True(t, category.Visibility)
		}).
		Return(nil)

	category, err := fx.service.ToggleCategoryVisibility(ctx, adminIdentity(), 7)

	require.NoError(t, err)
	assert.True(t, category.Visibility)
}

func TestCatalogService_ToggleCategoryVisibility_RequiresAdmin(t *testing.T) {
	fx := createTestCatalogService(t)

	_, err := fx.service.ToggleCategoryVisibility(context.Background(), customerIdentity(5), 7)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = fx.service.ToggleCategoryVisibility(context.Background(), nil, 7)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestCatalogService_ToggleSubCategoryVisibility_HideDisablesProducts(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	fx.subCategoryRepo.EXPECT().
		FindByID(ctx, int64(4)).
		Return(&entity.SubCategory{ID: 4, CategoryID: 7, Visibility: true}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSubCategoryRepo := mockRepo.NewMockSubCategoryRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().NewSubCategoryRepository().Return(mockSubCategoryRepo)
			mockFactory.EXPECT().NewProductRepository().Return(mockProductRepo)

			mockSubCategoryRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.SubCategory")).Return(nil)
			mockProductRepo.EXPECT().DisableBySubCategory(ctx, int64(4)).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	subCategory, err := fx.service.ToggleSubCategoryVisibility(ctx, adminIdentity(), 4)

	require.NoError(t, err)
	assert.False(t, subCategory.Visibility)
}

func TestCatalogService_CreateSubCategory_UnknownCategory(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	fx.categoryRepo.EXPECT().
		FindByID(ctx, int64(99)).
		Return(nil, repository.ErrCategoryNotFound)

	subCategory, err := fx.service.CreateSubCategory(ctx, adminIdentity(), &usecase.CreateSubCategoryInput{
		CategoryID: 99,
		Name:       "Orphan",
	})

	require.Error(t, err)
	assert.Nil(t, subCategory)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCatalogService_GetCategory(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	fx.categoryRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(&entity.Category{ID: 7, Name: "Drinks", Visibility: true}, nil)

	category, err := fx.service.GetCategory(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, "Drinks", category.Name)

	fx.categoryRepo.EXPECT().
		FindByID(ctx, int64(404)).
		Return(nil, repository.ErrCategoryNotFound)

	_, err = fx.service.GetCategory(ctx, 404)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCatalogService_GetSubCategory(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	fx.subCategoryRepo.EXPECT().
		FindByID(ctx, int64(4)).
		Return(&entity.SubCategory{ID: 4, CategoryID: 7, Name: "Beers"}, nil)

	subCategory, err := fx.service.GetSubCategory(ctx, 4)

	require.NoError(t, err)
	assert.Equal(t, int64(7), subCategory.CategoryID)

	fx.subCategoryRepo.EXPECT().
		FindByID(ctx, int64(404)).
		Return(nil, repository.ErrSubCategoryNotFound)

	_, err = fx.service.GetSubCategory(ctx, 404)
	assert.ErrorIs(t, err, domainerrors.ErrSubCategoryNotFound)
}

func TestCatalogService_ListProducts_TokenizesSearch(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	fx.productRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.ProductQuery")).
		Run(func(ctx context.Context, query repository.ProductQuery) {
			assert.Equal(t, []string{"cold", "beer"}, query.SearchWords)
		}).
		Return([]*entity.Product{{ID: 1}}, int64(1), nil)

	output, err := fx.service.ListProducts(ctx, &usecase.ListProductsInput{
		Search: "  cold   beer ",
		Page:   1,
		Limit:  20,
	})

	require.NoError(t, err)
	assert.Len(t, output.Products, 1)
	assert.Equal(t, int64(1), output.Pagination.Total)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	fx.productRepo.EXPECT().
		FindByID(ctx, int64(404)).
		Return(nil, repository.ErrProductNotFound)

	product, err := fx.service.GetProduct(ctx, 404)

	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}
