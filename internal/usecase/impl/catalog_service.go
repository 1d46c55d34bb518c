package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "tienda/internal/delivery/context"
	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager       repository.TransactionManager
	categoryRepo    repository.CategoryRepository
	subCategoryRepo repository.SubCategoryRepository
	productRepo     repository.ProductRepository
	logger          *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	CategoryRepo    repository.CategoryRepository
	SubCategoryRepo repository.SubCategoryRepository
	ProductRepo     repository.ProductRepository
	Logger          *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager:       params.TxManager,
		categoryRepo:    params.CategoryRepo,
		subCategoryRepo: params.SubCategoryRepo,
		productRepo:     params.ProductRepo,
		logger:          params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// requireAdmin rejects any caller that is not an administrator.
func requireAdmin(identity *entity.Identity) error {
	if identity == nil || identity.Account == nil {
		return domainerrors.ErrUnauthenticated.WrapMessage("missing identity")
	}
	if !identity.IsAdmin() {
		return domainerrors.ErrForbidden.WrapMessage("administrator role required")
	}

	return nil
}

func (srv *catalogService) CreateCategory(ctx context.Context, identity *entity.Identity, input *usecase.CreateCategoryInput) (*entity.Category, error) {
	if err := requireAdmin(identity); err != nil {
		return nil, err
	}

	category := &entity.Category{
		Name:       input.Name,
		Visibility: true,
	}
	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Category created", slog.Int64("categoryID", category.ID))

	return category, nil
}

func (srv *catalogService) UpdateCategory(ctx context.Context, identity *entity.Identity, input *usecase.UpdateCategoryInput) (*entity.Category, error) {
	if err := requireAdmin(identity); err != nil {
		return nil, err
	}

	category, err := srv.findCategory(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	category.Name = input.Name
	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// ToggleCategoryVisibility flips a category's visibility. Hiding cascades:
// the category's subcategories are hidden and their products disabled in the
// same transaction. Showing a category never touches its children.
func (srv *catalogService) ToggleCategoryVisibility(ctx context.Context, identity *entity.Identity, id int64) (*entity.Category, error) {
	if err := requireAdmin(identity); err != nil {
		return nil, err
	}

	category, err := srv.findCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Visibility = !category.Visibility
	if category.Visibility {
		if err := srv.categoryRepo.Update(ctx, category); err != nil {
			return nil, err
		}

		return category, nil
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewCategoryRepository().Update(ctx, category); err != nil {
			return err
		}
		if err := repoFactory.NewSubCategoryRepository().HideByCategory(ctx, category.ID); err != nil {
			return err
		}

		return repoFactory.NewProductRepository().DisableByCategory(ctx, category.ID)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to hide category tree", slog.Int64("categoryID", id), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Category hidden with cascade", slog.Int64("categoryID", id))

	return category, nil
}

func (srv *catalogService) GetCategory(ctx context.Context, id int64) (*entity.Category, error) {
	return srv.findCategory(ctx, id)
}

func (srv *catalogService) ListCategories(ctx context.Context, visibility *bool) ([]*entity.Category, error) {
	return srv.categoryRepo.List(ctx, visibility)
}

func (srv *catalogService) CreateSubCategory(ctx context.Context, identity *entity.Identity, input *usecase.CreateSubCategoryInput) (*entity.SubCategory, error) {
	if err := requireAdmin(identity); err != nil {
		return nil, err
	}

	if _, err := srv.findCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	subCategory := &entity.SubCategory{
		CategoryID: input.CategoryID,
		Name:       input.Name,
		Visibility: true,
	}
	if err := srv.subCategoryRepo.Create(ctx, subCategory); err != nil {
		return nil, err
	}

	return subCategory, nil
}

func (srv *catalogService) UpdateSubCategory(ctx context.Context, identity *entity.Identity, input *usecase.UpdateSubCategoryInput) (*entity.SubCategory, error) {
	if err := requireAdmin(identity); err != nil {
		return nil, err
	}

	subCategory, err := srv.findSubCategory(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.CategoryID != 0 && input.CategoryID != subCategory.CategoryID {
		if _, err := srv.findCategory(ctx, input.CategoryID); err != nil {
			return nil, err
		}
		subCategory.CategoryID = input.CategoryID
	}
	subCategory.Name = input.Name

	if err := srv.subCategoryRepo.Update(ctx, subCategory); err != nil {
		return nil, err
	}

	return subCategory, nil
}

// ToggleSubCategoryVisibility flips a subcategory's visibility. Hiding
// disables its products in the same transaction; showing does not cascade.
func (srv *catalogService) ToggleSubCategoryVisibility(ctx context.Context, identity *entity.Identity, id int64) (*entity.SubCategory, error) {
	if err := requireAdmin(identity); err != nil {
		return nil, err
	}

	subCategory, err := srv.findSubCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	subCategory.Visibility = !subCategory.Visibility
	if subCategory.Visibility {
		if err := srv.subCategoryRepo.Update(ctx, subCategory); err != nil {
			return nil, err
		}

		return subCategory, nil
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewSubCategoryRepository().Update(ctx, subCategory); err != nil {
			return err
		}

		return repoFactory.NewProductRepository().DisableBySubCategory(ctx, subCategory.ID)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to hide subcategory", slog.Int64("subCategoryID", id), slog.Any("error", err))

		return nil, err
	}

	return subCategory, nil
}

func (srv *catalogService) GetSubCategory(ctx context.Context, id int64) (*entity.SubCategory, error) {
	return srv.findSubCategory(ctx, id)
}

func (srv *catalogService) ListSubCategories(ctx context.Context, categoryID *int64, visibility *bool) ([]*entity.SubCategory, error) {
	return srv.subCategoryRepo.List(ctx, categoryID, visibility)
}

func (srv *catalogService) CreateProduct(ctx context.Context, identity *entity.Identity, input *usecase.CreateProductInput) (*entity.Product, error) {
	if err := requireAdmin(identity); err != nil {
		return nil, err
	}

	if _, err := srv.findSubCategory(ctx, input.SubCategoryID); err != nil {
		return nil, err
	}

	product := &entity.Product{
		SubCategoryID: input.SubCategoryID,
		Name:          input.Name,
		NIT:           input.NIT,
		Description:   input.Description,
		ImgURL:        input.ImgURL,
		Availability:  true,
		PriceBefore:   input.PriceBefore,
		PriceAfter:    input.PriceAfter,
		IVA:           input.IVA,
		Offer:         input.Offer,
	}
	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Product created", slog.Int64("productID", product.ID))

	return product, nil
}

func (srv *catalogService) UpdateProduct(ctx context.Context, identity *entity.Identity, input *usecase.UpdateProductInput) (*entity.Product, error) {
	if err := requireAdmin(identity); err != nil {
		return nil, err
	}

	product, err := srv.findProduct(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.SubCategoryID != 0 && input.SubCategoryID != product.SubCategoryID {
		if _, err := srv.findSubCategory(ctx, input.SubCategoryID); err != nil {
			return nil, err
		}
		product.SubCategoryID = input.SubCategoryID
	}
	product.Name = input.Name
	product.NIT = input.NIT
	product.Description = input.Description
	product.ImgURL = input.ImgURL
	product.PriceBefore = input.PriceBefore
	product.PriceAfter = input.PriceAfter
	product.IVA = input.IVA
	product.Offer = input.Offer

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (srv *catalogService) ToggleProductAvailability(ctx context.Context, identity *entity.Identity, id int64) (*entity.Product, error) {
	if err := requireAdmin(identity); err != nil {
		return nil, err
	}

	product, err := srv.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Availability = !product.Availability
	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (srv *catalogService) ToggleProductOffer(ctx context.Context, identity *entity.Identity, id int64) (*entity.Product, error) {
	if err := requireAdmin(identity); err != nil {
		return nil, err
	}

	product, err := srv.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Offer = !product.Offer
	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (srv *catalogService) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	return srv.findProduct(ctx, id)
}

func (srv *catalogService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) (*usecase.ListProductsOutput, error) {
	query := repository.ProductQuery{
		CategoryID:    input.CategoryID,
		SubCategoryID: input.SubCategoryID,
		Offer:         input.Offer,
		Availability:  input.Availability,
		SearchWords:   strings.Fields(input.Search),
		Page:          input.Page,
		Limit:         input.Limit,
	}

	products, total, err := srv.productRepo.List(ctx, query)
	if err != nil {
		return nil, err
	}

	return &usecase.ListProductsOutput{
		Products:   products,
		Pagination: usecase.NewPagination(total, input.Page, input.Limit),
	}, nil
}

func (srv *catalogService) findCategory(ctx context.Context, id int64) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound.WrapMessage("unknown category")
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	return category, nil
}

func (srv *catalogService) findSubCategory(ctx context.Context, id int64) (*entity.SubCategory, error) {
	subCategory, err := srv.subCategoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSubCategoryNotFound) {
			return nil, domainerrors.ErrSubCategoryNotFound.WrapMessage("unknown subcategory")
		}

		return nil, errors.Wrap(err, "failed to find subcategory")
	}

	return subCategory, nil
}

func (srv *catalogService) findProduct(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("unknown product")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}
