package impl

import (
	"context"
	"log/slog"

	deliverycontext "tienda/internal/delivery/context"
	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	reviewRepo repository.ReviewRepository
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo repository.ReviewRepository
	Logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo: params.ReviewRepo,
		logger:     params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func validQualification(q int) bool {
	return q >= 0 && q <= 5
}

// Create stores the calling customer's review. Reviews start hidden until
// an admin publishes them.
func (srv *reviewService) Create(ctx context.Context, identity *entity.Identity, input *usecase.CreateReviewInput) (*entity.Review, error) {
	if identity == nil || identity.Customer == nil {
		return nil, domainerrors.ErrForbidden.WrapMessage("customer role required")
	}
	if !validQualification(input.Qualification) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("qualification must be between 0 and 5")
	}

	review := &entity.Review{
		CustomerID:    identity.Customer.ID,
		Description:   input.Description,
		Qualification: input.Qualification,
		Visibility:    false,
	}
	// The repository maps the unique customer_id violation to the
	// review-already-exists conflict.
	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Review created", slog.Int64("customerID", identity.Customer.ID))

	return review, nil
}

// GetOwn returns the caller's review, or nil when none exists.
func (srv *reviewService) GetOwn(ctx context.Context, identity *entity.Identity) (*entity.Review, error) {
	if identity == nil || identity.Customer == nil {
		return nil, domainerrors.ErrForbidden.WrapMessage("customer role required")
	}

	review, err := srv.reviewRepo.FindByCustomerID(ctx, identity.Customer.ID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find review")
	}

	return review, nil
}

// ListVisible returns a public page of visible reviews.
func (srv *reviewService) ListVisible(ctx context.Context, page, limit int) (*usecase.ListReviewsOutput, error) {
	reviews, total, err := srv.reviewRepo.ListVisible(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	return &usecase.ListReviewsOutput{
		Reviews:    reviews,
		Pagination: usecase.NewPagination(total, page, limit),
	}, nil
}

// Update edits the caller's own review.
func (srv *reviewService) Update(ctx context.Context, identity *entity.Identity, input *usecase.UpdateReviewInput) (*entity.Review, error) {
	if identity == nil || identity.Customer == nil {
		return nil, domainerrors.ErrForbidden.WrapMessage("customer role required")
	}
	if !validQualification(input.Qualification) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("qualification must be between 0 and 5")
	}

	review, err := srv.findOwnReview(ctx, identity.Customer.ID)
	if err != nil {
		return nil, err
	}

	review.Description = input.Description
	review.Qualification = input.Qualification
	if err := srv.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

// Delete removes the caller's own review.
func (srv *reviewService) Delete(ctx context.Context, identity *entity.Identity) error {
	if identity == nil || identity.Customer == nil {
		return domainerrors.ErrForbidden.WrapMessage("customer role required")
	}

	review, err := srv.findOwnReview(ctx, identity.Customer.ID)
	if err != nil {
		return err
	}

	return srv.reviewRepo.Delete(ctx, review.ID)
}

// ToggleVisibility publishes or retracts a review (admin only).
func (srv *reviewService) ToggleVisibility(ctx context.Context, identity *entity.Identity, reviewID int64) (*entity.Review, error) {
	if err := requireAdmin(identity); err != nil {
		return nil, err
	}

	review, err := srv.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound.WrapMessage("unknown review")
		}

		return nil, errors.Wrap(err, "failed to find review")
	}

	review.Visibility = !review.Visibility
	if err := srv.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Review visibility toggled",
		slog.Int64("reviewID", review.ID), slog.Bool("visible", review.Visibility))

	return review, nil
}

func (srv *reviewService) findOwnReview(ctx context.Context, customerID int64) (*entity.Review, error) {
	review, err := srv.reviewRepo.FindByCustomerID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound.WrapMessage("no review for this customer")
		}

		return nil, errors.Wrap(err, "failed to find review")
	}

	return review, nil
}
