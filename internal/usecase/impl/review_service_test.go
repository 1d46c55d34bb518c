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

func createTestReviewService(t *testing.T) (usecase.ReviewUsecase, *mockRepo.MockReviewRepository) {
	reviewRepo := mockRepo.NewMockReviewRepository(t)

	service := NewReviewService(ReviewServiceParams{
		ReviewRepo: reviewRepo,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return service, reviewRepo
}

func TestReviewService_Create_StartsHidden(t *testing.T) {
	service, reviewRepo := createTestReviewService(t)

	ctx := context.Background()
	reviewRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Review")).
		Run(func(ctx context.Context, review *entity.Review) {
			assert.Equal(t, int64(5), review.CustomerID)
			assert.False(t, review.Visibility)
			review.ID = 1
		}).
		Return(nil)

	review, err := service.Create(ctx, customerIdentity(5), &usecase.CreateReviewInput{
		Description:   "Great service",
		Qualification: 5,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), review.ID)
}

func TestReviewService_Create_DuplicateConflict(t *testing.T) {
	service, reviewRepo := createTestReviewService(t)

	ctx := context.Background()
	reviewRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Review")).
		Return(domainerrors.ErrReviewAlreadyExists.WrapMessage("duplicate customer review"))

	review, err := service.Create(ctx, customerIdentity(5), &usecase.CreateReviewInput{
		Description:   "Again",
		Qualification: 4,
	})

	require.Error(t, err)
	assert.Nil(t, review)
	assert.ErrorIs(t, err, domainerrors.ErrReviewAlreadyExists)
}

func TestReviewService_Create_RejectsBadQualification(t *testing.T) {
	service, _ := createTestReviewService(t)

	_, err := service.Create(context.Background(), customerIdentity(5), &usecase.CreateReviewInput{
		Qualification: 6,
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = service.Create(context.Background(), customerIdentity(5), &usecase.CreateReviewInput{
		Qualification: -1,
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestReviewService_Create_RequiresCustomer(t *testing.T) {
	service, _ := createTestReviewService(t)

	_, err := service.Create(context.Background(), adminIdentity(), &usecase.CreateReviewInput{Qualification: 3})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestReviewService_GetOwn_NilWhenMissing(t *testing.T) {
	service, reviewRepo := createTestReviewService(t)

	ctx := context.Background()
	reviewRepo.EXPECT().
		FindByCustomerID(ctx, int64(5)).
		Return(nil, repository.ErrReviewNotFound)

	review, err := service.GetOwn(ctx, customerIdentity(5))

	require.NoError(t, err)
	assert.Nil(t, review)
}

func TestReviewService_ToggleVisibility_AdminOnly(t *testing.T) {
	service, reviewRepo := createTestReviewService(t)

	ctx := context.Background()

	_, err := service.ToggleVisibility(ctx, customerIdentity(5), 1)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	reviewRepo.EXPECT().
		FindByID(ctx, int64(1)).
		Return(&entity.Review{ID: 1, CustomerID: 5, Visibility: false}, nil)
	reviewRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Review")).
		Return(nil)

	review, err := service.ToggleVisibility(ctx, adminIdentity(), 1)

	require.NoError(t, err)
	assert.True(t, review.Visibility)
}

func TestReviewService_Delete_OwnReviewOnly(t *testing.T) {
	service, reviewRepo := createTestReviewService(t)

	ctx := context.Background()
	reviewRepo.EXPECT().
		FindByCustomerID(ctx, int64(5)).
		Return(&entity.Review{ID: 9, CustomerID: 5}, nil)
	reviewRepo.EXPECT().Delete(ctx, int64(9)).Return(nil)

	require.NoError(t, service.Delete(ctx, customerIdentity(5)))
}
