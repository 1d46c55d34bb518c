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

type customerServiceFixtures struct {
	service      usecase.CustomerUsecase
	customerRepo *mockRepo.MockCustomerRepository
	orderRepo    *mockRepo.MockOrderRepository
}

func createTestCustomerService(t *testing.T) customerServiceFixtures {
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)

	service := NewCustomerService(CustomerServiceParams{
		CustomerRepo: customerRepo,
		OrderRepo:    orderRepo,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return customerServiceFixtures{
		service:      service,
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
	}
}

func TestCustomerService_List_TokenizesSearch(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	fx.customerRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.CustomerQuery")).
		Run(func(ctx context.Context, query repository.CustomerQuery) {
			assert.Equal(t, []string{"1092", "maria"}, query.SearchWords)
		}).
		Return([]*entity.Customer{{ID: 5}}, int64(1), nil)

	output, err := fx.service.List(ctx, adminIdentity(), &usecase.ListCustomersInput{
		Search: " 1092  maria ",
		Page:   1,
		Limit:  10,
	})

	require.NoError(t, err)
	assert.Len(t, output.Customers, 1)
}

func TestCustomerService_List_RequiresAdmin(t *testing.T) {
	fx := createTestCustomerService(t)

	output, err := fx.service.List(context.Background(), customerIdentity(5), &usecase.ListCustomersInput{})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestCustomerService_OwnOrders_DefaultsToCompleted(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	fx.orderRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.OrderQuery")).
		Run(func(ctx context.Context, query repository.OrderQuery) {
			require.NotNil(t, query.CustomerID)
			assert.Equal(t, int64(5), *query.CustomerID)
			require.NotNil(t, query.Status)
			assert.Equal(t, entity.StatusCompleted, *query.Status)
			assert.Nil(t, query.CreatedFrom)
		}).
		Return(nil, int64(0), nil)

	_, err := fx.service.OwnOrders(ctx, customerIdentity(5), &usecase.OwnOrdersInput{Page: 1, Limit: 10})
	require.NoError(t, err)
}

func TestCustomerService_OwnOrders_OverTodayUsesCreationWindow(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	fx.orderRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.OrderQuery")).
		Run(func(ctx context.Context, query repository.OrderQuery) {
			assert.Nil(t, query.Status)
			require.NotNil(t, query.CreatedFrom)
			require.NotNil(t, query.CreatedTo)
			assert.True(t, query.CreatedFrom.Before(*query.CreatedTo))
		}).
		Return(nil, int64(0), nil)

	_, err := fx.service.OwnOrders(ctx, customerIdentity(5), &usecase.OwnOrdersInput{
		OverToday: true,
		Page:      1,
		Limit:     10,
	})
	require.NoError(t, err)
}

func TestCustomerService_OwnOrders_RequiresCustomer(t *testing.T) {
	fx := createTestCustomerService(t)

	output, err := fx.service.OwnOrders(context.Background(), agentIdentity(3), &usecase.OwnOrdersInput{})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
