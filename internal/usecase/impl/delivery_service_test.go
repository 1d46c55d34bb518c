package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/domain/service"
	mockRepo "tienda/internal/mocks/repository"
	mockSvc "tienda/internal/mocks/service"
	"tienda/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deliveryAgentServiceFixtures struct {
	service     usecase.DeliveryAgentUsecase
	txManager   *mockRepo.MockTransactionManager
	accountRepo *mockRepo.MockAccountRepository
	agentRepo   *mockRepo.MockDeliveryAgentRepository
	orderRepo   *mockRepo.MockOrderRepository
	hasher      *mockSvc.MockPasswordHasher
	publisher   *mockSvc.MockEventPublisher
}

func createTestDeliveryAgentService(t *testing.T) deliveryAgentServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	agentRepo := mockRepo.NewMockDeliveryAgentRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewDeliveryAgentService(DeliveryAgentServiceParams{
		TxManager:   txManager,
		AccountRepo: accountRepo,
		AgentRepo:   agentRepo,
		OrderRepo:   orderRepo,
		Hasher:      hasher,
		Publisher:   publisher,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return deliveryAgentServiceFixtures{
		service:     service,
		txManager:   txManager,
		accountRepo: accountRepo,
		agentRepo:   agentRepo,
		orderRepo:   orderRepo,
		hasher:      hasher,
		publisher:   publisher,
	}
}

func TestDeliveryAgentService_Create_StartsActiveAndAvailable(t *testing.T) {
	fx := createTestDeliveryAgentService(t)

	ctx := context.Background()
	fx.accountRepo.EXPECT().
		FindByEmail(ctx, "courier@example.com").
		Return(nil, repository.ErrAccountNotFound)
	fx.hasher.EXPECT().Hash("Password123!").Return("hashed", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockAgentRepo := mockRepo.NewMockDeliveryAgentRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(mockAccountRepo)
			mockFactory.EXPECT().NewDeliveryAgentRepository().Return(mockAgentRepo)

			mockAccountRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Account")).
				Run(func(ctx context.Context, account *entity.Account) {
					assert.Equal(t, entity.RoleDeliveryAgent, account.Role)
					account.ID = 20
				}).
				Return(nil)
			mockAgentRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.DeliveryAgent")).
				Run(func(ctx context.Context, agent *entity.DeliveryAgent) {
					assert.Equal(t, int64(20), agent.AccountID)
					assert.True(t, agent.Availability)
					assert.Equal(t, entity.AgentStatusActive, agent.Status)
					agent.ID = 3
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	agent, err := fx.service.Create(ctx, adminIdentity(), &usecase.CreateAgentInput{
		Name:     "Courier",
		Email:    "Courier@Example.com",
		Password: "Password123!",
		Phone:    "3000000000",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), agent.ID)
	assert.Equal(t, "courier@example.com", agent.Account.Email)
}

func TestDeliveryAgentService_Create_RequiresAdmin(t *testing.T) {
	fx := createTestDeliveryAgentService(t)

	agent, err := fx.service.Create(context.Background(), agentIdentity(3), &usecase.CreateAgentInput{
		Email: "x@example.com",
	})

	require.Error(t, err)
	assert.Nil(t, agent)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestDeliveryAgentService_ToggleStatus(t *testing.T) {
	fx := createTestDeliveryAgentService(t)

	ctx := context.Background()
	fx.agentRepo.EXPECT().
		FindByID(ctx, int64(3)).
		Return(&entity.DeliveryAgent{ID: 3, Status: entity.AgentStatusActive}, nil)
	fx.agentRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.DeliveryAgent")).
		Return(nil)

	agent, err := fx.service.ToggleStatus(ctx, adminIdentity(), 3)

	require.NoError(t, err)
	assert.Equal(t, entity.AgentStatusInactive, agent.Status)
}

func TestDeliveryAgentService_ToggleOwnAvailability_EmitsEvent(t *testing.T) {
	fx := createTestDeliveryAgentService(t)

	ctx := context.Background()
	identity := agentIdentity(3)
	identity.DeliveryAgent.Availability = true

	fx.agentRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.DeliveryAgent")).
		Return(nil)
	fx.publisher.EXPECT().
		Emit(ctx, service.Event{Name: service.EventChangeAvailabilityDeliveryMan}).
		Return(nil)

	agent, err := fx.service.ToggleOwnAvailability(ctx, identity)

	require.NoError(t, err)
	assert.False(t, agent.Availability)
}

func TestDeliveryAgentService_ToggleOwnAvailability_SurvivesEmitFailure(t *testing.T) {
	fx := createTestDeliveryAgentService(t)

	ctx := context.Background()
	identity := agentIdentity(3)

	fx.agentRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.DeliveryAgent")).
		Return(nil)
	fx.publisher.EXPECT().
		Emit(ctx, mock.AnythingOfType("service.Event")).
		Return(errors.New("broker unavailable"))

	_, err := fx.service.ToggleOwnAvailability(ctx, identity)

	require.NoError(t, err)
}

func TestDeliveryAgentService_Orders_AgentPinnedToOwnID(t *testing.T) {
	fx := createTestDeliveryAgentService(t)

	ctx := context.Background()
	fx.orderRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.OrderQuery")).
		Run(func(ctx context.Context, query repository.OrderQuery) {
			require.NotNil(t, query.DeliveryAgentID)
			assert.Equal(t, int64(3), *query.DeliveryAgentID)
		}).
		Return(nil, int64(0), nil)

	// The filter asks for another agent's orders; the caller's own ID wins.
	_, err := fx.service.Orders(ctx, agentIdentity(3), &usecase.AgentOrdersInput{
		DeliveryAgentID: 99,
		Page:            1,
		Limit:           10,
	})
	require.NoError(t, err)
}

func TestDeliveryAgentService_Orders_CustomerForbidden(t *testing.T) {
	fx := createTestDeliveryAgentService(t)

	output, err := fx.service.Orders(context.Background(), customerIdentity(5), &usecase.AgentOrdersInput{
		DeliveryAgentID: 3,
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
