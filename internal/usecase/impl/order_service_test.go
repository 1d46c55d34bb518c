package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/domain/service"
	mockRepo "tienda/internal/mocks/repository"
	mockSvc "tienda/internal/mocks/service"
	"tienda/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
	agentRepo *mockRepo.MockDeliveryAgentRepository
	publisher *mockSvc.MockEventPublisher
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	agentRepo := mockRepo.NewMockDeliveryAgentRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewOrderService(OrderServiceParams{
		TxManager: txManager,
		OrderRepo: orderRepo,
		AgentRepo: agentRepo,
		Publisher: publisher,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return orderServiceFixtures{
		service:   service,
		txManager: txManager,
		orderRepo: orderRepo,
		agentRepo: agentRepo,
		publisher: publisher,
	}
}

func adminIdentity() *entity.Identity {
	return &entity.Identity{Account: &entity.Account{ID: 1, Role: entity.RoleAdmin}}
}

func customerIdentity(customerID int64) *entity.Identity {
	return &entity.Identity{
		Account:  &entity.Account{ID: 100 + customerID, Role: entity.RoleCustomer},
		Customer: &entity.Customer{ID: customerID, AccountID: 100 + customerID},
	}
}

func agentIdentity(agentID int64) *entity.Identity {
	return &entity.Identity{
		Account: &entity.Account{ID: 200 + agentID, Role: entity.RoleDeliveryAgent},
		DeliveryAgent: &entity.DeliveryAgent{
			ID:        agentID,
			AccountID: 200 + agentID,
			Status:    entity.AgentStatusActive,
		},
	}
}

func TestOrderService_Create_EmitsNewOrder(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.CreateOrderInput{
		PaymentMethod: entity.PaymentCounterDelivery,
		DeliveryType:  entity.DeliveryTypeDelivery,
		Address:       "Calle 1 #2-3",
		Lines: []usecase.OrderLineInput{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 1},
		},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
			mockOrderRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Order")).
				Run(func(ctx context.Context, order *entity.Order) {
					assert.Equal(t, entity.StatusInReview, order.Status)
					assert.Equal(t, int64(5), order.CustomerID)
					assert.Len(t, order.Lines, 2)
					order.ID = 42
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.publisher.EXPECT().
		Emit(ctx, service.Event{Name: service.EventNewOrder}).
		Return(nil)

	order, err := fx.service.Create(ctx, customerIdentity(5), input)

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, int64(42), order.ID)
	assert.Equal(t, entity.StatusInReview, order.Status)
}

func TestOrderService_Create_RequiresCustomer(t *testing.T) {
	fx := createTestOrderService(t)

	order, err := fx.service.Create(context.Background(), adminIdentity(), &usecase.CreateOrderInput{
		PaymentMethod: entity.PaymentCredit,
		DeliveryType:  entity.DeliveryTypePickup,
		Lines:         []usecase.OrderLineInput{{ProductID: 1, Quantity: 1}},
	})

	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_Create_RejectsEmptyAndInvalidLines(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	identity := customerIdentity(5)

	_, err := fx.service.Create(ctx, identity, &usecase.CreateOrderInput{
		PaymentMethod: entity.PaymentCredit,
		DeliveryType:  entity.DeliveryTypePickup,
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.Create(ctx, identity, &usecase.CreateOrderInput{
		PaymentMethod: entity.PaymentCredit,
		DeliveryType:  entity.DeliveryTypePickup,
		Lines:         []usecase.OrderLineInput{{ProductID: 1, Quantity: 0}},
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_AssignDeliveryAgent_SameAgentConflict(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	agentID := int64(3)
	fx.orderRepo.EXPECT().
		FindByID(ctx, int64(10)).
		Return(&entity.Order{ID: 10, CustomerID: 5, DeliveryAgentID: &agentID}, nil)

	order, err := fx.service.AssignDeliveryAgent(ctx, adminIdentity(), &usecase.AssignAgentInput{
		OrderID:         10,
		DeliveryAgentID: 3,
	})

	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrOrderInvalidAction)
}

func TestOrderService_AssignDeliveryAgent_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	fx.orderRepo.EXPECT().
		FindByID(ctx, int64(10)).
		Return(&entity.Order{ID: 10, CustomerID: 5}, nil)
	fx.agentRepo.EXPECT().
		FindByID(ctx, int64(3)).
		Return(&entity.DeliveryAgent{ID: 3, Status: entity.AgentStatusActive}, nil)
	fx.orderRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	agentID := int64(3)
	fx.publisher.EXPECT().
		Emit(ctx, service.Event{
			Name: service.EventAssignDeliveryMan,
			Payload: service.OrderEventPayload{
				OrderID:         10,
				CustomerID:      5,
				DeliveryAgentID: &agentID,
			},
		}).
		Return(nil)

	order, err := fx.service.AssignDeliveryAgent(ctx, adminIdentity(), &usecase.AssignAgentInput{
		OrderID:         10,
		DeliveryAgentID: 3,
	})

	require.NoError(t, err)
	require.NotNil(t, order)
	require.NotNil(t, order.DeliveryAgentID)
	assert.Equal(t, int64(3), *order.DeliveryAgentID)
}

func TestOrderService_AssignDeliveryAgent_RequiresAdmin(t *testing.T) {
	fx := createTestOrderService(t)

	order, err := fx.service.AssignDeliveryAgent(context.Background(), customerIdentity(5), &usecase.AssignAgentInput{
		OrderID:         10,
		DeliveryAgentID: 3,
	})

	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_ChangeStatus_RestampsCompletedAt(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	agentID := int64(3)
	alreadyCompleted := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	fx.orderRepo.EXPECT().
		FindByID(ctx, int64(10)).
		Return(&entity.Order{ID: 10, CustomerID: 5, DeliveryAgentID: &agentID, Status: entity.StatusSending}, nil).
		Once()
	fx.orderRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.publisher.EXPECT().Emit(ctx, mock.AnythingOfType("service.Event")).Return(nil)

	order, err := fx.service.ChangeStatus(ctx, adminIdentity(), &usecase.ChangeOrderStatusInput{
		OrderID: 10,
		Status:  entity.StatusCompleted,
	})

	require.NoError(t, err)
	require.NotNil(t, order.CompletedAt)
	assert.WithinDuration(t, time.Now(), *order.CompletedAt, time.Second)

	// Completing again after a return replaces the old stamp.
	fx.orderRepo.EXPECT().
		FindByID(ctx, int64(10)).
		Return(&entity.Order{
			ID: 10, CustomerID: 5, DeliveryAgentID: &agentID,
			Status: entity.StatusReturn, CompletedAt: &alreadyCompleted,
		}, nil).
		Once()

	order, err = fx.service.ChangeStatus(ctx, adminIdentity(), &usecase.ChangeOrderStatusInput{
		OrderID: 10,
		Status:  entity.StatusCompleted,
	})

	require.NoError(t, err)
	require.NotNil(t, order.CompletedAt)
	assert.NotEqual(t, alreadyCompleted, *order.CompletedAt)
	assert.WithinDuration(t, time.Now(), *order.CompletedAt, time.Second)
}

func TestOrderService_ChangeStatus_KeepsCompletedAtOnOtherTransitions(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	agentID := int64(3)
	completedAt := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	fx.orderRepo.EXPECT().
		FindByID(ctx, int64(10)).
		Return(&entity.Order{
			ID: 10, CustomerID: 5, DeliveryAgentID: &agentID,
			Status: entity.StatusCompleted, CompletedAt: &completedAt,
		}, nil)
	fx.orderRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.publisher.EXPECT().Emit(ctx, mock.AnythingOfType("service.Event")).Return(nil)

	order, err := fx.service.ChangeStatus(ctx, adminIdentity(), &usecase.ChangeOrderStatusInput{
		OrderID: 10,
		Status:  entity.StatusReturn,
	})

	require.NoError(t, err)
	require.NotNil(t, order.CompletedAt)
	assert.Equal(t, completedAt, *order.CompletedAt)
}

func TestOrderService_ChangeStatus_AdminEventOnlyForTerminalWithAgent(t *testing.T) {
	agentID := int64(3)

	tests := []struct {
		name            string
		deliveryAgentID *int64
		status          entity.OrderStatus
		wantAdminEvent  bool
	}{
		{"agent assigned, completed", &agentID, entity.StatusCompleted, true},
		{"agent assigned, return", &agentID, entity.StatusReturn, true},
		{"agent assigned, pending", &agentID, entity.StatusPending, false},
		{"no agent, completed", nil, entity.StatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)

			ctx := context.Background()
			fx.orderRepo.EXPECT().
				FindByID(ctx, int64(10)).
				Return(&entity.Order{ID: 10, CustomerID: 5, DeliveryAgentID: tt.deliveryAgentID}, nil)
			fx.orderRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

			var emitted []string
			fx.publisher.EXPECT().
				Emit(ctx, mock.AnythingOfType("service.Event")).
				Run(func(ctx context.Context, event service.Event) {
					emitted = append(emitted, event.Name)
				}).
				Return(nil)

			_, err := fx.service.ChangeStatus(ctx, adminIdentity(), &usecase.ChangeOrderStatusInput{
				OrderID: 10,
				Status:  tt.status,
			})
			require.NoError(t, err)

			assert.Contains(t, emitted, service.EventChangeOrder)
			if tt.wantAdminEvent {
				assert.Contains(t, emitted, service.EventChangeOrderAdmin)
			} else {
				assert.NotContains(t, emitted, service.EventChangeOrderAdmin)
			}
		})
	}
}

func TestOrderService_GetByID_ForeignOrderHidden(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	fx.orderRepo.EXPECT().
		FindByID(ctx, int64(10)).
		Return(&entity.Order{ID: 10, CustomerID: 99}, nil)

	order, err := fx.service.GetByID(ctx, customerIdentity(5), 10)

	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrOrderInvalidAction)
}

func TestOrderService_GetByID_AdminSeesAnyOrder(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	fx.orderRepo.EXPECT().
		FindByID(ctx, int64(10)).
		Return(&entity.Order{ID: 10, CustomerID: 99}, nil)

	order, err := fx.service.GetByID(ctx, adminIdentity(), 10)

	require.NoError(t, err)
	assert.Equal(t, int64(10), order.ID)
}

func TestOrderService_List_ScopesByRole(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	fx.orderRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.OrderQuery")).
		Run(func(ctx context.Context, query repository.OrderQuery) {
			require.NotNil(t, query.CustomerID)
			assert.Equal(t, int64(5), *query.CustomerID)
		}).
		Return([]*entity.Order{{ID: 1, CustomerID: 5}}, int64(1), nil)

	output, err := fx.service.List(ctx, customerIdentity(5), &usecase.ListOrdersInput{
		Page:  1,
		Limit: 10,
	})

	require.NoError(t, err)
	assert.Len(t, output.Orders, 1)
	assert.Equal(t, int64(1), output.Pagination.Total)
}

func TestOrderService_List_AgentScopedToOwnOrders(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	fx.orderRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.OrderQuery")).
		Run(func(ctx context.Context, query repository.OrderQuery) {
			require.NotNil(t, query.DeliveryAgentID)
			assert.Equal(t, int64(3), *query.DeliveryAgentID)
			assert.Nil(t, query.CustomerID)
		}).
		Return(nil, int64(0), nil)

	_, err := fx.service.List(ctx, agentIdentity(3), &usecase.ListOrdersInput{Page: 1, Limit: 10})
	require.NoError(t, err)
}

func TestOrderService_Chart_RequiresSingleWindow(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	_, err := fx.service.ChartCount(ctx, adminIdentity(), &usecase.ChartInput{})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.ChartCount(ctx, adminIdentity(), &usecase.ChartInput{LastWeek: true, PreviousMonth: true})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.ChartCount(ctx, customerIdentity(5), &usecase.ChartInput{LastWeek: true})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func completedOrder(at time.Time, deliveryType entity.DeliveryType, price float64) *entity.Order {
	return &entity.Order{
		Status:       entity.StatusCompleted,
		DeliveryType: deliveryType,
		CompletedAt:  &at,
		Lines: []*entity.OrderLine{
			{Quantity: 1, Product: &entity.Product{PriceAfter: price}},
		},
	}
}

func TestOrderService_ChartCount_BucketsByCompletionDay(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterday := today.AddDate(0, 0, -1)

	orders := []*entity.Order{
		completedOrder(yesterday.Add(2*time.Hour), entity.DeliveryTypePickup, 1000),
		completedOrder(yesterday.Add(3*time.Hour), entity.DeliveryTypePickup, 1000),
		completedOrder(today.AddDate(0, 0, -7).Add(time.Hour), entity.DeliveryTypePickup, 1000),
	}

	fx.orderRepo.EXPECT().
		FindCompletedBetween(ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(orders, nil)

	output, err := fx.service.ChartCount(ctx, adminIdentity(), &usecase.ChartInput{LastWeek: true})

	require.NoError(t, err)
	require.Len(t, output.Buckets, 7)
	assert.Equal(t, float64(1), output.Buckets[0].Value)
	assert.Equal(t, float64(2), output.Buckets[6].Value)
	assert.Equal(t, yesterday.Format("2006-01-02"), output.Buckets[6].Label)
}

func TestOrderService_ChartRevenue_WeeklySurchargeWaiver(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	at := today.AddDate(0, 0, -1).Add(time.Hour)

	orders := []*entity.Order{
		// Below the waiver threshold: surcharge applies.
		completedOrder(at, entity.DeliveryTypeDelivery, 10000),
		// At the threshold: surcharge waived.
		completedOrder(at, entity.DeliveryTypeDelivery, 50000),
		// Pickup never carries a surcharge.
		completedOrder(at, entity.DeliveryTypePickup, 20000),
	}

	fx.orderRepo.EXPECT().
		FindCompletedBetween(ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(orders, nil)

	output, err := fx.service.ChartRevenue(ctx, adminIdentity(), &usecase.ChartInput{LastWeek: true})

	require.NoError(t, err)
	require.Len(t, output.Buckets, 7)
	assert.Equal(t, float64(10000+3000+50000+20000), output.Buckets[6].Value)
}

func TestOrderService_ChartRevenue_MonthlyAlwaysSurcharges(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -1, 0)
	at := monthStart.Add(time.Hour)

	orders := []*entity.Order{
		// Above the weekly waiver threshold, but the monthly chart never waives.
		completedOrder(at, entity.DeliveryTypeDelivery, 60000),
	}

	fx.orderRepo.EXPECT().
		FindCompletedBetween(ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(orders, nil)

	output, err := fx.service.ChartRevenue(ctx, adminIdentity(), &usecase.ChartInput{PreviousMonth: true})

	require.NoError(t, err)
	require.NotEmpty(t, output.Buckets)
	assert.Equal(t, float64(63000), output.Buckets[0].Value)
}

func TestChartWindows_LastWeek(t *testing.T) {
	now := time.Date(2026, 8, 29, 15, 30, 0, 0, time.UTC)

	windows := chartWindows(now, true)

	// The window covers the seven days ending yesterday; today is excluded.
	require.Len(t, windows, 7)
	assert.Equal(t, "2026-08-22", windows[0].label)
	assert.Equal(t, "2026-08-28", windows[6].label)
	assert.Equal(t, time.Date(2026, 8, 22, 0, 0, 0, 0, time.UTC), windows[0].from)
	assert.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), windows[6].to)
	for _, w := range windows {
		assert.Equal(t, 24*time.Hour, w.to.Sub(w.from))
	}
}

func TestChartWindows_PreviousMonthClampsToMonthEnd(t *testing.T) {
	// Previous month is July 2026: 31 days, so four full weeks plus a
	// three-day tail.
	now := time.Date(2026, 8, 29, 15, 30, 0, 0, time.UTC)

	windows := chartWindows(now, false)

	require.Len(t, windows, 5)
	assert.Equal(t, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), windows[0].from)
	assert.Equal(t, time.Date(2026, 7, 29, 0, 0, 0, 0, time.UTC), windows[4].from)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), windows[4].to)
	assert.Equal(t, "2026-07-01 / 2026-07-07", windows[0].label)
	assert.Equal(t, "2026-07-29 / 2026-07-31", windows[4].label)
}

func TestChartWindows_FebruaryExactWeeks(t *testing.T) {
	// Previous month is February 2026: 28 days, exactly four windows.
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	windows := chartWindows(now, false)

	require.Len(t, windows, 4)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), windows[3].to)
}

func TestOverTodayWindow(t *testing.T) {
	now := time.Date(2026, 8, 29, 18, 45, 0, 0, time.UTC)

	from, to := overTodayWindow(now)

	assert.Equal(t, time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), to)
}
