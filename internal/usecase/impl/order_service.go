package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "tienda/internal/delivery/context"
	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/domain/service"
	"tienda/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// deliverySurcharge is the flat fee added to couriered orders in the
	// revenue charts.
	deliverySurcharge = 3000
	// surchargeWaiverMin is the order subtotal above which the weekly
	// revenue chart waives the delivery surcharge. The monthly chart
	// applies the surcharge unconditionally.
	surchargeWaiverMin = 50000
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	agentRepo repository.DeliveryAgentRepository
	publisher service.EventPublisher
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	AgentRepo repository.DeliveryAgentRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		agentRepo: params.AgentRepo,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// emit publishes an event, logging and swallowing publish failures. Events
// are a UI refresh signal, never part of the transaction.
func (srv *orderService) emit(ctx context.Context, event service.Event) {
	if err := srv.publisher.Emit(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to emit event", slog.String("event", event.Name), slog.Any("error", err))
	}
}

func orderPayload(order *entity.Order) service.OrderEventPayload {
	return service.OrderEventPayload{
		OrderID:         order.ID,
		CustomerID:      order.CustomerID,
		DeliveryAgentID: order.DeliveryAgentID,
	}
}

// Create places an order for the calling customer.
func (srv *orderService) Create(ctx context.Context, identity *entity.Identity, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if identity == nil || identity.Customer == nil {
		return nil, domainerrors.ErrForbidden.WrapMessage("customer role required")
	}

	if !input.PaymentMethod.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown payment method")
	}
	if !input.DeliveryType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown delivery type")
	}
	if len(input.Lines) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("order needs at least one line")
	}

	status := input.Status
	if status == "" {
		status = entity.StatusInReview
	}
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown order status")
	}

	order := &entity.Order{
		PaymentMethod:   input.PaymentMethod,
		DeliveryType:    input.DeliveryType,
		Status:          status,
		Address:         input.Address,
		Request:         input.Request,
		CustomerID:      identity.Customer.ID,
		DeliveryAgentID: input.DeliveryAgentID,
	}
	for _, line := range input.Lines {
		if line.Quantity < 1 {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("line quantity must be positive")
		}
		order.Lines = append(order.Lines, &entity.OrderLine{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewOrderRepository().Create(ctx, order)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create order", slog.Int64("customerID", identity.Customer.ID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Order created", slog.Int64("orderID", order.ID), slog.Int64("customerID", order.CustomerID))
	srv.emit(ctx, service.Event{Name: service.EventNewOrder})

	return order, nil
}

// AssignDeliveryAgent sets the order's agent (admin only).
func (srv *orderService) AssignDeliveryAgent(ctx context.Context, identity *entity.Identity, input *usecase.AssignAgentInput) (*entity.Order, error) {
	if err := requireAdmin(identity); err != nil {
		return nil, err
	}

	order, err := srv.findOrder(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}

	if order.DeliveryAgentID != nil && *order.DeliveryAgentID == input.DeliveryAgentID {
		return nil, domainerrors.ErrOrderInvalidAction.WrapMessage("agent already assigned to this order")
	}

	agent, err := srv.agentRepo.FindByID(ctx, input.DeliveryAgentID)
	if err != nil {
		if errors.Is(err, repository.ErrDeliveryAgentNotFound) {
			return nil, domainerrors.ErrDeliveryAgentNotFound.WrapMessage("unknown delivery agent")
		}

		return nil, errors.Wrap(err, "failed to find delivery agent")
	}

	order.DeliveryAgentID = &agent.ID
	order.DeliveryAgent = agent
	if err := srv.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Delivery agent assigned",
		slog.Int64("orderID", order.ID), slog.Int64("agentID", agent.ID))
	srv.emit(ctx, service.Event{Name: service.EventAssignDeliveryMan, Payload: orderPayload(order)})

	return order, nil
}

// ChangeStatus moves the order to a new status. Every transition into
// completed restamps CompletedAt; other transitions leave it untouched.
func (srv *orderService) ChangeStatus(ctx context.Context, identity *entity.Identity, input *usecase.ChangeOrderStatusInput) (*entity.Order, error) {
	if identity == nil || identity.Account == nil {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("missing identity")
	}
	if !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown order status")
	}

	order, err := srv.findOrder(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}

	order.Status = input.Status
	if input.Status == entity.StatusCompleted {
		now := time.Now()
		order.CompletedAt = &now
	}

	if err := srv.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order status changed",
		slog.Int64("orderID", order.ID), slog.String("status", string(order.Status)))
	srv.emit(ctx, service.Event{Name: service.EventChangeOrder, Payload: orderPayload(order)})

	// Admin clients only care about orders leaving the active pipeline, and
	// only once an agent is involved.
	if order.DeliveryAgentID != nil &&
		(order.Status == entity.StatusReturn || order.Status == entity.StatusCompleted) {
		srv.emit(ctx, service.Event{Name: service.EventChangeOrderAdmin})
	}

	return order, nil
}

// UpdateLines removes the listed products from the order and applies a
// status update in one transaction (admin only).
func (srv *orderService) UpdateLines(ctx context.Context, identity *entity.Identity, input *usecase.UpdateOrderLinesInput) (*entity.Order, error) {
	if err := requireAdmin(identity); err != nil {
		return nil, err
	}
	if !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown order status")
	}

	order, err := srv.findOrder(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		if len(input.RemoveProductIDs) > 0 {
			if err := orderRepo.DeleteLines(ctx, order.ID, input.RemoveProductIDs); err != nil {
				return err
			}
		}

		order.Status = input.Status
		if input.Status == entity.StatusCompleted {
			now := time.Now()
			order.CompletedAt = &now
		}

		return orderRepo.Update(ctx, order)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update order lines", slog.Int64("orderID", order.ID), slog.Any("error", err))

		return nil, err
	}

	// Reload so the returned order reflects the surviving lines.
	order, err = srv.findOrder(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}

	srv.emit(ctx, service.Event{Name: service.EventChangeOrder, Payload: orderPayload(order)})

	return order, nil
}

// List returns a filtered page of orders. Customer and agent callers are
// scoped to their own orders regardless of the filters they pass.
func (srv *orderService) List(ctx context.Context, identity *entity.Identity, input *usecase.ListOrdersInput) (*usecase.ListOrdersOutput, error) {
	if identity == nil || identity.Account == nil {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("missing identity")
	}

	query := repository.OrderQuery{
		PaymentMethod: input.PaymentMethod,
		DeliveryType:  input.DeliveryType,
		Status:        input.Status,
		CreatedFrom:   input.CreatedFrom,
		CreatedTo:     input.CreatedTo,
		SearchWords:   strings.Fields(input.Search),
		Page:          input.Page,
		Limit:         input.Limit,
	}

	if input.OverToday {
		from, to := overTodayWindow(time.Now())
		query.CreatedFrom = &from
		query.CreatedTo = &to
	}

	switch {
	case identity.Customer != nil:
		query.CustomerID = &identity.Customer.ID
	case identity.DeliveryAgent != nil:
		query.DeliveryAgentID = &identity.DeliveryAgent.ID
	}

	orders, total, err := srv.orderRepo.List(ctx, query)
	if err != nil {
		return nil, err
	}

	return &usecase.ListOrdersOutput{
		Orders:     orders,
		Pagination: usecase.NewPagination(total, input.Page, input.Limit),
	}, nil
}

// GetByID returns one order, hiding foreign orders behind a conflict.
func (srv *orderService) GetByID(ctx context.Context, identity *entity.Identity, orderID int64) (*entity.Order, error) {
	if identity == nil || identity.Account == nil {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("missing identity")
	}

	order, err := srv.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	// Foreign orders are not distinguishable from invalid requests; the
	// caller learns nothing about their existence.
	if !identity.OwnsOrder(order) {
		return nil, domainerrors.ErrOrderInvalidAction.WrapMessage("invalid action")
	}

	return order, nil
}

// ChartCount buckets completed orders over the selected window (admin only).
func (srv *orderService) ChartCount(ctx context.Context, identity *entity.Identity, input *usecase.ChartInput) (*usecase.ChartOutput, error) {
	return srv.chart(ctx, identity, input, func(bucket []*entity.Order, _ bool) float64 {
		return float64(len(bucket))
	})
}

// ChartRevenue aggregates completed-order revenue over the selected window
// (admin only). Couriered orders carry the flat delivery surcharge; the
// weekly window waives it above the subtotal threshold, the monthly window
// never does.
func (srv *orderService) ChartRevenue(ctx context.Context, identity *entity.Identity, input *usecase.ChartInput) (*usecase.ChartOutput, error) {
	return srv.chart(ctx, identity, input, func(bucket []*entity.Order, lastWeek bool) float64 {
		var total float64
		for _, order := range bucket {
			subtotal := order.Subtotal()
			total += subtotal
			if order.DeliveryType != entity.DeliveryTypeDelivery {
				continue
			}
			if lastWeek && subtotal >= surchargeWaiverMin {
				continue
			}
			total += deliverySurcharge
		}

		return total
	})
}

// chart loads completed orders for the selected window, slices them into
// buckets and reduces each bucket with fn.
func (srv *orderService) chart(ctx context.Context, identity *entity.Identity, input *usecase.ChartInput, fn func(bucket []*entity.Order, lastWeek bool) float64) (*usecase.ChartOutput, error) {
	if err := requireAdmin(identity); err != nil {
		return nil, err
	}
	if input.LastWeek == input.PreviousMonth {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("exactly one chart window must be selected")
	}

	windows := chartWindows(time.Now(), input.LastWeek)

	from := windows[0].from
	to := windows[len(windows)-1].to
	orders, err := srv.orderRepo.FindCompletedBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	output := &usecase.ChartOutput{Buckets: make([]usecase.ChartBucket, 0, len(windows))}
	for _, window := range windows {
		var bucket []*entity.Order
		for _, order := range orders {
			if order.CompletedAt == nil {
				continue
			}
			at := *order.CompletedAt
			if !at.Before(window.from) && at.Before(window.to) {
				bucket = append(bucket, order)
			}
		}

		output.Buckets = append(output.Buckets, usecase.ChartBucket{
			Label: window.label,
			Value: fn(bucket, input.LastWeek),
		})
	}

	return output, nil
}

// chartWindow is one contiguous time slice of a chart.
type chartWindow struct {
	label string
	from  time.Time
	to    time.Time
}

// chartWindows computes the bucket boundaries: one per day for the seven
// days ending yesterday, or 7-day slices of the previous calendar month
// clamped to the month's end.
func chartWindows(now time.Time, lastWeek bool) []chartWindow {
	if lastWeek {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		windows := make([]chartWindow, 0, 7)
		for i := 7; i >= 1; i-- {
			day := today.AddDate(0, 0, -i)
			windows = append(windows, chartWindow{
				label: day.Format("2006-01-02"),
				from:  day,
				to:    day.AddDate(0, 0, 1),
			})
		}

		return windows
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -1, 0)
	monthEnd := monthStart.AddDate(0, 1, 0)

	var windows []chartWindow
	for from := monthStart; from.Before(monthEnd); from = from.AddDate(0, 0, 7) {
		to := from.AddDate(0, 0, 7)
		if to.After(monthEnd) {
			to = monthEnd
		}
		windows = append(windows, chartWindow{
			label: from.Format("2006-01-02") + " / " + to.AddDate(0, 0, -1).Format("2006-01-02"),
			from:  from,
			to:    to,
		})
	}

	return windows
}

// overTodayWindow returns [start of yesterday, start of tomorrow).
func overTodayWindow(now time.Time) (time.Time, time.Time) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	return today.AddDate(0, 0, -1), today.AddDate(0, 0, 1)
}

func (srv *orderService) findOrder(ctx context.Context, id int64) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WrapMessage("unknown order")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}
