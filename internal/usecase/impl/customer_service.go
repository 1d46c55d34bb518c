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
	"tienda/internal/usecase"

	"go.uber.org/fx"
)

// customerService implements the CustomerUsecase interface.
type customerService struct {
	customerRepo repository.CustomerRepository
	orderRepo    repository.OrderRepository
	logger       *slog.Logger
}

// CustomerServiceParams holds dependencies for CustomerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	CustomerRepo repository.CustomerRepository
	OrderRepo    repository.OrderRepository
	Logger       *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	return &customerService{
		customerRepo: params.CustomerRepo,
		orderRepo:    params.OrderRepo,
		logger:       params.Logger,
	}
}

func (srv *customerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns a page of customers with account and review attached (admin only).
func (srv *customerService) List(ctx context.Context, identity *entity.Identity, input *usecase.ListCustomersInput) (*usecase.ListCustomersOutput, error) {
	if err := requireAdmin(identity); err != nil {
		return nil, err
	}

	query := repository.CustomerQuery{
		SearchWords: strings.Fields(input.Search),
		Page:        input.Page,
		Limit:       input.Limit,
	}

	customers, total, err := srv.customerRepo.List(ctx, query)
	if err != nil {
		return nil, err
	}

	return &usecase.ListCustomersOutput{
		Customers:  customers,
		Pagination: usecase.NewPagination(total, input.Page, input.Limit),
	}, nil
}

// OwnOrders returns the calling customer's orders. The default view is the
// completed history; OverToday switches to the recent-creation window.
func (srv *customerService) OwnOrders(ctx context.Context, identity *entity.Identity, input *usecase.OwnOrdersInput) (*usecase.ListOrdersOutput, error) {
	if identity == nil || identity.Customer == nil {
		return nil, domainerrors.ErrForbidden.WrapMessage("customer role required")
	}

	query := repository.OrderQuery{
		CustomerID: &identity.Customer.ID,
		Page:       input.Page,
		Limit:      input.Limit,
	}

	if input.OverToday {
		from, to := overTodayWindow(time.Now())
		query.CreatedFrom = &from
		query.CreatedTo = &to
	} else {
		completed := entity.StatusCompleted
		query.Status = &completed
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
