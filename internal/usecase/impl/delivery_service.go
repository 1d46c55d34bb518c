package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "tienda/internal/delivery/context"
	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/domain/service"
	"tienda/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// deliveryAgentService implements the DeliveryAgentUsecase interface.
type deliveryAgentService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	agentRepo   repository.DeliveryAgentRepository
	orderRepo   repository.OrderRepository
	hasher      service.PasswordHasher
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// DeliveryAgentServiceParams holds dependencies for DeliveryAgentService, injected by Fx.
type DeliveryAgentServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	AgentRepo   repository.DeliveryAgentRepository
	OrderRepo   repository.OrderRepository
	Hasher      service.PasswordHasher
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewDeliveryAgentService is the constructor for deliveryAgentService.
func NewDeliveryAgentService(params DeliveryAgentServiceParams) usecase.DeliveryAgentUsecase {
	return &deliveryAgentService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		agentRepo:   params.AgentRepo,
		orderRepo:   params.OrderRepo,
		hasher:      params.Hasher,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

func (srv *deliveryAgentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns delivery agents, optionally filtered by availability (admin only).
func (srv *deliveryAgentService) List(ctx context.Context, identity *entity.Identity, availability *bool) ([]*entity.DeliveryAgent, error) {
	if err := requireAdmin(identity); err != nil {
		return nil, err
	}

	return srv.agentRepo.List(ctx, availability)
}

// Create registers an account + agent profile pair (admin only).
func (srv *deliveryAgentService) Create(ctx context.Context, identity *entity.Identity, input *usecase.CreateAgentInput) (*entity.DeliveryAgent, error) {
	if err := requireAdmin(identity); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	if _, err := srv.accountRepo.FindByEmail(ctx, email); err == nil {
		return nil, domainerrors.ErrEmailAlreadyExists.WrapMessage("email already registered")
	} else if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to check email uniqueness")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	var agent *entity.DeliveryAgent
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		account := &entity.Account{
			Email:        email,
			PasswordHash: hashedPassword,
			Name:         input.Name,
			Role:         entity.RoleDeliveryAgent,
		}
		if err := repoFactory.NewAccountRepository().Create(ctx, account); err != nil {
			return err
		}

		agent = &entity.DeliveryAgent{
			AccountID:      account.ID,
			Availability:   true,
			Status:         entity.AgentStatusActive,
			Phone:          input.Phone,
			Identification: input.Identification,
		}
		if err := repoFactory.NewDeliveryAgentRepository().Create(ctx, agent); err != nil {
			return err
		}
		agent.Account = account

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create delivery agent", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Delivery agent created", slog.Int64("agentID", agent.ID))

	return agent, nil
}

// ToggleStatus flips an agent between active and inactive (admin only).
func (srv *deliveryAgentService) ToggleStatus(ctx context.Context, identity *entity.Identity, agentID int64) (*entity.DeliveryAgent, error) {
	if err := requireAdmin(identity); err != nil {
		return nil, err
	}

	agent, err := srv.findAgent(ctx, agentID)
	if err != nil {
		return nil, err
	}

	if agent.Status == entity.AgentStatusActive {
		agent.Status = entity.AgentStatusInactive
	} else {
		agent.Status = entity.AgentStatusActive
	}

	if err := srv.agentRepo.Update(ctx, agent); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Delivery agent status toggled",
		slog.Int64("agentID", agent.ID), slog.String("status", string(agent.Status)))

	return agent, nil
}

// ToggleOwnAvailability flips the calling agent's availability.
func (srv *deliveryAgentService) ToggleOwnAvailability(ctx context.Context, identity *entity.Identity) (*entity.DeliveryAgent, error) {
	if identity == nil || identity.DeliveryAgent == nil {
		return nil, domainerrors.ErrForbidden.WrapMessage("delivery agent role required")
	}

	agent := identity.DeliveryAgent
	agent.Availability = !agent.Availability

	if err := srv.agentRepo.Update(ctx, agent); err != nil {
		return nil, err
	}

	if err := srv.publisher.Emit(ctx, service.Event{Name: service.EventChangeAvailabilityDeliveryMan}); err != nil {
		srv.log(ctx).Warn("Failed to emit availability event", slog.Any("error", err))
	}

	return agent, nil
}

// Orders returns a page of orders assigned to an agent. Agent callers are
// pinned to their own ID; admins may query any agent.
func (srv *deliveryAgentService) Orders(ctx context.Context, identity *entity.Identity, input *usecase.AgentOrdersInput) (*usecase.ListOrdersOutput, error) {
	if identity == nil || identity.Account == nil {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("missing identity")
	}

	agentID := input.DeliveryAgentID
	switch {
	case identity.DeliveryAgent != nil:
		agentID = identity.DeliveryAgent.ID
	case !identity.IsAdmin():
		return nil, domainerrors.ErrForbidden.WrapMessage("delivery agent or administrator role required")
	}

	query := repository.OrderQuery{
		DeliveryAgentID: &agentID,
		Page:            input.Page,
		Limit:           input.Limit,
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

func (srv *deliveryAgentService) findAgent(ctx context.Context, id int64) (*entity.DeliveryAgent, error) {
	agent, err := srv.agentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDeliveryAgentNotFound) {
			return nil, domainerrors.ErrDeliveryAgentNotFound.WrapMessage("unknown delivery agent")
		}

		return nil, errors.Wrap(err, "failed to find delivery agent")
	}

	return agent, nil
}
