package postgres

import (
	"context"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deliveryAgentRepository implements the repository.DeliveryAgentRepository interface.
type deliveryAgentRepository struct {
	db *gorm.DB
}

// NewDeliveryAgentRepository is the constructor for deliveryAgentRepository.
func NewDeliveryAgentRepository(db *gorm.DB) repository.DeliveryAgentRepository {
	return &deliveryAgentRepository{
		db: db,
	}
}

// FindByID retrieves a delivery agent by its unique ID, with the account preloaded.
func (repo *deliveryAgentRepository) FindByID(ctx context.Context, id int64) (*entity.DeliveryAgent, error) {
	var agentM model.DeliveryAgentModel

	if err := repo.db.WithContext(ctx).
		Preload("Account").
		Where("id = ?", id).
		First(&agentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeliveryAgentNotFound
		}

		return nil, errors.Wrap(err, "failed to find delivery agent by ID")
	}

	return toDeliveryAgentDomain(&agentM), nil
}

// FindByAccountID retrieves the delivery agent profile attached to an account.
func (repo *deliveryAgentRepository) FindByAccountID(ctx context.Context, accountID int64) (*entity.DeliveryAgent, error) {
	var agentM model.DeliveryAgentModel

	if err := repo.db.WithContext(ctx).
		Preload("Account").
		Where("account_id = ?", accountID).
		First(&agentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeliveryAgentNotFound
		}

		return nil, errors.Wrap(err, "failed to find delivery agent by account ID")
	}

	return toDeliveryAgentDomain(&agentM), nil
}

// List retrieves all delivery agents, optionally filtered by availability.
func (repo *deliveryAgentRepository) List(ctx context.Context, availability *bool) ([]*entity.DeliveryAgent, error) {
	query := repo.db.WithContext(ctx).
		Preload("Account").
		Order("id ASC")
	if availability != nil {
		query = query.Where("availability = ?", *availability)
	}

	var agentModels []*model.DeliveryAgentModel
	if err := query.Find(&agentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list delivery agents")
	}

	agents := make([]*entity.DeliveryAgent, 0, len(agentModels))
	for _, agentM := range agentModels {
		agents = append(agents, toDeliveryAgentDomain(agentM))
	}

	return agents, nil
}

// Create persists a new delivery agent profile.
func (repo *deliveryAgentRepository) Create(ctx context.Context, agent *entity.DeliveryAgent) error {
	agentM := fromDeliveryAgentDomain(agent)

	if err := repo.db.WithContext(ctx).Create(agentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("account already has a delivery agent profile")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid account reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required delivery agent information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create delivery agent")
	}

	// Update the entity with generated values
	agent.ID = agentM.ID
	agent.CreatedAt = agentM.CreatedAt
	agent.UpdatedAt = agentM.UpdatedAt

	return nil
}

// Update modifies an existing delivery agent profile.
func (repo *deliveryAgentRepository) Update(ctx context.Context, agent *entity.DeliveryAgent) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeliveryAgentModel{}).
		Where("id = ?", agent.ID).
		Updates(map[string]interface{}{
			"availability":   agent.Availability,
			"status":         string(agent.Status),
			"phone":          agent.Phone,
			"identification": agent.Identification,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update delivery agent")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeliveryAgentNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toDeliveryAgentDomain converts a GORM DeliveryAgentModel to a domain DeliveryAgent entity.
func toDeliveryAgentDomain(data *model.DeliveryAgentModel) *entity.DeliveryAgent {
	if data == nil {
		return nil
	}

	return &entity.DeliveryAgent{
		ID:             data.ID,
		AccountID:      data.AccountID,
		Availability:   data.Availability,
		Status:         entity.AgentStatus(data.Status),
		Phone:          data.Phone,
		Identification: data.Identification,
		Account:        toAccountDomain(data.Account),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromDeliveryAgentDomain converts a domain DeliveryAgent entity to a GORM DeliveryAgentModel.
func fromDeliveryAgentDomain(data *entity.DeliveryAgent) *model.DeliveryAgentModel {
	if data == nil {
		return nil
	}

	return &model.DeliveryAgentModel{
		ID:             data.ID,
		AccountID:      data.AccountID,
		Availability:   data.Availability,
		Status:         string(data.Status),
		Phone:          data.Phone,
		Identification: data.Identification,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
