package postgres

import (
	"context"
	"time"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// tokenRepository implements the repository.TokenRepository interface.
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository is the constructor for tokenRepository.
func NewTokenRepository(db *gorm.DB) repository.TokenRepository {
	return &tokenRepository{
		db: db,
	}
}

// FindByValue retrieves a token by its opaque value.
func (repo *tokenRepository) FindByValue(ctx context.Context, value string) (*entity.Token, error) {
	var tokenM model.TokenModel

	if err := repo.db.WithContext(ctx).
		Where("value = ?", value).
		First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find token by value")
	}

	return toTokenDomain(&tokenM), nil
}

// Create persists a new token.
func (repo *tokenRepository) Create(ctx context.Context, token *entity.Token) error {
	tokenM := fromTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid customer reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create token")
	}

	// Update the entity with generated values
	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// DeleteByValue removes the token with the given value.
func (repo *tokenRepository) DeleteByValue(ctx context.Context, value string) error {
	result := repo.db.WithContext(ctx).
		Where("value = ?", value).
		Delete(&model.TokenModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTokenNotFound
	}

	return nil
}

// DeleteByCustomerID removes every token held by a customer.
func (repo *tokenRepository) DeleteByCustomerID(ctx context.Context, customerID int64) error {
	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Delete(&model.TokenModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete tokens by customer")
	}

	return nil
}

// DeleteExpired removes tokens whose expiry precedes now.
func (repo *tokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at < ?", now).
		Delete(&model.TokenModel{})

	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete expired tokens")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toTokenDomain converts a GORM TokenModel to a domain Token entity.
func toTokenDomain(data *model.TokenModel) *entity.Token {
	if data == nil {
		return nil
	}

	return &entity.Token{
		ID:         data.ID,
		Value:      data.Value,
		CustomerID: data.CustomerID,
		CreatedAt:  data.CreatedAt,
		ExpiresAt:  data.ExpiresAt,
	}
}

// fromTokenDomain converts a domain Token entity to a GORM TokenModel.
func fromTokenDomain(data *entity.Token) *model.TokenModel {
	if data == nil {
		return nil
	}

	return &model.TokenModel{
		ID:         data.ID,
		Value:      data.Value,
		CustomerID: data.CustomerID,
		CreatedAt:  data.CreatedAt,
		ExpiresAt:  data.ExpiresAt,
	}
}
