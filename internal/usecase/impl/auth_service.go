// Package impl contains the implementation of the application's business logic.
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

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	customerRepo repository.CustomerRepository
	agentRepo    repository.DeliveryAgentRepository
	tokenRepo    repository.TokenRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	mailSender   service.MailSender
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	CustomerRepo repository.CustomerRepository
	AgentRepo    repository.DeliveryAgentRepository
	TokenRepo    repository.TokenRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	MailSender   service.MailSender
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		customerRepo: params.CustomerRepo,
		agentRepo:    params.AgentRepo,
		tokenRepo:    params.TokenRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		mailSender:   params.MailSender,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// newActionToken builds a fresh opaque token for a customer.
func newActionToken(customerID int64) *entity.Token {
	now := time.Now()

	return &entity.Token{
		Value:      strings.ReplaceAll(uuid.New().String(), "-", ""),
		CustomerID: customerID,
		CreatedAt:  now,
		ExpiresAt:  now.Add(entity.TokenTTL),
	}
}

// RegisterCustomer orchestrates the complete customer registration process.
func (srv *authService) RegisterCustomer(ctx context.Context, input *usecase.RegisterCustomerInput) (*usecase.RegisterOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	srv.log(ctx).Info("Starting customer registration", slog.String("email", email))

	if _, err := srv.accountRepo.FindByEmail(ctx, email); err == nil {
		return nil, domainerrors.ErrEmailAlreadyExists.WrapMessage("email already registered")
	} else if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to check email uniqueness")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	var registeredCustomer *entity.Customer
	var confirmationToken *entity.Token
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		account := &entity.Account{
			Email:        email,
			PasswordHash: hashedPassword,
			Name:         input.Name,
			Role:         entity.RoleCustomer,
		}
		if err := repoFactory.NewAccountRepository().Create(ctx, account); err != nil {
			return err
		}

		customer := &entity.Customer{
			AccountID:      account.ID,
			ClientType:     input.ClientType,
			Identification: input.Identification,
			Phone:          input.Phone,
			Address:        input.Address,
			Confirmed:      false,
		}
		if err := repoFactory.NewCustomerRepository().Create(ctx, customer); err != nil {
			return err
		}
		customer.Account = account

		token := newActionToken(customer.ID)
		if err := repoFactory.NewTokenRepository().Create(ctx, token); err != nil {
			return err
		}

		registeredCustomer = customer
		confirmationToken = token

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	// Mail failures do not undo a committed registration; the customer can
	// request a fresh confirmation code later.
	if err := srv.mailSender.SendConfirmation(ctx, email, input.Name, confirmationToken.Value); err != nil {
		srv.log(ctx).Warn("Failed to send confirmation mail", slog.String("email", email), slog.Any("error", err))
	}

	srv.log(ctx).Debug("Customer registration completed", slog.Int64("customerID", registeredCustomer.ID))

	return &usecase.RegisterOutput{Customer: registeredCustomer}, nil
}

// Login verifies credentials and returns a signed access token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("unknown email")
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("wrong password")
	}

	identity, err := srv.loadIdentity(ctx, account)
	if err != nil {
		return nil, err
	}

	// An unconfirmed customer gets a fresh confirmation code instead of a session.
	if identity.Customer != nil && !identity.Customer.Confirmed {
		token := newActionToken(identity.Customer.ID)
		if err := srv.tokenRepo.Create(ctx, token); err != nil {
			srv.log(ctx).Error("Failed to create confirmation token at login", slog.Any("error", err))
		} else if err := srv.mailSender.SendConfirmation(ctx, email, account.Name, token.Value); err != nil {
			srv.log(ctx).Warn("Failed to re-send confirmation mail", slog.String("email", email), slog.Any("error", err))
		}

		return nil, domainerrors.ErrAccountNotConfirmed.WrapMessage("account pending confirmation")
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(account.ID, identity.Role().String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign access token")
	}

	srv.log(ctx).Info("Login succeeded", slog.Int64("accountID", account.ID), slog.String("role", identity.Role().String()))

	return &usecase.LoginOutput{AccessToken: accessToken, Identity: identity}, nil
}

// ResolveIdentity validates a bearer token and loads the full caller identity.
func (srv *authService) ResolveIdentity(ctx context.Context, accessToken string) (*entity.Identity, error) {
	claims, err := srv.tokenService.ValidateToken(accessToken)
	if err != nil {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("invalid access token")
	}

	account, err := srv.accountRepo.FindByID(ctx, claims.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrUnauthenticated.WrapMessage("account no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load account")
	}

	return srv.loadIdentity(ctx, account)
}

// loadIdentity attaches whichever role profiles exist for the account.
// An inactive delivery agent is rejected here, before any route logic runs.
func (srv *authService) loadIdentity(ctx context.Context, account *entity.Account) (*entity.Identity, error) {
	identity := &entity.Identity{Account: account}

	customer, err := srv.customerRepo.FindByAccountID(ctx, account.ID)
	if err != nil && !errors.Is(err, repository.ErrCustomerNotFound) {
		return nil, errors.Wrap(err, "failed to load customer profile")
	}
	if err == nil {
		customer.Account = account
		identity.Customer = customer
	}

	agent, err := srv.agentRepo.FindByAccountID(ctx, account.ID)
	if err != nil && !errors.Is(err, repository.ErrDeliveryAgentNotFound) {
		return nil, errors.Wrap(err, "failed to load delivery agent profile")
	}
	if err == nil {
		if agent.Status == entity.AgentStatusInactive {
			return nil, domainerrors.ErrAgentInactive.WrapMessage("agent deactivated by an administrator")
		}
		agent.Account = account
		identity.DeliveryAgent = agent
	}

	return identity, nil
}

// ConfirmAccount consumes a confirmation token and marks the customer confirmed.
func (srv *authService) ConfirmAccount(ctx context.Context, tokenValue string) error {
	token, err := srv.tokenRepo.FindByValue(ctx, tokenValue)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return domainerrors.ErrTokenNotFound.WrapMessage("unknown confirmation token")
		}

		return errors.Wrap(err, "failed to find token")
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.NewCustomerRepository()

		customer, err := customerRepo.FindByID(ctx, token.CustomerID)
		if err != nil {
			return errors.Wrap(err, "failed to load customer for confirmation")
		}

		customer.Confirmed = true
		if err := customerRepo.Update(ctx, customer); err != nil {
			return err
		}

		return repoFactory.NewTokenRepository().DeleteByValue(ctx, token.Value)
	})
}

// RequestConfirmationCode issues a fresh confirmation token and mails it.
func (srv *authService) RequestConfirmationCode(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	account, customer, err := srv.findCustomerByEmail(ctx, email)
	if err != nil {
		return err
	}
	if customer.Confirmed {
		return domainerrors.ErrConflict.WrapMessage("account already confirmed")
	}

	token := newActionToken(customer.ID)
	if err := srv.tokenRepo.Create(ctx, token); err != nil {
		return err
	}

	if err := srv.mailSender.SendConfirmation(ctx, email, account.Name, token.Value); err != nil {
		srv.log(ctx).Error("Failed to send confirmation mail", slog.String("email", email), slog.Any("error", err))

		return domainerrors.ErrMailSendFailed.WrapMessage("confirmation mail rejected")
	}

	return nil
}

// ForgotPassword issues a password reset token and mails it.
func (srv *authService) ForgotPassword(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	account, customer, err := srv.findCustomerByEmail(ctx, email)
	if err != nil {
		return err
	}

	token := newActionToken(customer.ID)
	if err := srv.tokenRepo.Create(ctx, token); err != nil {
		return err
	}

	if err := srv.mailSender.SendPasswordReset(ctx, email, account.Name, token.Value); err != nil {
		srv.log(ctx).Error("Failed to send password reset mail", slog.String("email", email), slog.Any("error", err))

		return domainerrors.ErrMailSendFailed.WrapMessage("password reset mail rejected")
	}

	return nil
}

// ValidateToken reports whether an action token currently exists.
// Expiry is not consulted here; the sweep removes stale rows.
func (srv *authService) ValidateToken(ctx context.Context, tokenValue string) error {
	if _, err := srv.tokenRepo.FindByValue(ctx, tokenValue); err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return domainerrors.ErrTokenNotFound.WrapMessage("unknown token")
		}

		return errors.Wrap(err, "failed to find token")
	}

	return nil
}

// UpdatePasswordWithToken resets the password for the customer holding the token.
func (srv *authService) UpdatePasswordWithToken(ctx context.Context, input *usecase.UpdatePasswordWithTokenInput) error {
	token, err := srv.tokenRepo.FindByValue(ctx, input.Token)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return domainerrors.ErrTokenNotFound.WrapMessage("unknown token")
		}

		return errors.Wrap(err, "failed to find token")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customer, err := repoFactory.NewCustomerRepository().FindByID(ctx, token.CustomerID)
		if err != nil {
			return errors.Wrap(err, "failed to load customer for password reset")
		}

		accountRepo := repoFactory.NewAccountRepository()
		account, err := accountRepo.FindByID(ctx, customer.AccountID)
		if err != nil {
			return errors.Wrap(err, "failed to load account for password reset")
		}

		account.PasswordHash = hashedPassword
		if err := accountRepo.Update(ctx, account); err != nil {
			return err
		}

		// A reset consumes every outstanding token for the customer.
		return repoFactory.NewTokenRepository().DeleteByCustomerID(ctx, customer.ID)
	})
}

// CurrentUser returns the caller's resolved identity projection.
func (srv *authService) CurrentUser(ctx context.Context, identity *entity.Identity) (*entity.Identity, error) {
	if identity == nil || identity.Account == nil {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("missing identity")
	}

	return identity, nil
}

// UpdateProfile updates the caller's own account name and customer fields.
func (srv *authService) UpdateProfile(ctx context.Context, identity *entity.Identity, input *usecase.UpdateProfileInput) error {
	if identity == nil || identity.Account == nil {
		return domainerrors.ErrUnauthenticated.WrapMessage("missing identity")
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		account := identity.Account
		account.Name = input.Name
		if err := repoFactory.NewAccountRepository().Update(ctx, account); err != nil {
			return err
		}

		if identity.Customer == nil {
			return nil
		}

		customer := identity.Customer
		if input.ClientType != "" {
			if !input.ClientType.IsValid() {
				return domainerrors.ErrValidationFailed.WrapMessage("unknown client type")
			}
			customer.ClientType = input.ClientType
		}
		if input.Identification != "" {
			customer.Identification = input.Identification
		}
		if input.Phone != "" {
			customer.Phone = input.Phone
		}
		if input.Address != "" {
			customer.Address = input.Address
		}

		return repoFactory.NewCustomerRepository().Update(ctx, customer)
	})
}

// ValidatePassword checks the caller's current password.
func (srv *authService) ValidatePassword(ctx context.Context, identity *entity.Identity, password string) error {
	if identity == nil || identity.Account == nil {
		return domainerrors.ErrUnauthenticated.WrapMessage("missing identity")
	}

	if !srv.hasher.Check(password, identity.Account.PasswordHash) {
		return domainerrors.ErrInvalidCredentials.WrapMessage("wrong password")
	}

	return nil
}

// UpdateOwnPassword changes the caller's password after verifying the current one.
func (srv *authService) UpdateOwnPassword(ctx context.Context, identity *entity.Identity, input *usecase.UpdateOwnPasswordInput) error {
	if err := srv.ValidatePassword(ctx, identity, input.CurrentPassword); err != nil {
		return err
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	identity.Account.PasswordHash = hashedPassword

	return srv.accountRepo.Update(ctx, identity.Account)
}

// findCustomerByEmail resolves the account + customer pair for mail flows.
func (srv *authService) findCustomerByEmail(ctx context.Context, email string) (*entity.Account, *entity.Customer, error) {
	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, nil, domainerrors.ErrAccountNotFound.WrapMessage("unknown email")
		}

		return nil, nil, errors.Wrap(err, "failed to find account")
	}

	customer, err := srv.customerRepo.FindByAccountID(ctx, account.ID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, nil, domainerrors.ErrCustomerNotFound.WrapMessage("account has no customer profile")
		}

		return nil, nil, errors.Wrap(err, "failed to find customer profile")
	}

	return account, customer, nil
}
