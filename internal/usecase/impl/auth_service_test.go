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
	mockSvc "tienda/internal/mocks/service"
	"tienda/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	accountRepo  *mockRepo.MockAccountRepository
	customerRepo *mockRepo.MockCustomerRepository
	agentRepo    *mockRepo.MockDeliveryAgentRepository
	tokenRepo    *mockRepo.MockTokenRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	mailSender   *mockSvc.MockMailSender
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	agentRepo := mockRepo.NewMockDeliveryAgentRepository(t)
	tokenRepo := mockRepo.NewMockTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	mailSender := mockSvc.NewMockMailSender(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		AccountRepo:  accountRepo,
		CustomerRepo: customerRepo,
		AgentRepo:    agentRepo,
		TokenRepo:    tokenRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		MailSender:   mailSender,
		Logger:       logger,
	})

	return authServiceFixtures{
		service:      service,
		txManager:    txManager,
		accountRepo:  accountRepo,
		customerRepo: customerRepo,
		agentRepo:    agentRepo,
		tokenRepo:    tokenRepo,
		hasher:       hasher,
		tokenService: tokenService,
		mailSender:   mailSender,
	}
}

func TestAuthService_RegisterCustomer_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterCustomerInput{
		Name:           "Test Customer",
		Email:          "Test@Example.com",
		Password:       "Password123!",
		ClientType:     entity.ClientTypeNatural,
		Identification: "1092837465",
		Phone:          "3001112233",
		Address:        "Calle 1 #2-3",
	}

	fx.accountRepo.EXPECT().
		FindByEmail(ctx, "test@example.com").
		Return(nil, repository.ErrAccountNotFound)

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
			mockTokenRepo := mockRepo.NewMockTokenRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(mockAccountRepo)
			mockFactory.EXPECT().NewCustomerRepository().Return(mockCustomerRepo)
			mockFactory.EXPECT().NewTokenRepository().Return(mockTokenRepo)

			mockAccountRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Account")).
				Run(func(ctx context.Context, account *entity.Account) {
					assert.Equal(t, "test@example.com", account.Email)
					assert.Equal(t, entity.RoleCustomer, account.Role)
					assert.Equal(t, "hashed_password", account.PasswordHash)
					account.ID = 7
				}).
				Return(nil)

			mockCustomerRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Customer")).
				Run(func(ctx context.Context, customer *entity.Customer) {
					assert.Equal(t, int64(7), customer.AccountID)
					assert.False(t, customer.Confirmed)
					customer.ID = 11
				}).
				Return(nil)

			mockTokenRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Token")).
				Run(func(ctx context.Context, token *entity.Token) {
					assert.Equal(t, int64(11), token.CustomerID)
					assert.NotEmpty(t, token.Value)
					assert.True(t, token.ExpiresAt.After(token.CreatedAt))
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.mailSender.EXPECT().
		SendConfirmation(ctx, "test@example.com", "Test Customer", mock.AnythingOfType("string")).
		Return(nil)

	output, err := fx.service.RegisterCustomer(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, int64(11), output.Customer.ID)
	assert.Equal(t, "test@example.com", output.Customer.Account.Email)
}

func TestAuthService_RegisterCustomer_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.accountRepo.EXPECT().
		FindByEmail(ctx, "taken@example.com").
		Return(&entity.Account{ID: 1, Email: "taken@example.com"}, nil)

	output, err := fx.service.RegisterCustomer(ctx, &usecase.RegisterCustomerInput{
		Email:    "taken@example.com",
		Password: "Password123!",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyExists)
}

func TestAuthService_RegisterCustomer_MailFailureDoesNotFail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.accountRepo.EXPECT().
		FindByEmail(ctx, "quiet@example.com").
		Return(nil, repository.ErrAccountNotFound)
	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
			mockTokenRepo := mockRepo.NewMockTokenRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(mockAccountRepo)
			mockFactory.EXPECT().NewCustomerRepository().Return(mockCustomerRepo)
			mockFactory.EXPECT().NewTokenRepository().Return(mockTokenRepo)
			mockAccountRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
			mockCustomerRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
			mockTokenRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	// The committed registration survives a rejected mail.
	fx.mailSender.EXPECT().
		SendConfirmation(ctx, "quiet@example.com", mock.Anything, mock.Anything).
		Return(errors.New("smtp relay down"))

	output, err := fx.service.RegisterCustomer(ctx, &usecase.RegisterCustomerInput{
		Email:    "quiet@example.com",
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.NotNil(t, output)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := &entity.Account{ID: 3, Email: "user@example.com", PasswordHash: "hashed"}

	fx.accountRepo.EXPECT().FindByEmail(ctx, "user@example.com").Return(account, nil)
	fx.hasher.EXPECT().Check("nope", "hashed").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "user@example.com", Password: "nope"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.accountRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrAccountNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "x"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnconfirmedCustomerGetsNewToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := &entity.Account{ID: 4, Email: "new@example.com", Name: "New", PasswordHash: "hashed"}
	customer := &entity.Customer{ID: 9, AccountID: 4, Confirmed: false}

	fx.accountRepo.EXPECT().FindByEmail(ctx, "new@example.com").Return(account, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed").Return(true)
	fx.customerRepo.EXPECT().FindByAccountID(ctx, int64(4)).Return(customer, nil)
	fx.agentRepo.EXPECT().FindByAccountID(ctx, int64(4)).Return(nil, repository.ErrDeliveryAgentNotFound)

	fx.tokenRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Token")).
		Run(func(ctx context.Context, token *entity.Token) {
			assert.Equal(t, int64(9), token.CustomerID)
		}).
		Return(nil)
	fx.mailSender.EXPECT().
		SendConfirmation(ctx, "new@example.com", "New", mock.AnythingOfType("string")).
		Return(nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "new@example.com", Password: "Password123!"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotConfirmed)
}

func TestAuthService_Login_InactiveAgentRejected(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := &entity.Account{ID: 6, Email: "agent@example.com", PasswordHash: "hashed"}
	agent := &entity.DeliveryAgent{ID: 2, AccountID: 6, Status: entity.AgentStatusInactive}

	fx.accountRepo.EXPECT().FindByEmail(ctx, "agent@example.com").Return(account, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed").Return(true)
	fx.customerRepo.EXPECT().FindByAccountID(ctx, int64(6)).Return(nil, repository.ErrCustomerNotFound)
	fx.agentRepo.EXPECT().FindByAccountID(ctx, int64(6)).Return(agent, nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "agent@example.com", Password: "Password123!"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAgentInactive)
}

func TestAuthService_Login_AdminSuccess(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := &entity.Account{ID: 1, Email: "admin@example.com", PasswordHash: "hashed", Role: entity.RoleAdmin}

	fx.accountRepo.EXPECT().FindByEmail(ctx, "admin@example.com").Return(account, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed").Return(true)
	fx.customerRepo.EXPECT().FindByAccountID(ctx, int64(1)).Return(nil, repository.ErrCustomerNotFound)
	fx.agentRepo.EXPECT().FindByAccountID(ctx, int64(1)).Return(nil, repository.ErrDeliveryAgentNotFound)
	fx.tokenService.EXPECT().GenerateAccessToken(int64(1), "admin").Return("signed.jwt", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "admin@example.com", Password: "Password123!"})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed.jwt", output.AccessToken)
	assert.True(t, output.Identity.IsAdmin())
}

func TestAuthService_ValidateToken_ExistenceOnly(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.tokenRepo.EXPECT().
		FindByValue(ctx, "known").
		Return(&entity.Token{ID: 1, Value: "known"}, nil)

	require.NoError(t, fx.service.ValidateToken(ctx, "known"))

	fx.tokenRepo.EXPECT().
		FindByValue(ctx, "unknown").
		Return(nil, repository.ErrTokenNotFound)

	err := fx.service.ValidateToken(ctx, "unknown")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenNotFound)
}

func TestAuthService_ConfirmAccount_ConsumesToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	token := &entity.Token{ID: 1, Value: "abc", CustomerID: 5}

	fx.tokenRepo.EXPECT().FindByValue(ctx, "abc").Return(token, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
			mockTokenRepo := mockRepo.NewMockTokenRepository(t)

			mockFactory.EXPECT().NewCustomerRepository().Return(mockCustomerRepo)
			mockFactory.EXPECT().NewTokenRepository().Return(mockTokenRepo)

			mockCustomerRepo.EXPECT().
				FindByID(ctx, int64(5)).
				Return(&entity.Customer{ID: 5, Confirmed: false}, nil)
			mockCustomerRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Customer")).
				Run(func(ctx context.Context, customer *entity.Customer) {
					assert.True(t, customer.Confirmed)
				}).
				Return(nil)
			mockTokenRepo.EXPECT().DeleteByValue(ctx, "abc").Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	require.NoError(t, fx.service.ConfirmAccount(ctx, "abc"))
}

func TestAuthService_ResolveIdentity_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)

	fx.tokenService.EXPECT().ValidateToken("garbage").Return(nil, errors.New("bad signature"))

	identity, err := fx.service.ResolveIdentity(context.Background(), "garbage")

	require.Error(t, err)
	assert.Nil(t, identity)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}
