package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mart/internal/domain/entity"
	domainerrors "mart/internal/domain/errors"
	"mart/internal/domain/repository"
	"mart/internal/errors"
	mockRepo "mart/internal/mocks/repository"
	mockSvc "mart/internal/mocks/service"
	"mart/internal/usecase"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	fixtures := authServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
	}
	fixtures.service = NewAuthService(AuthServiceParams{
		TxManager:    fixtures.txManager,
		UserRepo:     fixtures.userRepo,
		Hasher:       fixtures.hasher,
		TokenService: fixtures.tokenService,
		Logger:       newDiscardLogger(),
	})

	return fixtures
}

func TestAuthService_JoinUser_Success(t *testing.T) {
	fx := createTestAuthService(t)
	repos := newTxRepos(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash(testPassword).Return(testHash, nil)
	expectTransaction(fx.txManager, repos)
	repos.userRepo.EXPECT().FindByEmail(ctx, testEmail).Return(nil, repository.ErrUserNotFound)
	repos.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.ID() == 0 && u.Email() == testEmail && u.Password() == testHash
		})).
		RunAndReturn(func(_ context.Context, u *entity.User) (*entity.User, error) {
			return u.WithID(testUserID), nil
		})
	repos.cartRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(c *entity.Cart) bool {
			return c.UserID() == testUserID && c.Len() == 0
		})).
		Return(entity.NewCart(1, testUserID), nil)

	output, err := fx.service.JoinUser(ctx, &usecase.JoinUserInput{Email: testEmail, Password: testPassword})

	require.NoError(t, err)
	assert.Equal(t, &usecase.JoinUserOutput{UserID: testUserID, Email: testEmail}, output)
}

func TestAuthService_JoinUser_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		want     error
	}{
		{name: "invalid email", email: "hello", password: testPassword, want: domainerrors.ErrInvalidEmail},
		{name: "short password", email: testEmail, password: "hi!", want: domainerrors.ErrInvalidPassword},
		{name: "no special character", email: testEmail, password: "hello1234", want: domainerrors.ErrInvalidPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)

			_, err := fx.service.JoinUser(context.Background(), &usecase.JoinUserInput{Email: tt.email, Password: tt.password})

			assert.True(t, errors.Is(err, tt.want))
		})
	}
}

func TestAuthService_JoinUser_DuplicatedEmail(t *testing.T) {
	fx := createTestAuthService(t)
	repos := newTxRepos(t)
	ctx := context.Background()

	existing, err := entity.RestoreUser(testUserID, testEmail, testHash)
	require.NoError(t, err)

	fx.hasher.EXPECT().Hash(testPassword).Return(testHash, nil)
	expectTransaction(fx.txManager, repos)
	repos.userRepo.EXPECT().FindByEmail(ctx, testEmail).Return(existing, nil)

	_, err = fx.service.JoinUser(ctx, &usecase.JoinUserInput{Email: testEmail, Password: testPassword})

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "AUTH-404", appErr.ErrorCode())
}

func TestAuthService_JoinUser_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)
	errHash := errors.New("hash failed")

	fx.hasher.EXPECT().Hash(testPassword).Return("", errHash)

	_, err := fx.service.JoinUser(context.Background(), &usecase.JoinUserInput{Email: testEmail, Password: testPassword})

	assert.True(t, errors.Is(err, errHash))
}

func TestAuthService_JoinUser_CartCreationFailure(t *testing.T) {
	fx := createTestAuthService(t)
	repos := newTxRepos(t)
	ctx := context.Background()
	errDB := errors.New("connection reset")

	fx.hasher.EXPECT().Hash(testPassword).Return(testHash, nil)
	expectTransaction(fx.txManager, repos)
	repos.userRepo.EXPECT().FindByEmail(ctx, testEmail).Return(nil, repository.ErrUserNotFound)
	repos.userRepo.EXPECT().Create(ctx, mock.Anything).RunAndReturn(func(_ context.Context, u *entity.User) (*entity.User, error) {
		return u.WithID(testUserID), nil
	})
	repos.cartRepo.EXPECT().Create(ctx, mock.Anything).Return(nil, errDB)

	_, err := fx.service.JoinUser(ctx, &usecase.JoinUserInput{Email: testEmail, Password: testPassword})

	assert.True(t, errors.Is(err, errDB))
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user, err := entity.RestoreUser(testUserID, testEmail, testHash)
	require.NoError(t, err)

	fx.userRepo.EXPECT().FindByEmail(ctx, testEmail).Return(user, nil)
	fx.hasher.EXPECT().Check(testPassword, testHash).Return(true)
	fx.tokenService.EXPECT().GenerateAccessToken(testUserID).Return("access-token", nil)

	output, err := fx.service.Authenticate(ctx, &usecase.LoginInput{Email: testEmail, Password: testPassword})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
}

func TestAuthService_Authenticate_EmailNotFound(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, testEmail).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Authenticate(ctx, &usecase.LoginInput{Email: testEmail, Password: testPassword})

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "AUTH-405", appErr.ErrorCode())
}

func TestAuthService_Authenticate_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user, err := entity.RestoreUser(testUserID, testEmail, testHash)
	require.NoError(t, err)

	fx.userRepo.EXPECT().FindByEmail(ctx, testEmail).Return(user, nil)
	fx.hasher.EXPECT().Check("hello!124", testHash).Return(false)

	_, err = fx.service.Authenticate(ctx, &usecase.LoginInput{Email: testEmail, Password: "hello!124"})

	assert.True(t, errors.Is(err, domainerrors.ErrLoginFailed))
}

func TestAuthService_Authenticate_TokenFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	errSign := errors.New("sign failed")

	user, err := entity.RestoreUser(testUserID, testEmail, testHash)
	require.NoError(t, err)

	fx.userRepo.EXPECT().FindByEmail(ctx, testEmail).Return(user, nil)
	fx.hasher.EXPECT().Check(testPassword, testHash).Return(true)
	fx.tokenService.EXPECT().GenerateAccessToken(testUserID).Return("", errSign)

	_, err = fx.service.Authenticate(ctx, &usecase.LoginInput{Email: testEmail, Password: testPassword})

	assert.True(t, errors.Is(err, errSign))
}
