// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	deliverycontext "mart/internal/delivery/context"
	"mart/internal/domain/entity"
	domainerrors "mart/internal/domain/errors"
	"mart/internal/domain/repository"
	"mart/internal/domain/service"
	"mart/internal/errors"
	"mart/internal/usecase"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// JoinUser registers a user together with the empty cart it shops with.
func (srv *authService) JoinUser(ctx context.Context, input *usecase.JoinUserInput) (*usecase.JoinUserOutput, error) {
	user, err := entity.NewUser(input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}
	user = user.WithCredential(hashedPassword)

	var joined *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, err := userRepo.FindByEmail(ctx, user.Email())
		if err == nil {
			return domainerrors.ErrDuplicatedEmail
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email availability")
		}

		joined, err = userRepo.Create(ctx, user)
		if err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		if _, err := repoFactory.CartRepo().Create(ctx, entity.NewCart(0, joined.ID())); err != nil {
			return errors.Wrap(err, "failed to create cart for user")
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrDuplicatedEmail) {
			srv.log(ctx).Warn("Registration rejected, email already registered", slog.String("email", user.Email()))
		} else {
			srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", user.Email()), slog.Any("error", err))
		}

		return nil, err
	}

	srv.log(ctx).Info("User joined", slog.Int64("userID", joined.ID()))

	return &usecase.JoinUserOutput{UserID: joined.ID(), Email: joined.Email()}, nil
}

// Authenticate verifies the credentials and issues an access token.
func (srv *authService) Authenticate(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login attempt for unknown email", slog.String("email", input.Email))

			return nil, domainerrors.ErrEmailNotFound
		}

		return nil, errors.Wrap(err, "failed to find user for login")
	}

	if err := user.AssertPassword(input.Password, srv.hasher); err != nil {
		srv.log(ctx).Warn("Login attempt with wrong password", slog.Int64("userID", user.ID()))

		return nil, err
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(user.ID())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Debug("User authenticated", slog.Int64("userID", user.ID()))

	return &usecase.TokenOutput{AccessToken: accessToken}, nil
}
