// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "travelapp/internal/delivery/context"
	"travelapp/internal/domain/entity"
	domainerrors "travelapp/internal/domain/errors"
	"travelapp/internal/domain/repository"
	"travelapp/internal/domain/service"
	"travelapp/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
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

// Register creates a new account and issues a session token for it.
// The email existence check runs before the password match check, so a taken
// email is reported even when the confirmation is also wrong.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		srv.log(ctx).Warn("Registration with taken email", slog.String("email", input.Email))

		return nil, domainerrors.NewAuthentication("Email in use")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check email availability")
	}

	if input.PasswordConfirm != input.Password {
		return nil, domainerrors.NewAuthentication("Passwords must match")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	user := &entity.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hash,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		// The unique index closes the window between the check above and the
		// insert; a concurrent duplicate surfaces as the same taxonomy error.
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, domainerrors.NewAuthentication("Email in use")
		}

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	token, err := srv.tokenService.Generate(user.ID, user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Info("User registered", slog.String("userID", user.ID.Hex()))

	return &usecase.AuthOutput{User: user, Token: token}, nil
}

// Login verifies credentials and issues a session token. Unknown emails and
// wrong passwords are indistinguishable to the client.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.NewAuthentication("Invalid credentials")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	if !srv.hasher.Check(input.Password, user.Password) {
		srv.log(ctx).Warn("Failed login attempt", slog.String("email", input.Email))

		return nil, domainerrors.NewAuthentication("Invalid credentials")
	}

	token, err := srv.tokenService.Generate(user.ID, user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Debug("User logged in", slog.String("userID", user.ID.Hex()))

	return &usecase.AuthOutput{User: user, Token: token}, nil
}
