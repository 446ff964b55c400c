// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"scout/internal/domain/entity"
	domainerrors "scout/internal/domain/errors"
	"scout/internal/domain/repository"
	"scout/internal/domain/service"
	"scout/internal/usecase"

	deliverycontext "scout/internal/delivery/context"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// minimumAge is the registration age gate.
const minimumAge = 18

// accountService implements the AccountUsecase interface.
type accountService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		tokenSvc: params.TokenService,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to
// the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete registration process. Validation and
// the age gate run before any store mutation, so a rejected registration
// leaves no partial state.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) error {
	if input == nil || input.Email == "" || input.Password == "" || input.Age == 0 {
		return domainerrors.ErrMissingFields
	}
	if input.Age < minimumAge {
		srv.log(ctx).Warn("Registration rejected by age gate", slog.String("email", input.Email))

		return domainerrors.ErrUnderage
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Email:        input.Email,
		PasswordHash: hashedPassword,
		AgeConfirmed: true,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return domainerrors.ErrEmailTaken
		}

		return errors.Wrap(err, "failed to create user during registration")
	}

	srv.log(ctx).Info("Registration completed", slog.Any("userID", newUser.ID))

	return nil
}

// Login verifies the credentials and issues a session token for the
// account's ID.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrNoUser
		}

		return nil, errors.Wrap(err, "failed to look up user during login")
	}

	match, err := srv.hasher.Check(input.Password, user.PasswordHash)
	if err != nil {
		srv.log(ctx).Error("Stored password hash is malformed", slog.Any("userID", user.ID))

		return nil, errors.Wrap(err, "failed to verify password during login")
	}
	if !match {
		srv.log(ctx).Warn("Password mismatch during login", slog.String("email", input.Email))

		return nil, domainerrors.ErrWrongPassword
	}

	token, err := srv.tokenSvc.Issue(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Debug("Login completed", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{Token: token}, nil
}
