// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "gatehouse/internal/delivery/context"
	"gatehouse/internal/domain/entity"
	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/domain/repository"
	"gatehouse/internal/domain/service"
	"gatehouse/internal/domain/validation"
	"gatehouse/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	validator service.CredentialValidator
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Validator service.CredentialValidator
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		validator: params.Validator,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *userService) ValidateRegistration(ctx context.Context, input *usecase.RegisterUserInput) (validation.Errors, error) {
	errs, err := srv.validator.ValidateRegistration(ctx, service.RegistrationForm{
		FirstName:       input.FirstName,
		Surname:         input.Surname,
		Username:        input.Username,
		Password:        input.Password,
		ConfirmPassword: input.ConfirmPassword,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to validate registration")
	}

	return errs, nil
}

// RegisterUser orchestrates the complete user registration process.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username))

	errs, err := srv.ValidateRegistration(ctx, input)
	if err != nil {
		return nil, err
	}
	if !errs.Valid() {
		srv.log(ctx).Info("Registration rejected", slog.String("username", input.Username), slog.Any("errors", errs.Messages()))

		return &usecase.RegisterOutput{Errors: errs}, nil
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	user := &entity.User{
		FirstName:    input.FirstName,
		Surname:      input.Surname,
		Username:     input.Username,
		PasswordHash: hash,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().Create(ctx, user)
	})
	if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
		// Lost a race with a concurrent registration; the unique index decided.
		errs.Add(validation.FieldUsername, validation.KindDuplicateUsername, validation.MsgDuplicateUsername)
		srv.log(ctx).Info("Registration rejected by unique index", slog.String("username", input.Username))

		return &usecase.RegisterOutput{Errors: errs}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered", slog.Int64("user_id", user.ID), slog.String("username", user.Username))

	return &usecase.RegisterOutput{User: user}, nil
}

func (srv *userService) Authenticate(ctx context.Context, username, password string) (bool, error) {
	user, err := srv.userRepo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Debug("Authentication failed", slog.String("username", username))

		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to find user")
	}

	ok := srv.hasher.Check(password, user.PasswordHash)
	if !ok {
		srv.log(ctx).Debug("Authentication failed", slog.String("username", username))
	}

	return ok, nil
}

func (srv *userService) CurrentUser(ctx context.Context, username string) (*entity.User, error) {
	if username == "" {
		return nil, nil
	}

	user, err := srv.userRepo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find current user")
	}

	return user, nil
}

func (srv *userService) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}
