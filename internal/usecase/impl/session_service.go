package impl

import (
	"context"
	"log/slog"
	"time"

	"gatehouse/config"
	deliverycontext "gatehouse/internal/delivery/context"
	"gatehouse/internal/domain/entity"
	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/domain/repository"
	"gatehouse/internal/domain/service"
	"gatehouse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	sessionRepo  repository.SessionRepository
	users        usecase.UserUsecase
	tokenService service.SessionTokenService
	ttl          time.Duration
	now          func() time.Time
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	SessionRepo  repository.SessionRepository
	Users        usecase.UserUsecase
	TokenService service.SessionTokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		sessionRepo:  params.SessionRepo,
		users:        params.Users,
		tokenService: params.TokenService,
		ttl:          params.Config.Session.TTL,
		now:          time.Now,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	ok, err := srv.users.Authenticate(ctx, input.Username, input.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		srv.log(ctx).Info("Login failed", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials
	}

	user, err := srv.users.CurrentUser(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Removed between the password check and now.
		return nil, domainerrors.ErrInvalidCredentials
	}

	session := &entity.Session{
		ID:        uuid.New(),
		Username:  user.Username,
		ExpiresAt: srv.now().Add(srv.ttl),
	}

	// Sign before persisting so a signing failure leaves no orphan row.
	token, err := srv.tokenService.Issue(session.ID, session.ExpiresAt)
	if err != nil {
		return nil, domainerrors.ErrSessionCreationFailed.WrapMessage(err.Error())
	}

	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	srv.log(ctx).Info("User logged in",
		slog.String("username", user.Username),
		slog.String("session_id", session.ID.String()),
	)

	return &usecase.LoginOutput{
		Token:     token,
		ExpiresAt: session.ExpiresAt,
		User:      user,
	}, nil
}

// Resolve returns ErrSessionInvalid for anything the client could have caused (bad signature,
// unknown or expired session). Store failures are returned as they are.
func (srv *sessionService) Resolve(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", domainerrors.ErrSessionInvalid
	}

	sessionID, err := srv.tokenService.Parse(token)
	if err != nil {
		srv.log(ctx).Debug("Rejected session token", slog.Any("error", err))

		return "", domainerrors.ErrSessionInvalid
	}

	session, err := srv.sessionRepo.FindByID(ctx, sessionID)
	if errors.Is(err, repository.ErrSessionNotFound) || errors.Is(err, repository.ErrSessionExpired) {
		srv.log(ctx).Debug("Session no longer valid", slog.String("session_id", sessionID.String()), slog.Any("error", err))

		return "", domainerrors.ErrSessionInvalid
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to load session")
	}

	return session.Username, nil
}

func (srv *sessionService) Logout(ctx context.Context, token string) error {
	sessionID, err := srv.tokenService.Parse(token)
	if err != nil {
		// Nothing server-side to end.
		return nil
	}

	if err := srv.sessionRepo.DeleteByID(ctx, sessionID); err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	srv.log(ctx).Info("User logged out", slog.String("session_id", sessionID.String()))

	return nil
}

func (srv *sessionService) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	deleted, err := srv.sessionRepo.DeleteExpired(ctx, srv.now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete expired sessions")
	}

	if deleted > 0 {
		srv.log(ctx).Info("Cleaned up expired sessions", slog.Int64("count", deleted))
	}

	return deleted, nil
}
