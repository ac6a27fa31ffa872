package impl

import (
	"context"
	"testing"
	"time"

	"gatehouse/internal/domain/entity"
	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/domain/repository"
	"gatehouse/internal/infra/auth"
	mockRepo "gatehouse/internal/mocks/repository"
	mockSvc "gatehouse/internal/mocks/service"
	mockUC "gatehouse/internal/mocks/usecase"
	"gatehouse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type sessionServiceFixtures struct {
	service      *sessionService
	sessionRepo  *mockRepo.MockSessionRepository
	users        *mockUC.MockUserUsecase
	tokenService *mockSvc.MockSessionTokenService
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	users := mockUC.NewMockUserUsecase(t)
	tokenService := mockSvc.NewMockSessionTokenService(t)

	svc := NewSessionService(SessionServiceParams{
		SessionRepo:  sessionRepo,
		Users:        users,
		TokenService: tokenService,
		Config:       newTestConfig(time.Hour),
		Logger:       newDiscardLogger(),
	}).(*sessionService)
	svc.now = func() time.Time { return fixedNow }

	return sessionServiceFixtures{
		service:      svc,
		sessionRepo:  sessionRepo,
		users:        users,
		tokenService: tokenService,
	}
}

func TestSessionService_Login_Success(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	user := &entity.User{ID: 1, Username: "annlee"}
	expiresAt := fixedNow.Add(time.Hour)

	fx.users.EXPECT().Authenticate(ctx, "annlee", "Abc12345").Return(true, nil)
	fx.users.EXPECT().CurrentUser(ctx, "annlee").Return(user, nil)

	var issuedID uuid.UUID
	fx.tokenService.EXPECT().Issue(mock.AnythingOfType("uuid.UUID"), expiresAt).
		Run(func(sessionID uuid.UUID, _ time.Time) { issuedID = sessionID }).
		Return("signed-token", nil)
	fx.sessionRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Session")).
		Run(func(_ context.Context, session *entity.Session) {
			assert.Equal(t, issuedID, session.ID)
			assert.Equal(t, "annlee", session.Username)
			assert.Equal(t, expiresAt, session.ExpiresAt)
		}).
		Return(nil)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "annlee", Password: "Abc12345"})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.Token)
	assert.Equal(t, expiresAt, out.ExpiresAt)
	assert.Same(t, user, out.User)
}

func TestSessionService_Login_InvalidCredentials(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.users.EXPECT().Authenticate(ctx, "annlee", "wrong").Return(false, nil)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "annlee", Password: "wrong"})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	fx.sessionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSessionService_Login_StoreError(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	storeErr := domainerrors.NewDatabaseExecuteError(errors.New("timeout"), "")

	fx.users.EXPECT().Authenticate(ctx, "annlee", "Abc12345").Return(false, storeErr)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "annlee", Password: "Abc12345"})

	assert.Nil(t, out)
	assert.True(t, domainerrors.IsStoreError(err))
}

func TestSessionService_Login_SigningFailureLeavesNoRow(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.users.EXPECT().Authenticate(ctx, "annlee", "Abc12345").Return(true, nil)
	fx.users.EXPECT().CurrentUser(ctx, "annlee").Return(&entity.User{ID: 1, Username: "annlee"}, nil)
	fx.tokenService.EXPECT().Issue(mock.Anything, mock.Anything).Return("", errors.New("bad key"))

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "annlee", Password: "Abc12345"})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrSessionCreationFailed)
	fx.sessionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSessionService_Resolve(t *testing.T) {
	sessionID := uuid.New()

	tests := []struct {
		name      string
		token     string
		setup     func(fx sessionServiceFixtures)
		want      string
		wantErr   error
		wantStore bool
	}{
		{
			name:    "empty token",
			token:   "",
			setup:   func(sessionServiceFixtures) {},
			wantErr: domainerrors.ErrSessionInvalid,
		},
		{
			name:  "tampered token",
			token: "tampered",
			setup: func(fx sessionServiceFixtures) {
				fx.tokenService.EXPECT().Parse("tampered").Return(uuid.Nil, errors.New("signature is invalid"))
			},
			wantErr: domainerrors.ErrSessionInvalid,
		},
		{
			name:  "session gone",
			token: "t",
			setup: func(fx sessionServiceFixtures) {
				fx.tokenService.EXPECT().Parse("t").Return(sessionID, nil)
				fx.sessionRepo.EXPECT().FindByID(mock.Anything, sessionID).Return(nil, repository.ErrSessionNotFound)
			},
			wantErr: domainerrors.ErrSessionInvalid,
		},
		{
			name:  "session expired",
			token: "t",
			setup: func(fx sessionServiceFixtures) {
				fx.tokenService.EXPECT().Parse("t").Return(sessionID, nil)
				fx.sessionRepo.EXPECT().FindByID(mock.Anything, sessionID).Return(nil, repository.ErrSessionExpired)
			},
			wantErr: domainerrors.ErrSessionInvalid,
		},
		{
			name:  "store failure",
			token: "t",
			setup: func(fx sessionServiceFixtures) {
				fx.tokenService.EXPECT().Parse("t").Return(sessionID, nil)
				fx.sessionRepo.EXPECT().FindByID(mock.Anything, sessionID).
					Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("timeout"), ""))
			},
			wantStore: true,
		},
		{
			name:  "live session",
			token: "t",
			setup: func(fx sessionServiceFixtures) {
				fx.tokenService.EXPECT().Parse("t").Return(sessionID, nil)
				fx.sessionRepo.EXPECT().FindByID(mock.Anything, sessionID).
					Return(&entity.Session{ID: sessionID, Username: "annlee", ExpiresAt: fixedNow.Add(time.Hour)}, nil)
			},
			want: "annlee",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSessionService(t)
			tt.setup(fx)

			username, err := fx.service.Resolve(context.Background(), tt.token)

			assert.Equal(t, tt.want, username)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantStore:
				assert.True(t, domainerrors.IsStoreError(err))
				assert.NotErrorIs(t, err, domainerrors.ErrSessionInvalid)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestSessionService_Logout(t *testing.T) {
	t.Run("deletes the referenced session", func(t *testing.T) {
		fx := createTestSessionService(t)
		sessionID := uuid.New()
		fx.tokenService.EXPECT().Parse("t").Return(sessionID, nil)
		fx.sessionRepo.EXPECT().DeleteByID(mock.Anything, sessionID).Return(nil)

		assert.NoError(t, fx.service.Logout(context.Background(), "t"))
	})

	t.Run("unparseable token is a no-op", func(t *testing.T) {
		fx := createTestSessionService(t)
		fx.tokenService.EXPECT().Parse("junk").Return(uuid.Nil, errors.New("malformed"))

		assert.NoError(t, fx.service.Logout(context.Background(), "junk"))
		fx.sessionRepo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
	})

	t.Run("store failure", func(t *testing.T) {
		fx := createTestSessionService(t)
		sessionID := uuid.New()
		fx.tokenService.EXPECT().Parse("t").Return(sessionID, nil)
		fx.sessionRepo.EXPECT().DeleteByID(mock.Anything, sessionID).
			Return(domainerrors.NewDatabaseExecuteError(errors.New("timeout"), ""))

		assert.True(t, domainerrors.IsStoreError(fx.service.Logout(context.Background(), "t")))
	})
}

func TestSessionService_CleanupExpiredSessions(t *testing.T) {
	fx := createTestSessionService(t)
	fx.sessionRepo.EXPECT().DeleteExpired(mock.Anything, fixedNow).Return(int64(4), nil)

	deleted, err := fx.service.CleanupExpiredSessions(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(4), deleted)
}

func TestScenario_LoginResolveLogout(t *testing.T) {
	ctx := context.Background()
	// Token expiry is checked against the wall clock.
	now := time.Now()
	clock := func() time.Time { return now }

	userSvc, _ := newScenarioUserService(t)
	_, err := userSvc.RegisterUser(ctx, &usecase.RegisterUserInput{
		FirstName: "Ann", Surname: "Lee", Username: "annlee", Password: "Abc12345", ConfirmPassword: "Abc12345",
	})
	require.NoError(t, err)

	cfg := newTestConfig(time.Hour)
	tokens, err := auth.NewJWTSessionTokenService(cfg)
	require.NoError(t, err)

	sessions := newMemSessionStore(clock)
	svc := NewSessionService(SessionServiceParams{
		SessionRepo:  sessions,
		Users:        userSvc,
		TokenService: tokens,
		Config:       cfg,
		Logger:       newDiscardLogger(),
	}).(*sessionService)
	svc.now = clock

	_, err = svc.Login(ctx, &usecase.LoginInput{Username: "annlee", Password: "wrong"})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Zero(t, sessions.count())

	out, err := svc.Login(ctx, &usecase.LoginInput{Username: "annlee", Password: "Abc12345"})
	require.NoError(t, err)
	assert.Equal(t, 1, sessions.count())

	username, err := svc.Resolve(ctx, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "annlee", username)

	require.NoError(t, svc.Logout(ctx, out.Token))
	assert.Zero(t, sessions.count())

	_, err = svc.Resolve(ctx, out.Token)
	assert.ErrorIs(t, err, domainerrors.ErrSessionInvalid)

	require.NoError(t, svc.Logout(ctx, out.Token), "logging out twice is fine")
}
