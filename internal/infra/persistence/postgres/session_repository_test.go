package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"gatehouse/internal/domain/entity"
	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sessionColumns = []string{"id", "username", "expires_at", "created_at"}

const (
	insertSession        = `INSERT INTO "sessions" \("id","username","expires_at","created_at"\) VALUES \(\$1,\$2,\$3,\$4\)`
	selectSessionByID    = `SELECT \* FROM "sessions" WHERE "sessions"."id" = \$1`
	deleteSessionByID    = `DELETE FROM "sessions" WHERE "sessions"."id" = \$1`
	deleteExpiredSession = `DELETE FROM "sessions" WHERE "sessions"."expires_at" <= \$1`
)

func newTestSessionRepository(t *testing.T, now time.Time) (*sessionRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock := newMockDB(t)
	repo := NewSessionRepository(db).(*sessionRepository)
	repo.now = func() time.Time { return now }

	return repo, mock
}

func TestSessionRepository_Create(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	repo, mock := newTestSessionRepository(t, now)
	id := uuid.New()

	mock.ExpectExec(insertSession).
		WithArgs(id, "annlee", now.Add(time.Hour), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	session := &entity.Session{ID: id, Username: "annlee", ExpiresAt: now.Add(time.Hour)}
	err := repo.Create(context.Background(), session)

	require.NoError(t, err)
	assert.False(t, session.CreatedAt.IsZero())
}

func TestSessionRepository_Create_StoreError(t *testing.T) {
	repo, mock := newTestSessionRepository(t, time.Now())

	mock.ExpectExec(insertSession).WillReturnError(errors.New("disk full"))

	err := repo.Create(context.Background(), &entity.Session{ID: uuid.New(), Username: "annlee", ExpiresAt: time.Now()})

	require.Error(t, err)
	assert.True(t, domainerrors.IsStoreError(err))
}

func TestSessionRepository_FindByID(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	id := uuid.New()

	tests := []struct {
		name      string
		rows      *sqlmock.Rows
		queryErr  error
		wantErr   error
		wantStore bool
	}{
		{
			name: "live session",
			rows: sqlmock.NewRows(sessionColumns).AddRow(id.String(), "annlee", now.Add(time.Minute), now.Add(-time.Hour)),
		},
		{
			name:    "missing",
			rows:    sqlmock.NewRows(sessionColumns),
			wantErr: repository.ErrSessionNotFound,
		},
		{
			name:    "expired",
			rows:    sqlmock.NewRows(sessionColumns).AddRow(id.String(), "annlee", now.Add(-time.Second), now.Add(-time.Hour)),
			wantErr: repository.ErrSessionExpired,
		},
		{
			name:    "expires exactly now",
			rows:    sqlmock.NewRows(sessionColumns).AddRow(id.String(), "annlee", now, now.Add(-time.Hour)),
			wantErr: repository.ErrSessionExpired,
		},
		{
			name:      "store error",
			queryErr:  errors.New("timeout"),
			wantStore: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestSessionRepository(t, now)

			expect := mock.ExpectQuery(selectSessionByID)
			if tt.queryErr != nil {
				expect.WillReturnError(tt.queryErr)
			} else {
				expect.WillReturnRows(tt.rows)
			}

			session, err := repo.FindByID(context.Background(), id)

			switch {
			case tt.wantErr != nil:
				assert.Nil(t, session)
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantStore:
				assert.Nil(t, session)
				assert.True(t, domainerrors.IsStoreError(err))
			default:
				require.NoError(t, err)
				assert.Equal(t, id, session.ID)
				assert.Equal(t, "annlee", session.Username)
			}
		})
	}
}

func TestSessionRepository_DeleteByID(t *testing.T) {
	repo, mock := newTestSessionRepository(t, time.Now())
	id := uuid.New()

	mock.ExpectExec(deleteSessionByID).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.DeleteByID(context.Background(), id))
}

func TestSessionRepository_DeleteExpired(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	repo, mock := newTestSessionRepository(t, now)

	mock.ExpectExec(deleteExpiredSession).WithArgs(now).WillReturnResult(sqlmock.NewResult(0, 3))

	deleted, err := repo.DeleteExpired(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
}

func TestSessionRepository_DeleteExpired_StoreError(t *testing.T) {
	repo, mock := newTestSessionRepository(t, time.Now())

	mock.ExpectExec(deleteExpiredSession).WillReturnError(errors.New("timeout"))

	deleted, err := repo.DeleteExpired(context.Background(), time.Now())

	require.Error(t, err)
	assert.Zero(t, deleted)
	assert.True(t, domainerrors.IsStoreError(err))
}
