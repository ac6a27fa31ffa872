package postgres

import (
	"context"
	"time"

	"gatehouse/internal/domain/entity"
	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/domain/repository"
	"gatehouse/internal/infra/persistence/model"
	"gatehouse/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sessionRepository implements the domain.SessionRepository interface using GORM.
type sessionRepository struct {
	q   *query.Query
	now func() time.Time
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{
		q:   query.Use(db),
		now: time.Now,
	}
}

// Create persists a new session row. The ID must already be set.
func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	sessionM := fromSessionDomain(session)

	if err := repo.q.SessionModel.WithContext(ctx).Create(sessionM); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}

	session.CreatedAt = sessionM.CreatedAt

	return nil
}

// FindByID returns the session only while it is live. Rows past their expiry are reported as
// ErrSessionExpired and left for the cleanup job.
func (repo *sessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	sessionM, err := repo.q.SessionModel.WithContext(ctx).
		Where(repo.q.SessionModel.ID.Eq(id)).
		Take()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find session by id")
	}

	session := toSessionDomain(sessionM)
	if session.Expired(repo.now()) {
		return nil, repository.ErrSessionExpired
	}

	return session, nil
}

// DeleteByID removes a session; a missing row is not an error.
func (repo *sessionRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	_, err := repo.q.SessionModel.WithContext(ctx).
		Where(repo.q.SessionModel.ID.Eq(id)).
		Delete()
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete session")
	}

	return nil
}

// DeleteExpired removes every session that expired at or before the given instant.
func (repo *sessionRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	result, err := repo.q.SessionModel.WithContext(ctx).
		Where(repo.q.SessionModel.ExpiresAt.Lte(before)).
		Delete()
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to delete expired sessions")
	}

	return result.RowsAffected, nil
}

func toSessionDomain(data *model.SessionModel) *entity.Session {
	return &entity.Session{
		ID:        data.ID,
		Username:  data.Username,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

func fromSessionDomain(data *entity.Session) *model.SessionModel {
	return &model.SessionModel{
		ID:        data.ID,
		Username:  data.Username,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}
