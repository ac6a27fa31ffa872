package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"gatehouse/config"
	"gatehouse/internal/domain/entity"
	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/domain/repository"
	"gatehouse/internal/domain/validation"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(ttl time.Duration) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4},
		Session: &config.SessionConfig{
			Secret:     "test-secret",
			CookieName: "session",
			TTL:        ttl,
		},
	}
}

func validErrors() validation.Errors {
	return validation.NewErrors(validation.RegistrationFields...)
}

// memUserStore is an in-memory users table with the same unique index on username.
type memUserStore struct {
	mu      sync.Mutex
	nextID  int64
	byName  map[string]*entity.User
	inserts int
}

func newMemUserStore() *memUserStore {
	return &memUserStore{byName: make(map[string]*entity.User)}
}

func (s *memUserStore) FindByID(_ context.Context, id int64) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.byName {
		if user.ID == id {
			clone := *user

			return &clone, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (s *memUserStore) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byName[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *user

	return &clone, nil
}

func (s *memUserStore) Create(_ context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byName[user.Username]; exists {
		return domainerrors.ErrUserAlreadyExists.WrapMessage("username already exists")
	}

	s.nextID++
	s.inserts++
	user.ID = s.nextID
	user.CreatedAt = time.Now()
	clone := *user
	s.byName[user.Username] = &clone

	return nil
}

// memSessionStore is an in-memory sessions table.
type memSessionStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]entity.Session
	now      func() time.Time
}

func newMemSessionStore(now func() time.Time) *memSessionStore {
	return &memSessionStore{sessions: make(map[uuid.UUID]entity.Session), now: now}
}

func (s *memSessionStore) Create(_ context.Context, session *entity.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session.CreatedAt = s.now()
	s.sessions[session.ID] = *session

	return nil
}

func (s *memSessionStore) FindByID(_ context.Context, id uuid.UUID) (*entity.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}
	if session.Expired(s.now()) {
		return nil, repository.ErrSessionExpired
	}

	return &session, nil
}

func (s *memSessionStore) DeleteByID(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)

	return nil
}

func (s *memSessionStore) DeleteExpired(_ context.Context, before time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var deleted int64
	for id, session := range s.sessions {
		if !session.ExpiresAt.After(before) {
			delete(s.sessions, id)
			deleted++
		}
	}

	return deleted, nil
}

func (s *memSessionStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sessions)
}

// memTxManager runs the callback directly against the in-memory stores.
type memTxManager struct {
	users    *memUserStore
	sessions *memSessionStore
}

func (m *memTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m)
}

func (m *memTxManager) UserRepo() repository.UserRepository {
	return m.users
}

func (m *memTxManager) SessionRepo() repository.SessionRepository {
	return m.sessions
}
