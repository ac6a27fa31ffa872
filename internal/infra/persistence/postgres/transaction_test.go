package postgres

import (
	"context"
	"errors"
	"testing"

	"gatehouse/internal/domain/entity"
	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_Commit(t *testing.T) {
	db, mock := newMockDB(t)
	txManager := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectQuery(insertUser).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	user := &entity.User{FirstName: "Ann", Surname: "Lee", Username: "annlee", PasswordHash: []byte("hash")}
	err := txManager.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		return factory.UserRepo().Create(context.Background(), user)
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
}

func TestTransactionManager_RollbackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	txManager := NewTransactionManager(db)
	businessErr := errors.New("business rule failed")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := txManager.Execute(context.Background(), func(repository.RepositoryFactory) error {
		return businessErr
	})

	assert.ErrorIs(t, err, businessErr)
}

func TestTransactionManager_RollbackOnPanic(t *testing.T) {
	db, mock := newMockDB(t)
	txManager := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.PanicsWithValue(t, "boom", func() {
		_ = txManager.Execute(context.Background(), func(repository.RepositoryFactory) error {
			panic("boom")
		})
	})
}

func TestTransactionManager_BeginFailure(t *testing.T) {
	db, mock := newMockDB(t)
	txManager := NewTransactionManager(db)

	mock.ExpectBegin().WillReturnError(errors.New("no connections"))

	called := false
	err := txManager.Execute(context.Background(), func(repository.RepositoryFactory) error {
		called = true

		return nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTransactionFailed)
	assert.Contains(t, err.Error(), "no connections")
	assert.False(t, called)
}

func TestTransactionManager_CommitFailure(t *testing.T) {
	db, mock := newMockDB(t)
	txManager := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("connection reset"))

	err := txManager.Execute(context.Background(), func(repository.RepositoryFactory) error {
		return nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTransactionFailed)
	assert.Contains(t, err.Error(), "connection reset")
}
