package usecase

import (
	"errors"
	"testing"

	"github.com/fadilmartias/resume-builder/internal/repository"
	"github.com/fadilmartias/resume-builder/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLoginRegistersUnknownUser(t *testing.T) {
	db := testutil.NewDB(t)
	uc := NewAuthUsecase(repository.NewUserRepository(db)).WithCost(bcrypt.MinCost)

	user, created, err := uc.Login("alice", "secret")
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "secret", user.PasswordHash)

	again, created, err := uc.Login("alice", "secret")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, user.ID, again.ID)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	db := testutil.NewDB(t)
	uc := NewAuthUsecase(repository.NewUserRepository(db)).WithCost(bcrypt.MinCost)

	_, _, err := uc.Login("alice", "secret")
	require.NoError(t, err)

	_, _, err = uc.Login("alice", "wrong")
	assert.True(t, errors.Is(err, ErrInvalidPassword))
}

func TestGetUser(t *testing.T) {
	db := testutil.NewDB(t)
	uc := NewAuthUsecase(repository.NewUserRepository(db))
	user := testutil.CreateUser(t, db, "alice")

	found, err := uc.GetUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", found.Username)

	_, err = uc.GetUser(user.ID + 1)
	assert.True(t, errors.Is(err, ErrNotFound))
}
