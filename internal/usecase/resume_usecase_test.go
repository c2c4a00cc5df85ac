package usecase

import (
	"errors"
	"testing"

	"github.com/fadilmartias/resume-builder/internal/model"
	"github.com/fadilmartias/resume-builder/internal/repository"
	"github.com/fadilmartias/resume-builder/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newResumeUsecase(db *gorm.DB) *ResumeUsecase {
	return NewResumeUsecase(
		repository.NewResumeRepository(db),
		repository.NewSectionRepository[model.Personal](db),
	)
}

func TestResumeListClampsPaging(t *testing.T) {
	db := testutil.NewDB(t)
	uc := newResumeUsecase(db)
	user := testutil.CreateUser(t, db, "alice")
	for i := 0; i < 3; i++ {
		_, err := uc.Create(user.ID, "cv")
		require.NoError(t, err)
	}

	resumes, pagination, err := uc.List(user.ID, 0, 0)
	require.NoError(t, err)
	assert.Len(t, resumes, 3)
	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, DefaultPageSize, pagination.PageSize)
	assert.False(t, pagination.HasMore)

	_, pagination, err = uc.List(user.ID, 1, 1000)
	require.NoError(t, err)
	assert.Equal(t, MaxPageSize, pagination.PageSize)

	resumes, pagination, err = uc.List(user.ID, 2, 2)
	require.NoError(t, err)
	assert.Len(t, resumes, 1)
	assert.Equal(t, 3, pagination.From)
	assert.EqualValues(t, 2, pagination.TotalPages)
}

func TestResumeOwnershipAndDelete(t *testing.T) {
	db := testutil.NewDB(t)
	uc := newResumeUsecase(db)
	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")

	resume, err := uc.Create(alice.ID, "cv")
	require.NoError(t, err)

	_, err = uc.Owned(bob.ID, resume.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(uc.Delete(bob.ID, resume.ID), ErrNotFound))

	hasPersonal, err := uc.HasPersonal(resume.ID)
	require.NoError(t, err)
	assert.False(t, hasPersonal)

	require.NoError(t, uc.Delete(alice.ID, resume.ID))
	_, err = uc.Graph(alice.ID, resume.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}
