package repository

import (
	"errors"
	"testing"

	"github.com/fadilmartias/resume-builder/internal/model"
	"github.com/fadilmartias/resume-builder/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSectionRepository(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewSectionRepository[model.Personal](db)
	user := testutil.CreateUser(t, db, "alice")
	resume := testutil.CreateResume(t, db, user.ID, "cv")

	exists, err := repo.ExistsForResume(resume.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repo.FindByResumeID(resume.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	personal := &model.Personal{Surname: "Doe", Name: "John", Gender: model.GenderMale, ResumeID: resume.ID}
	require.NoError(t, repo.Create(personal))

	exists, err = repo.ExistsForResume(resume.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	personal.Location = "Berlin"
	require.NoError(t, repo.Update(personal))

	found, err := repo.FindByResumeID(resume.ID)
	require.NoError(t, err)
	assert.Equal(t, "Berlin", found.Location)

	// one section per resume
	err = repo.Create(&model.Personal{Surname: "A", Name: "B", Gender: model.GenderMale, ResumeID: resume.ID})
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}

func TestCheckConstraintRejectsUnknownGender(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewSectionRepository[model.Personal](db)
	user := testutil.CreateUser(t, db, "alice")
	resume := testutil.CreateResume(t, db, user.ID, "cv")

	err := repo.Create(&model.Personal{Surname: "Doe", Name: "John", Gender: "other", ResumeID: resume.ID})
	assert.Error(t, err)
}
