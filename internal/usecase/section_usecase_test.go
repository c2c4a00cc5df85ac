package usecase

import (
	"errors"
	"testing"

	"github.com/fadilmartias/resume-builder/internal/model"
	"github.com/fadilmartias/resume-builder/internal/repository"
	"github.com/fadilmartias/resume-builder/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionUsecaseCreateBeforeEdit(t *testing.T) {
	db := testutil.NewDB(t)
	uc := NewSectionUsecase(repository.NewSectionRepository[model.Specialization](db))
	user := testutil.CreateUser(t, db, "alice")
	resume := testutil.CreateResume(t, db, user.ID, "cv")

	_, err := uc.Get(resume.ID)
	assert.True(t, errors.Is(err, ErrNotFound))

	spec := &model.Specialization{
		Readiness: model.ReadinessLooking, Salary: 10, Specialization: model.SpecializationAI,
		Grade: model.GradeLead, Skills: "ml", ResumeID: resume.ID,
	}
	require.NoError(t, uc.Create(resume.ID, spec))

	dup := *spec
	dup.ID = 0
	assert.True(t, errors.Is(uc.Create(resume.ID, &dup), ErrSectionExists))

	spec.Salary = 20
	require.NoError(t, uc.Update(spec))
	found, err := uc.Get(resume.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, found.Salary)
}
