package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/fadilmartias/resume-builder/internal/model"
	"github.com/fadilmartias/resume-builder/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReviewer struct {
	got string
	err error
}

func (r *stubReviewer) Name() string { return "stub" }

func (r *stubReviewer) Review(_ context.Context, text string) (string, error) {
	r.got = text
	return "looks good", r.err
}

func TestRenderResume(t *testing.T) {
	finish := testutil.Date(t, "2022-01-01")
	resume := &model.Resume{
		Name: "Backend",
		Personal: &model.Personal{
			Surname: "Doe", Name: "Jane", Gender: model.GenderFemale, Location: "Berlin",
		},
		Specialization: &model.Specialization{
			Readiness: model.ReadinessConsider, Salary: 5000, Specialization: model.SpecializationDevelopment,
			Grade: model.GradeSenior, Skills: "Go, SQL", RemoteReady: true,
		},
		Experience: &model.Experience{Jobs: []model.Job{
			{Name: "Acme", Position: "Engineer", Specialization: model.SpecializationDevelopment, Grade: model.GradeMiddle,
				Start: testutil.Date(t, "2019-01-01"), Finish: &finish},
			{Name: "Globex", Specialization: model.SpecializationDevelopment, Grade: model.GradeSenior,
				Start: testutil.Date(t, "2022-02-01")},
		}},
		Contact: &model.Contact{Email: testutil.Ptr("jane@example.com")},
	}

	text := RenderResume(resume)
	assert.Contains(t, text, "Resume: Backend")
	assert.Contains(t, text, "Name: Doe Jane")
	assert.Contains(t, text, "Readiness: open to offers")
	assert.Contains(t, text, "Remote work: yes")
	assert.Contains(t, text, "- Acme (2019-01-01 to 2022-01-01)")
	assert.Contains(t, text, "- Globex (2022-02-01 to present)")
	assert.Contains(t, text, "Email: jane@example.com")
	assert.NotContains(t, text, "## Education")
	assert.NotContains(t, text, "Phone:")
}

func TestReviewUsecase(t *testing.T) {
	db := testutil.NewDB(t)
	resumes := newResumeUsecase(db)
	user := testutil.CreateUser(t, db, "alice")
	resume := testutil.CreateResume(t, db, user.ID, "cv")
	ctx := context.Background()

	_, err := NewReviewUsecase(resumes, nil).Review(ctx, user.ID, resume.ID)
	assert.True(t, errors.Is(err, ErrReviewerDisabled))

	reviewer := &stubReviewer{}
	uc := NewReviewUsecase(resumes, reviewer)
	assert.True(t, uc.Enabled())

	result, err := uc.Review(ctx, user.ID, resume.ID)
	require.NoError(t, err)
	assert.Equal(t, "stub", result.Provider)
	assert.Equal(t, "looks good", result.Feedback)
	assert.Contains(t, reviewer.got, "Resume: cv")

	_, err = uc.Review(ctx, user.ID+1, resume.ID)
	assert.True(t, errors.Is(err, ErrNotFound))

	reviewer.err = errors.New("quota")
	_, err = uc.Review(ctx, user.ID, resume.ID)
	assert.ErrorContains(t, err, "quota")
}
