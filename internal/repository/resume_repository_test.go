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

func TestGetResumesByUserPagesNewestFirst(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewResumeRepository(db)

	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	for _, name := range []string{"first", "second", "third"} {
		require.NoError(t, repo.CreateResume(&model.Resume{Name: name, UserID: alice.ID}))
	}
	testutil.CreateResume(t, db, bob.ID, "not alice's")

	resumes, total, err := repo.GetResumesByUser(alice.ID, 0, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, resumes, 2)
	assert.Equal(t, "third", resumes[0].Name)
	assert.Equal(t, "second", resumes[1].Name)

	resumes, _, err = repo.GetResumesByUser(alice.ID, 2, 2)
	require.NoError(t, err)
	require.Len(t, resumes, 1)
	assert.Equal(t, "first", resumes[0].Name)
}

func TestFindOwnedResumeRejectsOtherUsers(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewResumeRepository(db)

	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	resume := testutil.CreateResume(t, db, alice.ID, "cv")

	found, err := repo.FindOwnedResume(alice.ID, resume.ID)
	require.NoError(t, err)
	assert.Equal(t, "cv", found.Name)

	_, err = repo.FindOwnedResume(bob.ID, resume.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func seedFullResume(t *testing.T, db *gorm.DB, userID uint, email string) *model.Resume {
	t.Helper()
	resume := testutil.CreateResume(t, db, userID, "full")

	require.NoError(t, db.Create(&model.Personal{
		Surname: "Doe", Name: "Jane", Gender: model.GenderFemale, ResumeID: resume.ID,
	}).Error)
	require.NoError(t, db.Create(&model.Specialization{
		Readiness: model.ReadinessConsider, Salary: 1000, Specialization: model.SpecializationDevelopment,
		Grade: model.GradeMiddle, Skills: "go", ResumeID: resume.ID,
	}).Error)

	experience := &model.Experience{ResumeID: resume.ID}
	require.NoError(t, db.Create(experience).Error)
	require.NoError(t, db.Create(&model.Job{
		Name: "Older", Specialization: model.SpecializationTesting, Grade: model.GradeJunior,
		Start: testutil.Date(t, "2018-01-01"), ExperienceID: experience.ID,
	}).Error)
	require.NoError(t, db.Create(&model.Job{
		Name: "Newer", Specialization: model.SpecializationDevelopment, Grade: model.GradeMiddle,
		Start: testutil.Date(t, "2021-03-01"), ExperienceID: experience.ID,
	}).Error)

	education := &model.Education{ResumeID: resume.ID}
	require.NoError(t, db.Create(education).Error)
	require.NoError(t, db.Create(&model.School{
		Name: "MSU", Course: "CS", Start: testutil.Date(t, "2012-09-01"),
		Finish: testutil.Date(t, "2016-06-30"), EducationID: education.ID,
	}).Error)

	require.NoError(t, db.Create(&model.Contact{
		Email: testutil.Ptr(email), ResumeID: resume.ID,
	}).Error)
	return resume
}

func TestFindResumeGraphPreloadsEverything(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewResumeRepository(db)
	user := testutil.CreateUser(t, db, "alice")
	resume := seedFullResume(t, db, user.ID, "jane@example.com")

	graph, err := repo.FindResumeGraph(user.ID, resume.ID)
	require.NoError(t, err)

	require.NotNil(t, graph.Personal)
	assert.Equal(t, "Doe Jane", graph.Personal.String())
	require.NotNil(t, graph.Specialization)
	require.NotNil(t, graph.Experience)
	require.Len(t, graph.Experience.Jobs, 2)
	assert.Equal(t, "Newer", graph.Experience.Jobs[0].Name)
	require.NotNil(t, graph.Education)
	assert.Equal(t, "MSU", graph.Education.String())
	require.NotNil(t, graph.Contact)
	assert.Equal(t, "jane@example.com", graph.Contact.String())
}

func TestDeleteOwnedResumeCascades(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewResumeRepository(db)
	user := testutil.CreateUser(t, db, "alice")
	resume := seedFullResume(t, db, user.ID, "jane@example.com")
	seedFullResume(t, db, user.ID, "other@example.com")

	require.NoError(t, repo.DeleteOwnedResume(user.ID, resume.ID))

	for _, m := range []any{
		&model.Resume{}, &model.Personal{}, &model.Specialization{}, &model.Experience{},
		&model.Education{}, &model.Contact{},
	} {
		assert.EqualValues(t, 1, testutil.CountRows(t, db, m), "%T", m)
	}
	assert.EqualValues(t, 2, testutil.CountRows(t, db, &model.Job{}))
	assert.EqualValues(t, 1, testutil.CountRows(t, db, &model.School{}))
}

func TestDeleteOwnedResumeIgnoresOtherUsers(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewResumeRepository(db)
	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	resume := testutil.CreateResume(t, db, alice.ID, "cv")

	err := repo.DeleteOwnedResume(bob.ID, resume.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	assert.EqualValues(t, 1, testutil.CountRows(t, db, &model.Resume{}))
}
