package repository

import (
	"testing"

	"github.com/fadilmartias/resume-builder/internal/model"
	"github.com/fadilmartias/resume-builder/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindTakenField(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewContactRepository(db)
	user := testutil.CreateUser(t, db, "alice")
	first := testutil.CreateResume(t, db, user.ID, "a")
	second := testutil.CreateResume(t, db, user.ID, "b")

	existing := &model.Contact{Email: testutil.Ptr("a@example.com"), Telegram: testutil.Ptr("@alice"), ResumeID: first.ID}
	require.NoError(t, repo.Create(existing))

	field, err := repo.FindTakenField(&model.Contact{Telegram: testutil.Ptr("@alice"), ResumeID: second.ID})
	require.NoError(t, err)
	assert.Equal(t, "telegram", field)

	// a contact never collides with itself
	field, err = repo.FindTakenField(existing)
	require.NoError(t, err)
	assert.Empty(t, field)

	// NULL values are never compared
	require.NoError(t, repo.Create(&model.Contact{Phone: testutil.Ptr("+100"), ResumeID: second.ID}))
	assert.EqualValues(t, 2, testutil.CountRows(t, db, &model.Contact{}))
}
