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

func TestContactUniqueness(t *testing.T) {
	db := testutil.NewDB(t)
	uc := NewContactUsecase(repository.NewContactRepository(db))
	user := testutil.CreateUser(t, db, "alice")
	first := testutil.CreateResume(t, db, user.ID, "a")
	second := testutil.CreateResume(t, db, user.ID, "b")

	require.NoError(t, uc.Create(first.ID, &model.Contact{Email: testutil.Ptr("a@example.com")}))
	// empty values are NULL and never collide
	require.NoError(t, uc.Create(second.ID, &model.Contact{Phone: testutil.Ptr("+1")}))

	contact, err := uc.Get(second.ID)
	require.NoError(t, err)
	contact.Email = testutil.Ptr("a@example.com")

	err = uc.Update(contact)
	var duplicate *DuplicateContactError
	require.True(t, errors.As(err, &duplicate))
	assert.Equal(t, "email", duplicate.Field)

	contact.Email = testutil.Ptr("b@example.com")
	require.NoError(t, uc.Update(contact))

	// saving unchanged values is not a conflict with itself
	require.NoError(t, uc.Update(contact))
}
