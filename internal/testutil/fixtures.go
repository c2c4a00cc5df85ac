package testutil

import (
	"testing"
	"time"

	"github.com/fadilmartias/resume-builder/internal/model"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func CreateUser(t testing.TB, db *gorm.DB, username string) *model.User {
	t.Helper()
	user := &model.User{Username: username, PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func CreateResume(t testing.TB, db *gorm.DB, userID uint, name string) *model.Resume {
	t.Helper()
	resume := &model.Resume{Name: name, UserID: userID}
	require.NoError(t, db.Create(resume).Error)
	return resume
}

// Date parses a YYYY-MM-DD literal.
func Date(t testing.TB, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func Ptr[T any](v T) *T {
	return &v
}

// CountRows counts the rows of the table behind m.
func CountRows(t testing.TB, db *gorm.DB, m any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(m).Count(&n).Error)
	return n
}
