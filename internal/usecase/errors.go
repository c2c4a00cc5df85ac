package usecase

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrSectionExists    = errors.New("section already exists")
	ErrReviewerDisabled = errors.New("resume review is not configured")
)

// DuplicateContactError reports a contact value that belongs to another
// resume.
type DuplicateContactError struct {
	Field string
}

func (e *DuplicateContactError) Error() string {
	return fmt.Sprintf("%s is already used by another resume", e.Field)
}

// notFound maps gorm's missing-row error onto ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
