package repository

import (
	"github.com/fadilmartias/resume-builder/internal/model"
	"gorm.io/gorm"
)

type ContactRepository struct {
	*SectionRepository[model.Contact]
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{SectionRepository: NewSectionRepository[model.Contact](db), db: db}
}

// FindTakenField returns the column name of the first value in contact that
// another contact already uses, or "" when all values are free.
func (r *ContactRepository) FindTakenField(contact *model.Contact) (string, error) {
	fields := []struct {
		column string
		value  *string
	}{
		{"phone", contact.Phone},
		{"email", contact.Email},
		{"telegram", contact.Telegram},
		{"sn_profile", contact.SNProfile},
	}

	for _, f := range fields {
		if f.value == nil {
			continue
		}
		var count int64
		err := r.db.Model(&model.Contact{}).
			Where(f.column+" = ? AND id <> ?", *f.value, contact.ID).
			Count(&count).Error
		if err != nil {
			return "", err
		}
		if count > 0 {
			return f.column, nil
		}
	}
	return "", nil
}
