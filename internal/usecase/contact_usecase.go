package usecase

import (
	"errors"

	"github.com/fadilmartias/resume-builder/internal/model"
	"github.com/fadilmartias/resume-builder/internal/repository"
	"gorm.io/gorm"
)

type ContactUsecase struct {
	*SectionUsecase[model.Contact]
	repo *repository.ContactRepository
}

func NewContactUsecase(repo *repository.ContactRepository) *ContactUsecase {
	return &ContactUsecase{
		SectionUsecase: NewSectionUsecase(repo.SectionRepository),
		repo:           repo,
	}
}

func (uc *ContactUsecase) Create(resumeID uint, contact *model.Contact) error {
	contact.ResumeID = resumeID
	if err := uc.checkTaken(contact); err != nil {
		return err
	}
	return duplicateContact(uc.SectionUsecase.Create(resumeID, contact))
}

func (uc *ContactUsecase) Update(contact *model.Contact) error {
	if err := uc.checkTaken(contact); err != nil {
		return err
	}
	return duplicateContact(uc.SectionUsecase.Update(contact))
}

func (uc *ContactUsecase) checkTaken(contact *model.Contact) error {
	field, err := uc.repo.FindTakenField(contact)
	if err != nil {
		return err
	}
	if field != "" {
		return &DuplicateContactError{Field: field}
	}
	return nil
}

// duplicateContact covers the race where another request stored the same
// value between the check and the write.
func duplicateContact(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &DuplicateContactError{Field: "contact"}
	}
	return err
}
