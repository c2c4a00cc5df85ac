package usecase

import (
	"github.com/fadilmartias/resume-builder/internal/model"
	"github.com/fadilmartias/resume-builder/internal/repository"
)

// SectionUsecase enforces create-before-edit for a 1:1 resume section.
type SectionUsecase[T model.Section] struct {
	repo *repository.SectionRepository[T]
}

func NewSectionUsecase[T model.Section](repo *repository.SectionRepository[T]) *SectionUsecase[T] {
	return &SectionUsecase[T]{repo: repo}
}

func (uc *SectionUsecase[T]) Exists(resumeID uint) (bool, error) {
	return uc.repo.ExistsForResume(resumeID)
}

// Get returns ErrNotFound when the section has not been created yet.
func (uc *SectionUsecase[T]) Get(resumeID uint) (*T, error) {
	section, err := uc.repo.FindByResumeID(resumeID)
	if err != nil {
		return nil, notFound(err)
	}
	return section, nil
}

// Create stores section for resumeID. The caller sets ResumeID on section.
func (uc *SectionUsecase[T]) Create(resumeID uint, section *T) error {
	exists, err := uc.repo.ExistsForResume(resumeID)
	if err != nil {
		return err
	}
	if exists {
		return ErrSectionExists
	}
	return uc.repo.Create(section)
}

func (uc *SectionUsecase[T]) Update(section *T) error {
	return uc.repo.Update(section)
}
