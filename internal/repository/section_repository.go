package repository

import (
	"github.com/fadilmartias/resume-builder/internal/model"
	"gorm.io/gorm"
)

// SectionRepository stores one of the 1:1 resume sections.
type SectionRepository[T model.Section] struct {
	db *gorm.DB
}

func NewSectionRepository[T model.Section](db *gorm.DB) *SectionRepository[T] {
	return &SectionRepository[T]{db}
}

func (r *SectionRepository[T]) FindByResumeID(resumeID uint) (*T, error) {
	var section T
	err := r.db.First(&section, "resume_id = ?", resumeID).Error
	return &section, err
}

func (r *SectionRepository[T]) ExistsForResume(resumeID uint) (bool, error) {
	var count int64
	var section T
	err := r.db.Model(&section).Where("resume_id = ?", resumeID).Count(&count).Error
	return count > 0, err
}

func (r *SectionRepository[T]) Create(section *T) error {
	return r.db.Create(section).Error
}

func (r *SectionRepository[T]) Update(section *T) error {
	return r.db.Save(section).Error
}
