package repository

import (
	"github.com/fadilmartias/resume-builder/internal/model"
	"gorm.io/gorm"
)

type ResumeRepository struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) *ResumeRepository {
	return &ResumeRepository{db}
}

func (r *ResumeRepository) CreateResume(resume *model.Resume) error {
	return r.db.Create(resume).Error
}

// GetResumesByUser returns one page of the user's resumes, newest first, and
// the total count.
func (r *ResumeRepository) GetResumesByUser(userID uint, offset, limit int) ([]model.Resume, int64, error) {
	var (
		resumes []model.Resume
		total   int64
	)

	if err := r.db.Model(&model.Resume{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&resumes).Error
	return resumes, total, err
}

// FindOwnedResume returns the resume only when userID owns it.
func (r *ResumeRepository) FindOwnedResume(userID, resumeID uint) (*model.Resume, error) {
	var resume model.Resume
	err := r.db.First(&resume, "id = ? AND user_id = ?", resumeID, userID).Error
	return &resume, err
}

// FindResumeGraph loads the resume with every section, job and school.
func (r *ResumeRepository) FindResumeGraph(userID, resumeID uint) (*model.Resume, error) {
	var resume model.Resume
	err := r.db.
		Preload("Personal").
		Preload("Specialization").
		Preload("Experience.Jobs", func(db *gorm.DB) *gorm.DB { return db.Order("start DESC") }).
		Preload("Education.Schools", func(db *gorm.DB) *gorm.DB { return db.Order("start DESC") }).
		Preload("Contact").
		First(&resume, "id = ? AND user_id = ?", resumeID, userID).Error
	return &resume, err
}

// DeleteOwnedResume removes the resume and everything under it in one
// transaction. Children are deleted explicitly so the cascade does not
// depend on the driver enforcing foreign keys.
func (r *ResumeRepository) DeleteOwnedResume(userID, resumeID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var resume model.Resume
		if err := tx.First(&resume, "id = ? AND user_id = ?", resumeID, userID).Error; err != nil {
			return err
		}

		experiences := tx.Model(&model.Experience{}).Select("id").Where("resume_id = ?", resume.ID)
		if err := tx.Where("experience_id IN (?)", experiences).Delete(&model.Job{}).Error; err != nil {
			return err
		}
		educations := tx.Model(&model.Education{}).Select("id").Where("resume_id = ?", resume.ID)
		if err := tx.Where("education_id IN (?)", educations).Delete(&model.School{}).Error; err != nil {
			return err
		}

		sections := []any{
			&model.Personal{},
			&model.Specialization{},
			&model.Experience{},
			&model.Education{},
			&model.Contact{},
		}
		for _, section := range sections {
			if err := tx.Where("resume_id = ?", resume.ID).Delete(section).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&resume).Error
	})
}
