package repository

import (
	"github.com/fadilmartias/resume-builder/internal/model"
	"gorm.io/gorm"
)

type SchoolRepository struct {
	db *gorm.DB
}

func NewSchoolRepository(db *gorm.DB) *SchoolRepository {
	return &SchoolRepository{db}
}

func (r *SchoolRepository) GetSchoolsByEducation(educationID uint) ([]model.School, error) {
	var schools []model.School
	err := r.db.Where("education_id = ?", educationID).Order("start DESC").Order("id").Find(&schools).Error
	return schools, err
}

func (r *SchoolRepository) FindSchool(educationID, schoolID uint) (*model.School, error) {
	var s model.School
	err := r.db.First(&s, "id = ? AND education_id = ?", schoolID, educationID).Error
	return &s, err
}

func (r *SchoolRepository) SaveSchool(school *model.School) error {
	return r.db.Save(school).Error
}

func (r *SchoolRepository) DeleteSchool(educationID, schoolID uint) error {
	res := r.db.Where("id = ? AND education_id = ?", schoolID, educationID).Delete(&model.School{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
