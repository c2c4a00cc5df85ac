package repository

import (
	"github.com/fadilmartias/resume-builder/internal/model"
	"gorm.io/gorm"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db}
}

func (r *JobRepository) GetJobsByExperience(experienceID uint) ([]model.Job, error) {
	var jobs []model.Job
	err := r.db.Where("experience_id = ?", experienceID).Order("start DESC").Order("id").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepository) FindJob(experienceID, jobID uint) (*model.Job, error) {
	var j model.Job
	err := r.db.First(&j, "id = ? AND experience_id = ?", jobID, experienceID).Error
	return &j, err
}

func (r *JobRepository) SaveJob(job *model.Job) error {
	return r.db.Save(job).Error
}

// DeleteJob reports gorm.ErrRecordNotFound when nothing matched.
func (r *JobRepository) DeleteJob(experienceID, jobID uint) error {
	res := r.db.Where("id = ? AND experience_id = ?", jobID, experienceID).Delete(&model.Job{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
