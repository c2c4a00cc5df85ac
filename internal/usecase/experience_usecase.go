package usecase

import (
	"errors"

	"github.com/fadilmartias/resume-builder/internal/model"
	"github.com/fadilmartias/resume-builder/internal/repository"
	"github.com/rs/zerolog/log"
)

type ExperienceUsecase struct {
	sections *SectionUsecase[model.Experience]
	jobRepo  *repository.JobRepository
}

func NewExperienceUsecase(sections *SectionUsecase[model.Experience], jobRepo *repository.JobRepository) *ExperienceUsecase {
	return &ExperienceUsecase{sections: sections, jobRepo: jobRepo}
}

// Ensure returns the experience of the resume, creating it on first use.
func (uc *ExperienceUsecase) Ensure(resumeID uint) (*model.Experience, error) {
	experience, err := uc.sections.Get(resumeID)
	if err == nil {
		return experience, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	experience = &model.Experience{ResumeID: resumeID}
	if err := uc.sections.Create(resumeID, experience); err != nil {
		// lost a race with a concurrent create
		if existing, getErr := uc.sections.Get(resumeID); getErr == nil {
			return existing, nil
		}
		return nil, err
	}
	log.Debug().Uint("resume_id", resumeID).Uint("experience_id", experience.ID).Msg("experience created")
	return experience, nil
}

// Get returns the experience with its jobs, or ErrNotFound.
func (uc *ExperienceUsecase) Get(resumeID uint) (*model.Experience, error) {
	experience, err := uc.sections.Get(resumeID)
	if err != nil {
		return nil, err
	}
	jobs, err := uc.jobRepo.GetJobsByExperience(experience.ID)
	if err != nil {
		return nil, err
	}
	experience.Jobs = jobs
	return experience, nil
}

// GetJob resolves a job under the resume's experience. jobID 0 yields a new,
// unsaved job.
func (uc *ExperienceUsecase) GetJob(resumeID, experienceID, jobID uint) (*model.Job, error) {
	if err := uc.checkExperience(resumeID, experienceID); err != nil {
		return nil, err
	}
	if jobID == 0 {
		return &model.Job{ExperienceID: experienceID}, nil
	}
	job, err := uc.jobRepo.FindJob(experienceID, jobID)
	if err != nil {
		return nil, notFound(err)
	}
	return job, nil
}

func (uc *ExperienceUsecase) SaveJob(job *model.Job) error {
	return uc.jobRepo.SaveJob(job)
}

func (uc *ExperienceUsecase) DeleteJob(resumeID, experienceID, jobID uint) error {
	if err := uc.checkExperience(resumeID, experienceID); err != nil {
		return err
	}
	return notFound(uc.jobRepo.DeleteJob(experienceID, jobID))
}

func (uc *ExperienceUsecase) checkExperience(resumeID, experienceID uint) error {
	experience, err := uc.sections.Get(resumeID)
	if err != nil {
		return err
	}
	if experience.ID != experienceID {
		return ErrNotFound
	}
	return nil
}
