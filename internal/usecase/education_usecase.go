package usecase

import (
	"errors"

	"github.com/fadilmartias/resume-builder/internal/model"
	"github.com/fadilmartias/resume-builder/internal/repository"
	"github.com/rs/zerolog/log"
)

type EducationUsecase struct {
	sections   *SectionUsecase[model.Education]
	schoolRepo *repository.SchoolRepository
}

func NewEducationUsecase(sections *SectionUsecase[model.Education], schoolRepo *repository.SchoolRepository) *EducationUsecase {
	return &EducationUsecase{sections: sections, schoolRepo: schoolRepo}
}

// Ensure returns the education of the resume, creating it on first use.
func (uc *EducationUsecase) Ensure(resumeID uint) (*model.Education, error) {
	education, err := uc.sections.Get(resumeID)
	if err == nil {
		return education, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	education = &model.Education{ResumeID: resumeID}
	if err := uc.sections.Create(resumeID, education); err != nil {
		if existing, getErr := uc.sections.Get(resumeID); getErr == nil {
			return existing, nil
		}
		return nil, err
	}
	log.Debug().Uint("resume_id", resumeID).Uint("education_id", education.ID).Msg("education created")
	return education, nil
}

// Get returns the education with its schools, or ErrNotFound.
func (uc *EducationUsecase) Get(resumeID uint) (*model.Education, error) {
	education, err := uc.sections.Get(resumeID)
	if err != nil {
		return nil, err
	}
	schools, err := uc.schoolRepo.GetSchoolsByEducation(education.ID)
	if err != nil {
		return nil, err
	}
	education.Schools = schools
	return education, nil
}

// GetSchool resolves a school under the resume's education. schoolID 0
// yields a new, unsaved school.
func (uc *EducationUsecase) GetSchool(resumeID, educationID, schoolID uint) (*model.School, error) {
	if err := uc.checkEducation(resumeID, educationID); err != nil {
		return nil, err
	}
	if schoolID == 0 {
		return &model.School{EducationID: educationID}, nil
	}
	school, err := uc.schoolRepo.FindSchool(educationID, schoolID)
	if err != nil {
		return nil, notFound(err)
	}
	return school, nil
}

func (uc *EducationUsecase) SaveSchool(school *model.School) error {
	return uc.schoolRepo.SaveSchool(school)
}

func (uc *EducationUsecase) DeleteSchool(resumeID, educationID, schoolID uint) error {
	if err := uc.checkEducation(resumeID, educationID); err != nil {
		return err
	}
	return notFound(uc.schoolRepo.DeleteSchool(educationID, schoolID))
}

func (uc *EducationUsecase) checkEducation(resumeID, educationID uint) error {
	education, err := uc.sections.Get(resumeID)
	if err != nil {
		return err
	}
	if education.ID != educationID {
		return ErrNotFound
	}
	return nil
}
