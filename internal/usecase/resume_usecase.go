package usecase

import (
	"github.com/fadilmartias/resume-builder/internal/model"
	"github.com/fadilmartias/resume-builder/internal/repository"
	"github.com/fadilmartias/resume-builder/internal/response"
	"github.com/rs/zerolog/log"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type ResumeUsecase struct {
	resumeRepo   *repository.ResumeRepository
	personalRepo *repository.SectionRepository[model.Personal]
}

func NewResumeUsecase(resumeRepo *repository.ResumeRepository, personalRepo *repository.SectionRepository[model.Personal]) *ResumeUsecase {
	return &ResumeUsecase{resumeRepo: resumeRepo, personalRepo: personalRepo}
}

func (uc *ResumeUsecase) Create(userID uint, name string) (*model.Resume, error) {
	resume := &model.Resume{Name: name, UserID: userID}
	if err := uc.resumeRepo.CreateResume(resume); err != nil {
		return nil, err
	}
	return resume, nil
}

// List returns one page of the user's resumes. page is 1-based; out of range
// values fall back to the defaults.
func (uc *ResumeUsecase) List(userID uint, page, pageSize int) ([]model.Resume, *response.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	offset := (page - 1) * pageSize
	resumes, total, err := uc.resumeRepo.GetResumesByUser(userID, offset, pageSize)
	if err != nil {
		return nil, nil, err
	}
	return resumes, response.NewPagination(page, pageSize, total, len(resumes)), nil
}

// Owned returns the resume when userID owns it and ErrNotFound otherwise.
func (uc *ResumeUsecase) Owned(userID, resumeID uint) (*model.Resume, error) {
	resume, err := uc.resumeRepo.FindOwnedResume(userID, resumeID)
	if err != nil {
		return nil, notFound(err)
	}
	return resume, nil
}

func (uc *ResumeUsecase) Graph(userID, resumeID uint) (*model.Resume, error) {
	resume, err := uc.resumeRepo.FindResumeGraph(userID, resumeID)
	if err != nil {
		return nil, notFound(err)
	}
	return resume, nil
}

// HasPersonal tells the edit_resume entry point which personal flow to open.
func (uc *ResumeUsecase) HasPersonal(resumeID uint) (bool, error) {
	return uc.personalRepo.ExistsForResume(resumeID)
}

func (uc *ResumeUsecase) Delete(userID, resumeID uint) error {
	if err := uc.resumeRepo.DeleteOwnedResume(userID, resumeID); err != nil {
		return notFound(err)
	}
	log.Info().Uint("user_id", userID).Uint("resume_id", resumeID).Msg("resume deleted")
	return nil
}
