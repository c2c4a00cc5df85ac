package handler

import (
	"errors"
	"fmt"

	"github.com/fadilmartias/resume-builder/internal/dto"
	"github.com/fadilmartias/resume-builder/internal/middleware"
	"github.com/fadilmartias/resume-builder/internal/usecase"
	"github.com/gofiber/fiber/v2"
)

type ExperienceHandler struct {
	uc *usecase.ExperienceUsecase
}

func NewExperienceHandler(uc *usecase.ExperienceUsecase) *ExperienceHandler {
	return &ExperienceHandler{uc: uc}
}

func (h *ExperienceHandler) RegisterRoutes(app fiber.Router, g Guard) {
	getPost(app, "/resumes/:resume_id/create_experience/", g.Login, g.Resume, h.Create)
	getPost(app, "/resumes/:resume_id/edit_experience/", g.Login, g.Resume, h.Edit)
	getPost(app, "/resumes/:resume_id/edit_experience/:experience_id/create_job/", g.Login, g.Resume, h.CreateJob)
	app.Get("/resumes/:resume_id/edit_experience/:experience_id/edit_job/:job_id/", g.Login, g.Resume, h.EditJobPage)
	app.Post("/resumes/:resume_id/edit_experience/:experience_id/edit_job/:job_id/", g.Login, g.Resume, h.EditJob)
	getPost(app, "/resumes/:resume_id/edit_experience/:experience_id/delete_job/:job_id/", g.Login, g.Resume, h.DeleteJob)
}

func (h *ExperienceHandler) Create(c *fiber.Ctx) error {
	resumeID := middleware.CurrentResume(c).ID
	if _, err := h.uc.Ensure(resumeID); err != nil {
		return fail(c, err, "failed to create experience")
	}
	return redirect(c, resumePath(resumeID, "edit_experience"))
}

func (h *ExperienceHandler) Edit(c *fiber.Ctx) error {
	resumeID := middleware.CurrentResume(c).ID
	experience, err := h.uc.Get(resumeID)
	if errors.Is(err, usecase.ErrNotFound) {
		return redirect(c, resumePath(resumeID, "create_experience"))
	}
	if err != nil {
		return fail(c, err, "failed to load experience")
	}

	jobs := make([]fiber.Map, 0, len(experience.Jobs))
	for _, job := range experience.Jobs {
		jobs = append(jobs, fiber.Map{"id": job.ID, "name": job.Name})
	}
	return success(c, "Success get experience", fiber.Map{
		"resume_id":     resumeID,
		"experience_id": experience.ID,
		"jobs":          jobs,
	})
}

func (h *ExperienceHandler) CreateJob(c *fiber.Ctx) error {
	experienceID, ok := paramID(c, "experience_id")
	if !ok {
		return notFound(c, "experience not found")
	}
	return redirect(c, jobPath(middleware.CurrentResume(c).ID, experienceID, 0))
}

func (h *ExperienceHandler) EditJobPage(c *fiber.Ctx) error {
	resumeID := middleware.CurrentResume(c).ID
	experienceID, ok := paramID(c, "experience_id")
	if !ok {
		return notFound(c, "experience not found")
	}
	jobID, ok := paramID(c, "job_id")
	if !ok {
		return notFound(c, "job not found")
	}

	job, err := h.uc.GetJob(resumeID, experienceID, jobID)
	if err != nil {
		return fail(c, err, "job not found")
	}
	return success(c, "Success get job", fiber.Map{
		"resume_id":     resumeID,
		"experience_id": experienceID,
		"job_id":        job.ID,
		"form":          dto.JobFormFrom(job),
		"choices":       jobChoices,
	})
}

func (h *ExperienceHandler) EditJob(c *fiber.Ctx) error {
	resumeID := middleware.CurrentResume(c).ID
	experienceID, ok := paramID(c, "experience_id")
	if !ok {
		return notFound(c, "experience not found")
	}
	jobID, ok := paramID(c, "job_id")
	if !ok {
		return notFound(c, "job not found")
	}

	job, err := h.uc.GetJob(resumeID, experienceID, jobID)
	if err != nil {
		return fail(c, err, "job not found")
	}

	var form dto.JobForm
	if ok, err := bindForm(c, &form); !ok {
		return err
	}
	if err := form.Apply(job); err != nil {
		return fail(c, err, "failed to read job form")
	}
	if err := h.uc.SaveJob(job); err != nil {
		return fail(c, err, "failed to save job")
	}
	return redirect(c, resumePath(resumeID, "edit_experience"))
}

func (h *ExperienceHandler) DeleteJob(c *fiber.Ctx) error {
	resumeID := middleware.CurrentResume(c).ID
	experienceID, ok := paramID(c, "experience_id")
	if !ok {
		return notFound(c, "experience not found")
	}
	jobID, ok := paramID(c, "job_id")
	if !ok {
		return notFound(c, "job not found")
	}

	if err := h.uc.DeleteJob(resumeID, experienceID, jobID); err != nil {
		return fail(c, err, "job not found")
	}
	return redirect(c, resumePath(resumeID, "edit_experience"))
}

func jobPath(resumeID, experienceID, jobID uint) string {
	return fmt.Sprintf("/resumes/%d/edit_experience/%d/edit_job/%d/", resumeID, experienceID, jobID)
}
