package handler

import (
	"errors"
	"fmt"

	"github.com/fadilmartias/resume-builder/internal/dto"
	"github.com/fadilmartias/resume-builder/internal/middleware"
	"github.com/fadilmartias/resume-builder/internal/usecase"
	"github.com/gofiber/fiber/v2"
)

type EducationHandler struct {
	uc *usecase.EducationUsecase
}

func NewEducationHandler(uc *usecase.EducationUsecase) *EducationHandler {
	return &EducationHandler{uc: uc}
}

func (h *EducationHandler) RegisterRoutes(app fiber.Router, g Guard) {
	getPost(app, "/resumes/:resume_id/create_education/", g.Login, g.Resume, h.Create)
	getPost(app, "/resumes/:resume_id/edit_education/", g.Login, g.Resume, h.Edit)
	getPost(app, "/resumes/:resume_id/edit_education/:education_id/create_school/", g.Login, g.Resume, h.CreateSchool)
	app.Get("/resumes/:resume_id/edit_education/:education_id/edit_school/:school_id/", g.Login, g.Resume, h.EditSchoolPage)
	app.Post("/resumes/:resume_id/edit_education/:education_id/edit_school/:school_id/", g.Login, g.Resume, h.EditSchool)
	getPost(app, "/resumes/:resume_id/edit_education/:education_id/delete_school/:school_id/", g.Login, g.Resume, h.DeleteSchool)
}

func (h *EducationHandler) Create(c *fiber.Ctx) error {
	resumeID := middleware.CurrentResume(c).ID
	if _, err := h.uc.Ensure(resumeID); err != nil {
		return fail(c, err, "failed to create education")
	}
	return redirect(c, resumePath(resumeID, "edit_education"))
}

func (h *EducationHandler) Edit(c *fiber.Ctx) error {
	resumeID := middleware.CurrentResume(c).ID
	education, err := h.uc.Get(resumeID)
	if errors.Is(err, usecase.ErrNotFound) {
		return redirect(c, resumePath(resumeID, "create_education"))
	}
	if err != nil {
		return fail(c, err, "failed to load education")
	}

	schools := make([]fiber.Map, 0, len(education.Schools))
	for _, school := range education.Schools {
		schools = append(schools, fiber.Map{"id": school.ID, "name": school.Name})
	}
	return success(c, "Success get education", fiber.Map{
		"resume_id":    resumeID,
		"education_id": education.ID,
		"schools":      schools,
	})
}

func (h *EducationHandler) CreateSchool(c *fiber.Ctx) error {
	educationID, ok := paramID(c, "education_id")
	if !ok {
		return notFound(c, "education not found")
	}
	return redirect(c, schoolPath(middleware.CurrentResume(c).ID, educationID, 0))
}

func (h *EducationHandler) EditSchoolPage(c *fiber.Ctx) error {
	resumeID := middleware.CurrentResume(c).ID
	educationID, ok := paramID(c, "education_id")
	if !ok {
		return notFound(c, "education not found")
	}
	schoolID, ok := paramID(c, "school_id")
	if !ok {
		return notFound(c, "school not found")
	}

	school, err := h.uc.GetSchool(resumeID, educationID, schoolID)
	if err != nil {
		return fail(c, err, "school not found")
	}
	return success(c, "Success get school", fiber.Map{
		"resume_id":    resumeID,
		"education_id": educationID,
		"school_id":    school.ID,
		"form":         dto.SchoolFormFrom(school),
	})
}

func (h *EducationHandler) EditSchool(c *fiber.Ctx) error {
	resumeID := middleware.CurrentResume(c).ID
	educationID, ok := paramID(c, "education_id")
	if !ok {
		return notFound(c, "education not found")
	}
	schoolID, ok := paramID(c, "school_id")
	if !ok {
		return notFound(c, "school not found")
	}

	school, err := h.uc.GetSchool(resumeID, educationID, schoolID)
	if err != nil {
		return fail(c, err, "school not found")
	}

	var form dto.SchoolForm
	if ok, err := bindForm(c, &form); !ok {
		return err
	}
	if err := form.Apply(school); err != nil {
		return fail(c, err, "failed to read school form")
	}
	if err := h.uc.SaveSchool(school); err != nil {
		return fail(c, err, "failed to save school")
	}
	return redirect(c, resumePath(resumeID, "edit_education"))
}

func (h *EducationHandler) DeleteSchool(c *fiber.Ctx) error {
	resumeID := middleware.CurrentResume(c).ID
	educationID, ok := paramID(c, "education_id")
	if !ok {
		return notFound(c, "education not found")
	}
	schoolID, ok := paramID(c, "school_id")
	if !ok {
		return notFound(c, "school not found")
	}

	if err := h.uc.DeleteSchool(resumeID, educationID, schoolID); err != nil {
		return fail(c, err, "school not found")
	}
	return redirect(c, resumePath(resumeID, "edit_education"))
}

func schoolPath(resumeID, educationID, schoolID uint) string {
	return fmt.Sprintf("/resumes/%d/edit_education/%d/edit_school/%d/", resumeID, educationID, schoolID)
}
