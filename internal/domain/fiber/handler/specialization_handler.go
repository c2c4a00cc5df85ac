package handler

import (
	"errors"

	"github.com/fadilmartias/resume-builder/internal/dto"
	"github.com/fadilmartias/resume-builder/internal/middleware"
	"github.com/fadilmartias/resume-builder/internal/model"
	"github.com/fadilmartias/resume-builder/internal/usecase"
	"github.com/gofiber/fiber/v2"
)

type SpecializationHandler struct {
	uc *usecase.SectionUsecase[model.Specialization]
}

func NewSpecializationHandler(uc *usecase.SectionUsecase[model.Specialization]) *SpecializationHandler {
	return &SpecializationHandler{uc: uc}
}

func (h *SpecializationHandler) RegisterRoutes(app fiber.Router, g Guard) {
	app.Get("/resumes/:resume_id/create_specialization/", g.Login, g.Resume, h.CreatePage)
	app.Post("/resumes/:resume_id/create_specialization/", g.Login, g.Resume, h.Create)
	app.Get("/resumes/:resume_id/edit_specialization/", g.Login, g.Resume, h.EditPage)
	app.Post("/resumes/:resume_id/edit_specialization/", g.Login, g.Resume, h.Edit)
}

func (h *SpecializationHandler) CreatePage(c *fiber.Ctx) error {
	resumeID := middleware.CurrentResume(c).ID
	exists, err := h.uc.Exists(resumeID)
	if err != nil {
		return fail(c, err, "failed to load specialization")
	}
	if exists {
		return redirect(c, resumePath(resumeID, "edit_specialization"))
	}
	return success(c, "Success get specialization form", fiber.Map{
		"resume_id": resumeID,
		"form":      dto.NewSpecializationForm(),
		"choices":   specializationChoices,
	})
}

func (h *SpecializationHandler) Create(c *fiber.Ctx) error {
	resumeID := middleware.CurrentResume(c).ID
	exists, err := h.uc.Exists(resumeID)
	if err != nil {
		return fail(c, err, "failed to load specialization")
	}
	if exists {
		return redirect(c, resumePath(resumeID, "edit_specialization"))
	}

	var form dto.SpecializationForm
	if ok, err := bindForm(c, &form); !ok {
		return err
	}

	specialization := &model.Specialization{ResumeID: resumeID}
	if err := form.Apply(specialization); err != nil {
		return fail(c, err, "failed to read specialization form")
	}
	err = h.uc.Create(resumeID, specialization)
	if err != nil && !errors.Is(err, usecase.ErrSectionExists) {
		return fail(c, err, "failed to create specialization")
	}
	return redirect(c, resumePath(resumeID, "edit_specialization"))
}

func (h *SpecializationHandler) EditPage(c *fiber.Ctx) error {
	resumeID := middleware.CurrentResume(c).ID
	specialization, err := h.uc.Get(resumeID)
	if errors.Is(err, usecase.ErrNotFound) {
		return redirect(c, resumePath(resumeID, "create_specialization"))
	}
	if err != nil {
		return fail(c, err, "failed to load specialization")
	}
	return success(c, "Success get specialization", fiber.Map{
		"resume_id": resumeID,
		"form":      dto.SpecializationFormFrom(specialization),
		"choices":   specializationChoices,
	})
}

func (h *SpecializationHandler) Edit(c *fiber.Ctx) error {
	resumeID := middleware.CurrentResume(c).ID
	specialization, err := h.uc.Get(resumeID)
	if errors.Is(err, usecase.ErrNotFound) {
		return redirect(c, resumePath(resumeID, "create_specialization"))
	}
	if err != nil {
		return fail(c, err, "failed to load specialization")
	}

	var form dto.SpecializationForm
	if ok, err := bindForm(c, &form); !ok {
		return err
	}
	if err := form.Apply(specialization); err != nil {
		return fail(c, err, "failed to read specialization form")
	}
	if err := h.uc.Update(specialization); err != nil {
		return fail(c, err, "failed to update specialization")
	}
	return redirect(c, resumePath(resumeID, "edit_specialization"))
}
