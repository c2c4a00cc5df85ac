package handler

import (
	"errors"

	"github.com/fadilmartias/resume-builder/internal/dto"
	"github.com/fadilmartias/resume-builder/internal/middleware"
	"github.com/fadilmartias/resume-builder/internal/model"
	"github.com/fadilmartias/resume-builder/internal/usecase"
	"github.com/gofiber/fiber/v2"
)

type ContactHandler struct {
	uc *usecase.ContactUsecase
}

func NewContactHandler(uc *usecase.ContactUsecase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

func (h *ContactHandler) RegisterRoutes(app fiber.Router, g Guard) {
	app.Get("/resumes/:resume_id/create_contact/", g.Login, g.Resume, h.CreatePage)
	app.Post("/resumes/:resume_id/create_contact/", g.Login, g.Resume, h.Create)
	app.Get("/resumes/:resume_id/edit_contact/", g.Login, g.Resume, h.EditPage)
	app.Post("/resumes/:resume_id/edit_contact/", g.Login, g.Resume, h.Edit)
}

func (h *ContactHandler) CreatePage(c *fiber.Ctx) error {
	resumeID := middleware.CurrentResume(c).ID
	exists, err := h.uc.Exists(resumeID)
	if err != nil {
		return fail(c, err, "failed to load contact")
	}
	if exists {
		return redirect(c, resumePath(resumeID, "edit_contact"))
	}
	return success(c, "Success get contact form", fiber.Map{
		"resume_id": resumeID,
		"form":      dto.ContactForm{},
	})
}

func (h *ContactHandler) Create(c *fiber.Ctx) error {
	resumeID := middleware.CurrentResume(c).ID
	exists, err := h.uc.Exists(resumeID)
	if err != nil {
		return fail(c, err, "failed to load contact")
	}
	if exists {
		return redirect(c, resumePath(resumeID, "edit_contact"))
	}

	var form dto.ContactForm
	if ok, err := bindForm(c, &form); !ok {
		return err
	}

	contact := &model.Contact{}
	form.Apply(contact)
	err = h.uc.Create(resumeID, contact)
	if err != nil && !errors.Is(err, usecase.ErrSectionExists) {
		return fail(c, err, "failed to create contact")
	}
	return redirect(c, resumePath(resumeID, "edit_contact"))
}

func (h *ContactHandler) EditPage(c *fiber.Ctx) error {
	resumeID := middleware.CurrentResume(c).ID
	contact, err := h.uc.Get(resumeID)
	if errors.Is(err, usecase.ErrNotFound) {
		return redirect(c, resumePath(resumeID, "create_contact"))
	}
	if err != nil {
		return fail(c, err, "failed to load contact")
	}
	return success(c, "Success get contact", fiber.Map{
		"resume_id": resumeID,
		"form":      dto.ContactFormFrom(contact),
	})
}

func (h *ContactHandler) Edit(c *fiber.Ctx) error {
	resumeID := middleware.CurrentResume(c).ID
	contact, err := h.uc.Get(resumeID)
	if errors.Is(err, usecase.ErrNotFound) {
		return redirect(c, resumePath(resumeID, "create_contact"))
	}
	if err != nil {
		return fail(c, err, "failed to load contact")
	}

	var form dto.ContactForm
	if ok, err := bindForm(c, &form); !ok {
		return err
	}
	form.Apply(contact)
	if err := h.uc.Update(contact); err != nil {
		return fail(c, err, "failed to update contact")
	}
	return redirect(c, resumePath(resumeID, "edit_contact"))
}
