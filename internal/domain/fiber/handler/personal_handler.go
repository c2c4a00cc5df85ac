package handler

import (
	"errors"
	"mime/multipart"

	"github.com/fadilmartias/resume-builder/internal/dto"
	"github.com/fadilmartias/resume-builder/internal/middleware"
	"github.com/fadilmartias/resume-builder/internal/model"
	"github.com/fadilmartias/resume-builder/internal/usecase"
	"github.com/gofiber/fiber/v2"
)

// maxImageSize caps the photo upload.
const maxImageSize = 5 * 1024 * 1024

type PersonalHandler struct {
	uc *usecase.PersonalUsecase
}

func NewPersonalHandler(uc *usecase.PersonalUsecase) *PersonalHandler {
	return &PersonalHandler{uc: uc}
}

func (h *PersonalHandler) RegisterRoutes(app fiber.Router, g Guard) {
	app.Get("/resumes/:resume_id/create_personal/", g.Login, g.Resume, h.CreatePage)
	app.Post("/resumes/:resume_id/create_personal/", g.Login, g.Resume, h.Create)
	app.Get("/resumes/:resume_id/edit_personal/", g.Login, g.Resume, h.EditPage)
	app.Post("/resumes/:resume_id/edit_personal/", g.Login, g.Resume, h.Edit)
}

func (h *PersonalHandler) CreatePage(c *fiber.Ctx) error {
	resumeID := middleware.CurrentResume(c).ID
	exists, err := h.uc.Exists(resumeID)
	if err != nil {
		return fail(c, err, "failed to load personal")
	}
	if exists {
		return redirect(c, resumePath(resumeID, "edit_personal"))
	}
	return success(c, "Success get personal form", fiber.Map{
		"resume_id": resumeID,
		"form":      dto.NewPersonalForm(),
		"choices":   personalChoices,
	})
}

func (h *PersonalHandler) Create(c *fiber.Ctx) error {
	resumeID := middleware.CurrentResume(c).ID
	exists, err := h.uc.Exists(resumeID)
	if err != nil {
		return fail(c, err, "failed to load personal")
	}
	if exists {
		return redirect(c, resumePath(resumeID, "edit_personal"))
	}

	var form dto.PersonalForm
	if ok, err := bindForm(c, &form); !ok {
		return err
	}
	image, err := formImage(c)
	if err != nil {
		return fail(c, err, "invalid image")
	}

	personal := &model.Personal{ResumeID: resumeID}
	if err := form.Apply(personal); err != nil {
		return fail(c, err, "failed to read personal form")
	}
	err = h.uc.Create(c.UserContext(), resumeID, personal, image)
	if errors.Is(err, usecase.ErrSectionExists) {
		return redirect(c, resumePath(resumeID, "edit_personal"))
	}
	if err != nil {
		return fail(c, err, "failed to create personal")
	}
	return redirect(c, resumePath(resumeID, "edit_personal"))
}

func (h *PersonalHandler) EditPage(c *fiber.Ctx) error {
	resumeID := middleware.CurrentResume(c).ID
	personal, err := h.uc.Get(resumeID)
	if errors.Is(err, usecase.ErrNotFound) {
		return redirect(c, resumePath(resumeID, "create_personal"))
	}
	if err != nil {
		return fail(c, err, "failed to load personal")
	}
	return success(c, "Success get personal", fiber.Map{
		"resume_id": resumeID,
		"form":      dto.PersonalFormFrom(personal),
		"image":     h.uc.ImageURL(personal.Image),
		"choices":   personalChoices,
	})
}

func (h *PersonalHandler) Edit(c *fiber.Ctx) error {
	resumeID := middleware.CurrentResume(c).ID
	personal, err := h.uc.Get(resumeID)
	if errors.Is(err, usecase.ErrNotFound) {
		return redirect(c, resumePath(resumeID, "create_personal"))
	}
	if err != nil {
		return fail(c, err, "failed to load personal")
	}

	var form dto.PersonalForm
	if ok, err := bindForm(c, &form); !ok {
		return err
	}
	image, err := formImage(c)
	if err != nil {
		return fail(c, err, "invalid image")
	}

	if err := form.Apply(personal); err != nil {
		return fail(c, err, "failed to read personal form")
	}
	if err := h.uc.Update(c.UserContext(), personal, image); err != nil {
		return fail(c, err, "failed to update personal")
	}
	return redirect(c, resumePath(resumeID, "edit_personal"))
}

// formImage returns the uploaded photo, or nil when none was sent.
func formImage(c *fiber.Ctx) (*multipart.FileHeader, error) {
	form, err := c.MultipartForm()
	if err != nil {
		// urlencoded submissions carry no file
		return nil, nil
	}
	files := form.File["image"]
	if len(files) == 0 || files[0].Filename == "" || files[0].Size == 0 {
		return nil, nil
	}
	if files[0].Size > maxImageSize {
		return nil, usecase.ErrUnsupportedImage
	}
	return files[0], nil
}
