package handler

import (
	"github.com/fadilmartias/resume-builder/internal/dto"
	"github.com/fadilmartias/resume-builder/internal/middleware"
	"github.com/fadilmartias/resume-builder/internal/usecase"
	"github.com/fadilmartias/resume-builder/internal/util"
	"github.com/gofiber/fiber/v2"
)

type ResumeHandler struct {
	uc     *usecase.ResumeUsecase
	review *usecase.ReviewUsecase
}

func NewResumeHandler(uc *usecase.ResumeUsecase, review *usecase.ReviewUsecase) *ResumeHandler {
	return &ResumeHandler{uc: uc, review: review}
}

func (h *ResumeHandler) RegisterRoutes(app fiber.Router, g Guard) {
	app.Get("/", g.Login, h.Index)
	app.Post("/", g.Login, h.Create)
	app.Get("/resumes/:resume_id/", g.Login, g.Resume, h.Show)
	getPost(app, "/edit_resume/:resume_id/", g.Login, g.Resume, h.Edit)
	getPost(app, "/delete_resume/:resume_id/", g.Login, g.Resume, h.Delete)
}

func (h *ResumeHandler) Index(c *fiber.Ctx) error {
	resumes, pagination, err := h.uc.List(
		middleware.CurrentUserID(c),
		c.QueryInt("page", 1),
		c.QueryInt("page_size", usecase.DefaultPageSize),
	)
	if err != nil {
		return fail(c, err, "failed to list resumes")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:       fiber.StatusOK,
		Message:    "Success get resumes",
		Data:       page(c, fiber.Map{"resumes": resumes, "form": dto.ResumeForm{}}),
		Pagination: pagination,
	})
}

func (h *ResumeHandler) Create(c *fiber.Ctx) error {
	var form dto.ResumeForm
	if ok, err := bindForm(c, &form); !ok {
		return err
	}
	if _, err := h.uc.Create(middleware.CurrentUserID(c), form.Name); err != nil {
		return fail(c, err, "failed to create resume")
	}
	return redirect(c, "/")
}

func (h *ResumeHandler) Show(c *fiber.Ctx) error {
	resume, err := h.uc.Graph(middleware.CurrentUserID(c), middleware.CurrentResume(c).ID)
	if err != nil {
		return fail(c, err, "resume not found")
	}
	return success(c, "Success get resume", fiber.Map{
		"resume":         resume,
		"review_enabled": h.review.Enabled(),
	})
}

// Edit opens the first section of the resume.
func (h *ResumeHandler) Edit(c *fiber.Ctx) error {
	resumeID := middleware.CurrentResume(c).ID
	exists, err := h.uc.HasPersonal(resumeID)
	if err != nil {
		return fail(c, err, "failed to load resume")
	}
	if exists {
		return redirect(c, resumePath(resumeID, "edit_personal"))
	}
	return redirect(c, resumePath(resumeID, "create_personal"))
}

func (h *ResumeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(middleware.CurrentUserID(c), middleware.CurrentResume(c).ID); err != nil {
		return fail(c, err, "failed to delete resume")
	}
	return redirect(c, "/")
}
