package handler

import (
	"time"

	"github.com/fadilmartias/resume-builder/internal/middleware"
	"github.com/fadilmartias/resume-builder/internal/usecase"
	"github.com/gofiber/fiber/v2"
)

type ReviewHandler struct {
	uc *usecase.ReviewUsecase
}

func NewReviewHandler(uc *usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

func (h *ReviewHandler) RegisterRoutes(app fiber.Router, g Guard) {
	app.Get("/resumes/:resume_id/review/", middleware.RateLimiter(1, 4*time.Second), g.Login, g.Resume, h.Review)
}

func (h *ReviewHandler) Review(c *fiber.Ctx) error {
	result, err := h.uc.Review(c.UserContext(), middleware.CurrentUserID(c), middleware.CurrentResume(c).ID)
	if err != nil {
		return fail(c, err, "failed to review resume")
	}
	return success(c, "Success review resume", fiber.Map{
		"provider": result.Provider,
		"feedback": result.Feedback,
	})
}
