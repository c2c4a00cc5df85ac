package middleware

import (
	"errors"

	"github.com/fadilmartias/resume-builder/internal/model"
	"github.com/fadilmartias/resume-builder/internal/usecase"
	"github.com/fadilmartias/resume-builder/internal/util"
	"github.com/gofiber/fiber/v2"
)

const resumeLocal = "resume"

type ResumeOwner interface {
	Owned(userID, resumeID uint) (*model.Resume, error)
}

// ResumeScope loads the :resume_id resume of the signed in user. Resumes of
// other users answer 404 as if they did not exist. It must run after
// RequireLogin on a route that declares :resume_id.
func ResumeScope(owner ResumeOwner) fiber.Handler {
	return func(c *fiber.Ctx) error {
		resumeID, err := c.ParamsInt("resume_id")
		if err != nil || resumeID <= 0 {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "resume not found",
			})
		}

		resume, err := owner.Owned(CurrentUserID(c), uint(resumeID))
		if errors.Is(err, usecase.ErrNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "resume not found",
			})
		}
		if err != nil {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Message: "failed to load resume",
			}, err)
		}

		c.Locals(resumeLocal, resume)
		return c.Next()
	}
}

func CurrentResume(c *fiber.Ctx) *model.Resume {
	resume, _ := c.Locals(resumeLocal).(*model.Resume)
	return resume
}
