package handler

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/fadilmartias/resume-builder/internal/dto"
	"github.com/fadilmartias/resume-builder/internal/model"
	"github.com/fadilmartias/resume-builder/internal/usecase"
	"github.com/fadilmartias/resume-builder/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// CSRFContextKey is where the csrf middleware leaves the token for pages.
const CSRFContextKey = "csrf"

// Guard holds the middlewares protecting the routes. Login must run before
// Resume.
type Guard struct {
	Login  fiber.Handler
	Resume fiber.Handler
}

func getPost(r fiber.Router, path string, handlers ...fiber.Handler) {
	r.Add(fiber.MethodGet, path, handlers...)
	r.Add(fiber.MethodPost, path, handlers...)
}

func redirect(c *fiber.Ctx, path string) error {
	return c.Redirect(path, fiber.StatusSeeOther)
}

func resumePath(resumeID uint, page string) string {
	return fmt.Sprintf("/resumes/%d/%s/", resumeID, page)
}

// paramID reads a numeric route parameter. Zero is a valid id for the
// edit_job and edit_school pages.
func paramID(c *fiber.Ctx, name string) (uint, bool) {
	id, err := c.ParamsInt(name)
	if err != nil || id < 0 {
		return 0, false
	}
	return uint(id), true
}

func notFound(c *fiber.Ctx, message string) error {
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    fiber.StatusNotFound,
		Message: message,
	})
}

// bindForm parses and validates the request body. When ok is false the
// response has already been written and err is what the handler returns.
func bindForm(c *fiber.Ctx, form dto.Validatable) (ok bool, err error) {
	if err := c.BodyParser(form); err != nil {
		return false, util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid form data",
		}, err)
	}
	if formErr := form.Validate(); formErr != nil {
		return false, util.FormErrorResponse(c, fiber.StatusUnprocessableEntity, formErr)
	}
	return true, nil
}

// fail maps usecase errors onto the error envelope.
func fail(c *fiber.Ctx, err error, message string) error {
	var duplicate *usecase.DuplicateContactError
	switch {
	case errors.As(err, &duplicate):
		return util.FormErrorResponse(c, fiber.StatusConflict, util.NewFormError("Validation failed", map[string]string{
			duplicate.Field: "is already used by another resume",
		}))
	case errors.Is(err, usecase.ErrUnsupportedImage):
		return util.FormErrorResponse(c, fiber.StatusUnprocessableEntity, util.NewFormError("Validation failed", map[string]string{
			"image": err.Error(),
		}))
	}

	code := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		code = fiber.StatusNotFound
	case errors.Is(err, usecase.ErrInvalidPassword):
		code = fiber.StatusUnauthorized
	case errors.Is(err, usecase.ErrReviewerDisabled):
		code = fiber.StatusServiceUnavailable
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg(message)
	}
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    code,
		Message: message,
	}, err)
}

// page adds the csrf token, when there is one, to a page model.
func page(c *fiber.Ctx, data fiber.Map) fiber.Map {
	if token, ok := c.Locals(CSRFContextKey).(string); ok && token != "" {
		data["csrf_token"] = token
	}
	return data
}

func success(c *fiber.Ctx, message string, data fiber.Map) error {
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: message,
		Data:    page(c, data),
	})
}

var (
	personalChoices = fiber.Map{
		"gender": model.GenderChoices,
	}
	specializationChoices = fiber.Map{
		"readiness":      model.ReadinessChoices,
		"specialization": model.SpecializationChoices,
		"grade":          model.GradeChoices,
	}
	jobChoices = fiber.Map{
		"specialization": model.SpecializationChoices,
		"grade":          model.GradeChoices,
	}
)

// safeNext accepts only a path on this site as the post-login target.
func safeNext(next string) string {
	if next == "" || strings.Contains(next, `\`) {
		return "/"
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}
