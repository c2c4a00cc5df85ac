package handler

import (
	"errors"

	"github.com/fadilmartias/resume-builder/internal/dto"
	"github.com/fadilmartias/resume-builder/internal/middleware"
	"github.com/fadilmartias/resume-builder/internal/usecase"
	"github.com/fadilmartias/resume-builder/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/rs/zerolog/log"
)

type AuthHandler struct {
	uc    *usecase.AuthUsecase
	store *session.Store
}

func NewAuthHandler(uc *usecase.AuthUsecase, store *session.Store) *AuthHandler {
	return &AuthHandler{uc: uc, store: store}
}

func (h *AuthHandler) RegisterRoutes(app fiber.Router) {
	app.Get("/login/", h.LoginPage)
	app.Post("/login/", middleware.RateLimiter(10, 0), h.Login)
	app.Get("/logout/", h.Logout)
}

func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err != nil {
		return fail(c, err, "cannot load session")
	}
	data := fiber.Map{"authenticated": false, "form": dto.LoginForm{}}
	if userID, _ := sess.Get(middleware.SessionUserIDKey).(uint); userID != 0 {
		user, err := h.uc.GetUser(userID)
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			// the account is gone, the session is stale
		case err != nil:
			return fail(c, err, "failed to load user")
		default:
			data["authenticated"] = true
			data["username"] = user.Username
		}
	}
	return success(c, "Success get login page", data)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err != nil {
		return fail(c, err, "cannot load session")
	}
	if userID, _ := sess.Get(middleware.SessionUserIDKey).(uint); userID != 0 {
		return redirect(c, "/")
	}

	var form dto.LoginForm
	if ok, err := bindForm(c, &form); !ok {
		return err
	}

	user, created, err := h.uc.Login(form.Username, form.Password)
	if errors.Is(err, usecase.ErrInvalidPassword) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnauthorized,
			Message: "invalid password",
		})
	}
	if err != nil {
		return fail(c, err, "failed to sign in")
	}

	if err := sess.Regenerate(); err != nil {
		return fail(c, err, "cannot start session")
	}
	sess.Set(middleware.SessionUserIDKey, user.ID)
	if err := sess.Save(); err != nil {
		return fail(c, err, "cannot start session")
	}
	log.Info().Uint("user_id", user.ID).Bool("created", created).Msg("user signed in")

	if created {
		return redirect(c, "/")
	}
	return redirect(c, safeNext(c.Query("next")))
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err != nil {
		return fail(c, err, "cannot load session")
	}
	if err := sess.Destroy(); err != nil {
		return fail(c, err, "cannot end session")
	}
	return redirect(c, middleware.LoginPath)
}
