package middleware

import (
	"net/url"

	"github.com/fadilmartias/resume-builder/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/rs/zerolog/log"
)

const (
	SessionUserIDKey = "user_id"
	LoginPath        = "/login/"

	userIDLocal = "user_id"
)

// RequireLogin lets the request through only with a signed in session.
// Anonymous visitors are sent to the login page with the original path in
// next.
func RequireLogin(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			log.Error().Err(err).Msg("cannot load session")
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Message: "cannot load session",
			}, err)
		}

		userID, ok := sess.Get(SessionUserIDKey).(uint)
		if !ok || userID == 0 {
			return c.Redirect(LoginPath+"?next="+url.QueryEscape(c.OriginalURL()), fiber.StatusFound)
		}

		c.Locals(userIDLocal, userID)
		return c.Next()
	}
}

// CurrentUserID returns the id stored by RequireLogin, or 0.
func CurrentUserID(c *fiber.Ctx) uint {
	id, _ := c.Locals(userIDLocal).(uint)
	return id
}
