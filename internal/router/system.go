package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/rs/zerolog/log"
)

// registerSystemRoutes mounts the endpoints that are not part of the resume
// flows: probes, profiling and uploaded photos.
func registerSystemRoutes(app *fiber.App, opts Options) {
	app.Use(healthcheck.New(healthcheck.Config{
		LivenessProbe: func(c *fiber.Ctx) bool {
			return true
		},
		LivenessEndpoint: "/livez",
		ReadinessProbe: func(c *fiber.Ctx) bool {
			sqlDB, err := opts.DB.DB()
			if err != nil {
				return false
			}
			if err := sqlDB.PingContext(c.UserContext()); err != nil {
				log.Warn().Err(err).Msg("readiness probe failed")
				return false
			}
			return true
		},
		ReadinessEndpoint: "/readyz",
	}))

	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return opts.App.IsProduction()
		},
	}))

	if opts.Storage != nil && (opts.Storage.Driver == "local" || opts.Storage.Driver == "") {
		app.Static("/uploads", opts.Storage.UploadDir)
	}
}
