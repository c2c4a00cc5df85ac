// Package router assembles the fiber application: middlewares, the
// repository, usecase and handler graph, and the system routes.
package router

import (
	"errors"
	"time"

	"github.com/fadilmartias/resume-builder/internal/config"
	"github.com/fadilmartias/resume-builder/internal/domain/fiber/handler"
	"github.com/fadilmartias/resume-builder/internal/middleware"
	"github.com/fadilmartias/resume-builder/internal/model"
	"github.com/fadilmartias/resume-builder/internal/repository"
	"github.com/fadilmartias/resume-builder/internal/service"
	"github.com/fadilmartias/resume-builder/internal/usecase"
	"github.com/fadilmartias/resume-builder/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Options struct {
	DB       *gorm.DB
	Images   service.ImageStore
	Reviewer service.ReviewerInterface // nil disables the review route

	App     *config.AppConfig
	Session *config.SessionConfig
	Storage *config.StorageConfig

	// SessionStorage defaults to fiber's in-memory storage.
	SessionStorage fiber.Storage
	// BcryptCost defaults to bcrypt.DefaultCost.
	BcryptCost int
	// RateLimit is the per-minute request budget of a client, 50 when zero.
	RateLimit int
	// AccessLog turns on the request logger.
	AccessLog bool
}

func New(opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:   opts.App.Name,
		BodyLimit: 8 * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    code,
				Message: message,
			}, err)
		},
	})

	if opts.AccessLog {
		app.Use(logger.New())
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !opts.App.IsProduction(),
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))

	registerSystemRoutes(app, opts)

	app.Use(middleware.RateLimiter(opts.RateLimit, 1*time.Minute))
	if opts.App.CSRFEnabled {
		app.Use(csrf.New(csrf.Config{
			KeyLookup:      "form:csrf_token",
			CookieName:     "csrf_",
			CookieSameSite: "Lax",
			CookieSecure:   opts.Session.CookieSecure,
			CookieHTTPOnly: true,
			Expiration:     time.Hour,
			ContextKey:     handler.CSRFContextKey,
			ErrorHandler: func(c *fiber.Ctx, err error) error {
				return util.ErrorResponse(c, util.ErrorResponseFormat{
					Code:    fiber.StatusForbidden,
					Message: "invalid csrf token",
				}, err)
			},
		}))
	}

	store := session.New(session.Config{
		Expiration:     opts.Session.Expiration,
		Storage:        opts.SessionStorage,
		KeyLookup:      "cookie:session_id",
		CookieSecure:   opts.Session.CookieSecure,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})

	userRepo := repository.NewUserRepository(opts.DB)
	resumeRepo := repository.NewResumeRepository(opts.DB)
	personalRepo := repository.NewSectionRepository[model.Personal](opts.DB)
	specializationRepo := repository.NewSectionRepository[model.Specialization](opts.DB)
	experienceRepo := repository.NewSectionRepository[model.Experience](opts.DB)
	educationRepo := repository.NewSectionRepository[model.Education](opts.DB)
	contactRepo := repository.NewContactRepository(opts.DB)
	jobRepo := repository.NewJobRepository(opts.DB)
	schoolRepo := repository.NewSchoolRepository(opts.DB)

	cost := opts.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	authUC := usecase.NewAuthUsecase(userRepo).WithCost(cost)
	resumeUC := usecase.NewResumeUsecase(resumeRepo, personalRepo)
	personalUC := usecase.NewPersonalUsecase(usecase.NewSectionUsecase(personalRepo), opts.Images)
	specializationUC := usecase.NewSectionUsecase(specializationRepo)
	experienceUC := usecase.NewExperienceUsecase(usecase.NewSectionUsecase(experienceRepo), jobRepo)
	educationUC := usecase.NewEducationUsecase(usecase.NewSectionUsecase(educationRepo), schoolRepo)
	contactUC := usecase.NewContactUsecase(contactRepo)
	reviewUC := usecase.NewReviewUsecase(resumeUC, opts.Reviewer)

	guard := handler.Guard{
		Login:  middleware.RequireLogin(store),
		Resume: middleware.ResumeScope(resumeUC),
	}

	handler.NewAuthHandler(authUC, store).RegisterRoutes(app)
	handler.NewResumeHandler(resumeUC, reviewUC).RegisterRoutes(app, guard)
	handler.NewPersonalHandler(personalUC).RegisterRoutes(app, guard)
	handler.NewSpecializationHandler(specializationUC).RegisterRoutes(app, guard)
	handler.NewExperienceHandler(experienceUC).RegisterRoutes(app, guard)
	handler.NewEducationHandler(educationUC).RegisterRoutes(app, guard)
	handler.NewContactHandler(contactUC).RegisterRoutes(app, guard)
	handler.NewReviewHandler(reviewUC).RegisterRoutes(app, guard)

	return app
}
