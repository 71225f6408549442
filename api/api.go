package api

import (
	"context"
	"errors"
	"fmt"
	"movie_review/api/middleware"
	"movie_review/configs"
	_ "movie_review/docs"
	"movie_review/internal/handler"
	"movie_review/internal/service"
	"movie_review/model"
	errorHandler "movie_review/pkg/error"
	"movie_review/pkg/response"
	"slices"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// clientErrorCode maps framework-raised 4xx statuses to response codes.
// Handlers report their own domain errors, so anything reaching here is transport level.
func clientErrorCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return model.CodeNotFound
	case fiber.StatusMethodNotAllowed:
		return model.CodeMethodNotAllowed
	case fiber.StatusRequestEntityTooLarge:
		return model.CodeBodyTooLarge
	case fiber.StatusUnauthorized, fiber.StatusForbidden:
		return model.CodeUnauthorized
	case fiber.StatusTooManyRequests:
		return model.CodeRateLimited
	case fiber.StatusUnprocessableEntity:
		return model.CodeValidation
	default:
		return model.CodeBadRequest
	}
}

type Handlers struct {
	UserHandler  *handler.UserHandler
	MovieHandler *handler.MovieHandler
	AdminHandler *handler.AdminHandler
	UserService  service.IUserService
}

var router *fiber.App

func InitRouter(h Handlers) *fiber.App {
	var defaultErrorHandler = func(c *fiber.Ctx, err error) error {
		// Status code defaults to 500
		code := fiber.StatusInternalServerError

		// Retrieve the custom status code if it's a *fiber.Error
		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}

		switch {
		case code == fiber.StatusNotFound:
			return response.ResponseError(c, "Not found", model.CodeNotFound, code)
		case code == fiber.StatusRequestTimeout || errors.Is(err, context.DeadlineExceeded):
			return response.ResponseError(c, response.Timeout, model.CodeTimeout, fiber.StatusGatewayTimeout)
		case code < fiber.StatusInternalServerError:
			return response.ResponseError(c, e.Message, clientErrorCode(code), code)
		}

		if !strings.Contains(err.Error(), "/favicon.ico") {
			errorHandler.SaveError(fmt.Sprintf("%s %s", c.Method(), c.Path()), err)
		}
		return response.ResponseError(c, response.ServerError, model.CodeServerError, code)
	}

	router = fiber.New(fiber.Config{
		AppName:      "movie_review",
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: defaultErrorHandler,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})

	router.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	router.Use(middleware.RequestLogger())
	router.Use(recover.New())
	router.Use(fibersentry.New(fibersentry.Config{
		Repanic:         true,
		WaitForDelivery: false,
	}))
	router.Use(helmet.New())
	router.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return middleware.LocalhostRegex.MatchString(origin) ||
				slices.Contains(configs.GetConfigs().CorsAllowedOrigins, origin) ||
				slices.Contains(configs.GetDbConfigs().CorsAllowedOrigins, origin)
		},
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, token",
	}))
	router.Use(compress.New())
	router.Use(timeoutMiddleware(configs.GetConfigs().RequestTimeout()))

	authLimiter := limiter.New(limiter.Config{
		Max:        20,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return response.ResponseError(c, "Too many requests, try again later", model.CodeRateLimited, fiber.StatusTooManyRequests)
		},
	})
	auth := middleware.AuthMiddleware(h.UserService)
	admin := middleware.AdminMiddleware(h.UserService)
	can := func(obj string, act string) fiber.Handler {
		return middleware.PermissionMiddleware(h.UserService, obj, act)
	}

	v1 := router.Group("/api/v1")

	movieRoutes := v1.Group("/movie")
	{
		movieRoutes.Get("/getMovies", h.MovieHandler.GetMovies)
		movieRoutes.Get("/getMoviebyId/:id", h.MovieHandler.GetMovieById)
		movieRoutes.Post("/addMovie", admin, h.MovieHandler.AddMovie)
		movieRoutes.Get("/:id/reviews", h.MovieHandler.GetMovieReviews)
		movieRoutes.Post("/:id/review", auth, can(service.ObjReview, service.ActCreate), h.MovieHandler.AddReview)
	}

	userRoutes := v1.Group("/user")
	{
		userRoutes.Post("/signup", authLimiter, h.UserHandler.Signup)
		userRoutes.Post("/login", authLimiter, h.UserHandler.Login)
		userRoutes.Post("/updateProfile", auth, can(service.ObjProfile, service.ActUpdate), h.UserHandler.UpdateProfile)
		userRoutes.Post("/addtoWatchList", auth, can(service.ObjWatchlist, service.ActWrite), h.UserHandler.AddToWatchlist)
		userRoutes.Post("/removeFromWatchList", auth, can(service.ObjWatchlist, service.ActWrite), h.UserHandler.RemoveFromWatchlist)
		userRoutes.Get("/:id/watchlist", auth, h.UserHandler.GetWatchlist)
		userRoutes.Get("/:id", h.UserHandler.GetUser)
	}

	adminRoutes := v1.Group("/admin")
	{
		adminRoutes.Get("/fetch_configs", admin, h.AdminHandler.FetchDbConfigs)
	}

	router.Get("/", HealthCheck)
	router.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	router.Get("/monitor", admin, monitor.New())

	router.Get("/swagger/*", swagger.HandlerDefault) // default

	return router
}

func Start(addr string) error {
	return router.Listen(addr)
}

func Shutdown(ctx context.Context) error {
	if router == nil {
		return nil
	}
	return router.ShutdownWithContext(ctx)
}

// timeoutMiddleware puts a deadline on the context handlers pass down to storage.
func timeoutMiddleware(timeout time.Duration) func(c *fiber.Ctx) error {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()

		c.SetUserContext(ctx)
		return c.Next()
	}
}

// HealthCheck godoc
//
//	@Summary		Show the status of server.
//	@Description	get the status of server.
//	@Tags			System
//	@Success		200	{object}	response.ResponseOKModel
//	@Router			/ [get]
func HealthCheck(c *fiber.Ctx) error {
	return response.ResponseOK(c, "Server is up and running")
}
