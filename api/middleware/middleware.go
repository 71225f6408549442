package middleware

import (
	"movie_review/internal/service"
	"movie_review/model"
	"movie_review/pkg/response"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	LocalUserId = "userId"
	LocalUser   = "user"
)

// GetToken reads the `token` header, falling back to `Authorization: Bearer <jwt>`.
func GetToken(c *fiber.Ctx) string {
	if token := strings.TrimSpace(c.Get("token", "")); token != "" {
		return token
	}
	strArr := strings.Fields(c.Get(fiber.HeaderAuthorization, ""))
	if len(strArr) == 2 && strings.EqualFold(strArr[0], "Bearer") {
		return strArr[1]
	}
	return ""
}

func AuthMiddleware(userService service.IUserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := GetToken(c)
		if token == "" {
			return response.ResponseError(c, response.TokenMissing, model.CodeUnauthorized, fiber.StatusUnauthorized)
		}

		userId, err := userService.VerifyToken(token)
		if err != nil {
			return response.ResponseError(c, response.InvalidToken, model.CodeUnauthorized, fiber.StatusUnauthorized)
		}

		c.Locals(LocalUserId, userId)
		return c.Next()
	}
}

// PermissionMiddleware runs after AuthMiddleware and checks the caller's role for obj/act.
func PermissionMiddleware(userService service.IUserService, obj string, act string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userId, _ := c.Locals(LocalUserId).(string)
		user, err := userService.Authorize(c.UserContext(), userId, obj, act)
		if err != nil {
			return response.ResponseAppError(c, err)
		}

		c.Locals(LocalUser, user)
		return c.Next()
	}
}

func AdminMiddleware(userService service.IUserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := GetToken(c)
		if token == "" {
			return response.ResponseError(c, response.TokenMissing, model.CodeUnauthorized, fiber.StatusUnauthorized)
		}

		user, err := userService.RequireAdmin(c.UserContext(), token)
		if err != nil {
			if model.GetErrorCode(err) == fiber.StatusUnauthorized {
				return response.ResponseError(c, response.AdminOnly, model.CodeUnauthorized, fiber.StatusUnauthorized)
			}
			return response.ResponseAppError(c, err)
		}

		c.Locals(LocalUserId, user.Id.Hex())
		c.Locals(LocalUser, user)
		return c.Next()
	}
}

var (
	LocalhostRegex = regexp.MustCompile(`(?i)^(https?://)?localhost(:\d{4})?$`)
)
