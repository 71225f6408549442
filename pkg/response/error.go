package response

import (
	"context"
	"errors"
	"fmt"
	"movie_review/model"
	errorHandler "movie_review/pkg/error"

	"github.com/gofiber/fiber/v2"
)

const (
	ServerError = "Server error, try again later"
	Timeout     = "Request timed out, try again later"
	//----------------------
	MovieNotFound = "Movie not found"
	UserNotFound  = "User not found"
	//----------------------
	InvalidToken   = "Invalid token"
	TokenMissing   = "Unauthorized, token missing"
	AdminOnly      = "Unauthorized, admin users only"
	NotOwnResource = "Unauthorized, cannot access another user's data"
	//----------------------
	InvalidPassword = "Invalid password"
	//----------------------
	BadRequestBody  = "Incorrect request body"
	InvalidInput    = "Invalid input"
	InvalidMovieId  = "Invalid movieId"
	InvalidUserId   = "Invalid userId"
	MissingFields   = "Missing required fields"
	InvalidPageArgs = "page and limit must be positive integers"
	InvalidYear     = "year must be a positive integer"
	//----------------------
	UserAlreadyExist = "User already exists"
	SignupDisabled   = "Signup is disabled"
	//----------------------
)

// ResponseAppError maps a service error to its status and stable code.
// Unexpected errors are reported and answered with a generic message.
func ResponseAppError(c *fiber.Ctx, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, model.ErrLockTimeout) {
		return ResponseError(c, Timeout, model.CodeTimeout, fiber.StatusGatewayTimeout)
	}

	code := model.GetErrorCode(err)
	name := model.GetErrorName(err)
	switch {
	case errors.Is(err, model.ErrValidation):
		var ve *model.ValidationError
		if errors.As(err, &ve) {
			return ResponseError(c, ve.Error(), name, code)
		}
		return ResponseError(c, InvalidInput, name, code)
	case errors.Is(err, model.ErrDuplicateUser):
		return ResponseError(c, UserAlreadyExist, name, code)
	case errors.Is(err, model.ErrInvalidCredentials):
		return ResponseError(c, InvalidPassword, name, code)
	case errors.Is(err, model.ErrUnauthorized):
		return ResponseError(c, InvalidToken, name, code)
	case errors.Is(err, model.ErrSignupDisabled):
		return ResponseError(c, SignupDisabled, name, code)
	case errors.Is(err, model.ErrMovieNotFound):
		return ResponseError(c, MovieNotFound, name, code)
	case errors.Is(err, model.ErrUserNotFound):
		return ResponseError(c, UserNotFound, name, code)
	}

	errorHandler.SaveError(fmt.Sprintf("%s %s", c.Method(), c.Path()), err)
	return ResponseError(c, ServerError, model.CodeServerError, fiber.StatusInternalServerError)
}
