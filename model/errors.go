package model

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
)

var ErrValidation = errors.New("invalid input")
var ErrDuplicateUser = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrMovieNotFound = errors.New("movie not found")
var ErrInvalidCredentials = errors.New("invalid password")
var ErrUnauthorized = errors.New("unauthorized")
var ErrSignupDisabled = errors.New("signup is disabled")
var ErrLockTimeout = errors.New("timed out waiting for movie lock")

// ValidationError keeps the offending field next to the ErrValidation sentinel.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func NewValidationError(field string, message string) error {
	return &ValidationError{Field: field, Message: message}
}

//---------------------------------------
//---------------------------------------

const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeDuplicateUser      = "DUPLICATE_USER"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeNotFound           = "NOT_FOUND"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeSignupDisabled     = "SIGNUP_DISABLED"
	CodeTimeout            = "TIMEOUT"
	CodeRateLimited        = "RATE_LIMITED"
	CodeBadRequest         = "BAD_REQUEST"
	CodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	CodeBodyTooLarge       = "BODY_TOO_LARGE"
	CodeServerError        = "SERVER_ERROR"
)

func GetErrorCode(err error) int {
	code400 := []error{
		ErrValidation,
		ErrDuplicateUser,
		ErrInvalidCredentials,
	}
	code401 := []error{
		ErrUnauthorized,
	}
	code403 := []error{
		ErrSignupDisabled,
	}
	code404 := []error{
		ErrUserNotFound,
		ErrMovieNotFound,
	}
	code504 := []error{
		ErrLockTimeout,
	}

	is := func(target error) bool {
		return errors.Is(err, target)
	}
	if slices.ContainsFunc(code400, is) {
		return http.StatusBadRequest
	}
	if slices.ContainsFunc(code401, is) {
		return http.StatusUnauthorized
	}
	if slices.ContainsFunc(code403, is) {
		return http.StatusForbidden
	}
	if slices.ContainsFunc(code404, is) {
		return http.StatusNotFound
	}
	if slices.ContainsFunc(code504, is) {
		return http.StatusGatewayTimeout
	}

	return http.StatusInternalServerError
}

func GetErrorName(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrSignupDisabled):
		return CodeSignupDisabled
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrMovieNotFound):
		return CodeNotFound
	case errors.Is(err, ErrLockTimeout):
		return CodeTimeout
	}
	return CodeServerError
}
