package handler

import (
	"errors"
	"movie_review/api/middleware"
	"movie_review/internal/service"
	"movie_review/model"
	"movie_review/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type IUserHandler interface {
	Signup(c *fiber.Ctx) error
	Login(c *fiber.Ctx) error
	GetUser(c *fiber.Ctx) error
	UpdateProfile(c *fiber.Ctx) error
	GetWatchlist(c *fiber.Ctx) error
	AddToWatchlist(c *fiber.Ctx) error
	RemoveFromWatchlist(c *fiber.Ctx) error
}

type UserHandler struct {
	userService      service.IUserService
	watchlistService service.IWatchlistService
}

func NewUserHandler(userService service.IUserService, watchlistService service.IWatchlistService) *UserHandler {
	return &UserHandler{
		userService:      userService,
		watchlistService: watchlistService,
	}
}

//------------------------------------------
//------------------------------------------

// Signup godoc
//
//	@Summary		Signup
//	@Description	Create a user account and return its token.
//	@Tags			User
//	@Param			user	body		model.SignupReq	true	"signup data"
//	@Success		200		{object}	model.AuthRes
//	@Failure		400,403	{object}	response.ResponseErrorModel
//	@Router			/api/v1/user/signup [post]
func (m *UserHandler) Signup(c *fiber.Ctx) error {
	var req model.SignupReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, model.CodeValidation, fiber.StatusBadRequest)
	}

	res, err := m.userService.Signup(c.UserContext(), req)
	if err != nil {
		return response.ResponseAppError(c, err)
	}

	return response.ResponseOKWithData(c, "Signup successful", fiber.Map{
		"token": res.Token,
		"user":  res.User,
	})
}

// Login godoc
//
//	@Summary		Login
//	@Description	Check credentials and return a token.
//	@Tags			User
//	@Param			user	body		model.LoginReq	true	"login data"
//	@Success		200		{object}	model.AuthRes
//	@Failure		400		{object}	response.ResponseErrorModel
//	@Router			/api/v1/user/login [post]
func (m *UserHandler) Login(c *fiber.Ctx) error {
	var req model.LoginReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, model.CodeValidation, fiber.StatusBadRequest)
	}

	res, err := m.userService.Login(c.UserContext(), req)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			// login keeps the 400 contract for unknown emails
			return response.ResponseError(c, response.UserNotFound, model.CodeUserNotFound, fiber.StatusBadRequest)
		}
		return response.ResponseAppError(c, err)
	}

	return response.ResponseOKWithData(c, "Login successful", fiber.Map{
		"token": res.Token,
		"user":  res.User,
	})
}

// GetUser godoc
//
//	@Summary		Get User
//	@Description	Public profile of a user.
//	@Tags			User
//	@Param			id		path		string	true	"user id"
//	@Success		200		{object}	model.UserProfile
//	@Failure		400,404	{object}	response.ResponseErrorModel
//	@Router			/api/v1/user/{id} [get]
func (m *UserHandler) GetUser(c *fiber.Ctx) error {
	profile, err := m.userService.GetProfile(c.UserContext(), c.Params("id", ""))
	if err != nil {
		return response.ResponseAppError(c, err)
	}

	return response.ResponseOKWithData(c, "", fiber.Map{
		"user": profile,
	})
}

// UpdateProfile godoc
//
//	@Summary		Update Profile
//	@Description	Change username, email or profile picture of the logged-in user.
//	@Tags			User
//	@Param			user	body		model.UpdateProfileReq	true	"fields to change"
//	@Success		200		{object}	model.UserProfile
//	@Failure		400,401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/api/v1/user/updateProfile [post]
func (m *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var req model.UpdateProfileReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, model.CodeValidation, fiber.StatusBadRequest)
	}

	userId, _ := c.Locals(middleware.LocalUserId).(string)
	profile, err := m.userService.UpdateProfile(c.UserContext(), userId, req)
	if err != nil {
		return response.ResponseAppError(c, err)
	}

	return response.ResponseOKWithData(c, "Profile updated", fiber.Map{
		"user": profile,
	})
}

// GetWatchlist godoc
//
//	@Summary		Get Watchlist
//	@Description	Watchlist of a user with movies resolved. Only the user or an admin can read it.
//	@Tags			Watchlist
//	@Param			id		path		string	true	"user id"
//	@Success		200		{object}	[]model.WatchlistItem
//	@Failure		400,401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/api/v1/user/{id}/watchlist [get]
func (m *UserHandler) GetWatchlist(c *fiber.Ctx) error {
	requesterId, _ := c.Locals(middleware.LocalUserId).(string)
	targetId := c.Params("id", "")

	act := service.ActRead
	if requesterId != targetId {
		act = service.ActReadAny
	}
	if _, err := m.userService.Authorize(c.UserContext(), requesterId, service.ObjWatchlist, act); err != nil {
		if errors.Is(err, model.ErrUnauthorized) {
			return response.ResponseError(c, response.NotOwnResource, model.CodeUnauthorized, fiber.StatusUnauthorized)
		}
		return response.ResponseAppError(c, err)
	}

	list, err := m.watchlistService.GetWatchlist(c.UserContext(), targetId)
	if err != nil {
		return response.ResponseAppError(c, err)
	}

	return response.ResponseOKWithData(c, "", fiber.Map{
		"list": list,
	})
}

// AddToWatchlist godoc
//
//	@Summary		Add To Watchlist
//	@Description	Add a movie to the logged-in user's watchlist. Adding twice keeps one entry.
//	@Tags			Watchlist
//	@Param			movie	body		model.WatchlistReq	true	"movie id"
//	@Success		200		{object}	response.ResponseOKModel
//	@Failure		400,401,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/api/v1/user/addtoWatchList [post]
func (m *UserHandler) AddToWatchlist(c *fiber.Ctx) error {
	var req model.WatchlistReq
	if err := c.BodyParser(&req); err != nil || req.MovieId == "" {
		return response.ResponseError(c, response.InvalidMovieId, model.CodeValidation, fiber.StatusBadRequest)
	}

	userId, _ := c.Locals(middleware.LocalUserId).(string)
	if err := m.watchlistService.AddToWatchlist(c.UserContext(), userId, req.MovieId); err != nil {
		return response.ResponseAppError(c, err)
	}

	return response.ResponseOK(c, "Added to watchlist")
}

// RemoveFromWatchlist godoc
//
//	@Summary		Remove From Watchlist
//	@Description	Remove a movie from the logged-in user's watchlist.
//	@Tags			Watchlist
//	@Param			movie	body		model.WatchlistReq	true	"movie id"
//	@Success		200		{object}	response.ResponseOKModel
//	@Failure		400,401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/api/v1/user/removeFromWatchList [post]
func (m *UserHandler) RemoveFromWatchlist(c *fiber.Ctx) error {
	var req model.WatchlistReq
	if err := c.BodyParser(&req); err != nil || req.MovieId == "" {
		return response.ResponseError(c, response.InvalidMovieId, model.CodeValidation, fiber.StatusBadRequest)
	}

	userId, _ := c.Locals(middleware.LocalUserId).(string)
	if err := m.watchlistService.RemoveFromWatchlist(c.UserContext(), userId, req.MovieId); err != nil {
		return response.ResponseAppError(c, err)
	}

	return response.ResponseOK(c, "Removed from watchlist")
}
