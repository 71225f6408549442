package handler

import (
	"movie_review/api/middleware"
	"movie_review/internal/service"
	"movie_review/model"
	"movie_review/pkg/response"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type IMovieHandler interface {
	GetMovies(c *fiber.Ctx) error
	GetMovieById(c *fiber.Ctx) error
	AddMovie(c *fiber.Ctx) error
	GetMovieReviews(c *fiber.Ctx) error
	AddReview(c *fiber.Ctx) error
}

type MovieHandler struct {
	movieService  service.IMovieService
	reviewService service.IReviewService
}

func NewMovieHandler(movieService service.IMovieService, reviewService service.IReviewService) *MovieHandler {
	return &MovieHandler{
		movieService:  movieService,
		reviewService: reviewService,
	}
}

//------------------------------------------
//------------------------------------------

// GetMovies godoc
//
//	@Summary		Get Movies
//	@Description	Paginated movies, filtered by exact genre and release year.
//	@Tags			Movie
//	@Param			page	query		int		false	"page, starts at 1"
//	@Param			limit	query		int		false	"page size"
//	@Param			genre	query		string	false	"genre"
//	@Param			year	query		int		false	"release year"
//	@Success		200		{object}	model.MoviesRes
//	@Failure		400		{object}	response.ResponseErrorModel
//	@Router			/api/v1/movie/getMovies [get]
func (m *MovieHandler) GetMovies(c *fiber.Ctx) error {
	page, ok := queryPositiveInt(c, "page", service.DefaultMoviesPage)
	if !ok {
		return response.ResponseError(c, response.InvalidPageArgs, model.CodeValidation, fiber.StatusBadRequest)
	}
	limit, ok := queryPositiveInt(c, "limit", service.DefaultMoviesLimit)
	if !ok {
		return response.ResponseError(c, response.InvalidPageArgs, model.CodeValidation, fiber.StatusBadRequest)
	}
	year := 0
	if c.Query("year", "") != "" {
		if year, ok = queryPositiveInt(c, "year", 0); !ok {
			return response.ResponseError(c, response.InvalidYear, model.CodeValidation, fiber.StatusBadRequest)
		}
	}

	filter := model.MovieFilter{
		Genre:       c.Query("genre", ""),
		ReleaseYear: year,
	}
	res, err := m.movieService.GetMovies(c.UserContext(), filter, page, limit)
	if err != nil {
		return response.ResponseAppError(c, err)
	}

	return c.JSON(res)
}

// GetMovieById godoc
//
//	@Summary		Get Movie
//	@Description	Movie with its reviews, newest first.
//	@Tags			Movie
//	@Param			id		path		string	true	"movie id"
//	@Success		200		{object}	model.Movie
//	@Failure		404		{object}	response.ResponseErrorModel
//	@Router			/api/v1/movie/getMoviebyId/{id} [get]
func (m *MovieHandler) GetMovieById(c *fiber.Ctx) error {
	id := c.Params("id", "")
	movie, err := m.movieService.GetMovieById(c.UserContext(), id)
	if err != nil {
		return response.ResponseAppError(c, err)
	}

	reviews, err := m.reviewService.GetMovieReviews(c.UserContext(), id)
	if err != nil {
		return response.ResponseAppError(c, err)
	}

	return response.ResponseOKWithData(c, "", fiber.Map{
		"movie":  movie,
		"review": reviews,
	})
}

// AddMovie godoc
//
//	@Summary		Add Movie
//	@Description	Add a movie to the catalog. Admin only.
//	@Tags			Movie
//	@Param			movie	body		model.AddMovieReq	true	"movie"
//	@Success		201		{object}	model.Movie
//	@Failure		400,401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/api/v1/movie/addMovie [post]
func (m *MovieHandler) AddMovie(c *fiber.Ctx) error {
	var req model.AddMovieReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, model.CodeValidation, fiber.StatusBadRequest)
	}

	movie, err := m.movieService.AddMovie(c.UserContext(), req)
	if err != nil {
		return response.ResponseAppError(c, err)
	}

	return response.ResponseCreated(c, "Movie added", fiber.Map{
		"movie": movie,
	})
}

// GetMovieReviews godoc
//
//	@Summary		Get Reviews
//	@Description	Reviews of a movie with their authors, newest first.
//	@Tags			Review
//	@Param			id		path		string	true	"movie id"
//	@Success		200		{object}	[]model.ReviewWithUser
//	@Failure		404		{object}	response.ResponseErrorModel
//	@Router			/api/v1/movie/{id}/reviews [get]
func (m *MovieHandler) GetMovieReviews(c *fiber.Ctx) error {
	reviews, err := m.reviewService.GetMovieReviews(c.UserContext(), c.Params("id", ""))
	if err != nil {
		return response.ResponseAppError(c, err)
	}

	return response.ResponseOKWithData(c, "", fiber.Map{
		"review": reviews,
	})
}

// AddReview godoc
//
//	@Summary		Add Review
//	@Description	Rate a movie from 1 to 5, the movie's average rating is recomputed.
//	@Tags			Review
//	@Param			id			path		string				true	"movie id"
//	@Param			review		body		model.AddReviewReq	true	"review"
//	@Success		200			{object}	response.ResponseOKModel
//	@Failure		400,401,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/api/v1/movie/{id}/review [post]
func (m *MovieHandler) AddReview(c *fiber.Ctx) error {
	var req model.AddReviewReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, model.CodeValidation, fiber.StatusBadRequest)
	}

	userId, _ := c.Locals(middleware.LocalUserId).(string)
	review, average, err := m.reviewService.AddReview(c.UserContext(), userId, c.Params("id", ""), req)
	if err != nil {
		return response.ResponseAppError(c, err)
	}

	return response.ResponseOKWithData(c, "Review added", fiber.Map{
		"review":        review,
		"averageRating": average,
	})
}

func queryPositiveInt(c *fiber.Ctx, key string, fallback int) (int, bool) {
	value := c.Query(key, "")
	if value == "" {
		return fallback, true
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
