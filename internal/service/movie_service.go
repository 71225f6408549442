package service

import (
	"context"
	"math"
	"movie_review/configs"
	"movie_review/internal/repository"
	"movie_review/model"
	"movie_review/pkg/validation"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DefaultMoviesPage  = 1
	DefaultMoviesLimit = 10
)

type IMovieService interface {
	GetMovies(ctx context.Context, filter model.MovieFilter, page int, limit int) (*model.MoviesRes, error)
	GetMovieById(ctx context.Context, movieId string) (*model.Movie, error)
	AddMovie(ctx context.Context, req model.AddMovieReq) (*model.Movie, error)
}

type MovieService struct {
	movieRepo repository.IMovieRepository
}

func NewMovieService(movieRepo repository.IMovieRepository) *MovieService {
	return &MovieService{
		movieRepo: movieRepo,
	}
}

//------------------------------------------
//------------------------------------------

func (m *MovieService) GetMovies(ctx context.Context, filter model.MovieFilter, page int, limit int) (*model.MoviesRes, error) {
	if page < 1 {
		return nil, model.NewValidationError("page", "must be at least 1")
	}
	if limit < 1 {
		return nil, model.NewValidationError("limit", "must be at least 1")
	}
	if filter.ReleaseYear < 0 {
		return nil, model.NewValidationError("year", "must be greater than 0")
	}
	limit = min(limit, configs.GetDbConfigs().MoviesPageLimit)
	filter.Genre = strings.TrimSpace(filter.Genre)

	// pages past the int64 range land beyond every result set
	skip := int64(math.MaxInt64)
	if int64(page-1) <= math.MaxInt64/int64(limit) {
		skip = int64(page-1) * int64(limit)
	}
	movies, total, err := m.movieRepo.GetMovies(ctx, filter, skip, int64(limit))
	if err != nil {
		return nil, err
	}

	return &model.MoviesRes{
		Total:  total,
		Page:   page,
		Pages:  int(math.Ceil(float64(total) / float64(limit))),
		Movies: movies,
	}, nil
}

func (m *MovieService) GetMovieById(ctx context.Context, movieId string) (*model.Movie, error) {
	id, err := primitive.ObjectIDFromHex(movieId)
	if err != nil {
		return nil, model.ErrMovieNotFound
	}
	return m.movieRepo.GetMovieById(ctx, id)
}

func (m *MovieService) AddMovie(ctx context.Context, req model.AddMovieReq) (*model.Movie, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Director = strings.TrimSpace(req.Director)
	req.Genre = trimAll(req.Genre)
	req.Cast = trimAll(req.Cast)
	if err := validation.ValidateStruct(req); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	movie := &model.Movie{
		Id:            primitive.NewObjectID(),
		Title:         req.Title,
		Genre:         req.Genre,
		ReleaseYear:   req.ReleaseYear,
		Director:      req.Director,
		Cast:          req.Cast,
		Synopsis:      strings.TrimSpace(req.Synopsis),
		PosterUrl:     strings.TrimSpace(req.PosterUrl),
		AverageRating: 0,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := m.movieRepo.CreateMovie(ctx, movie); err != nil {
		return nil, err
	}
	return movie, nil
}

func trimAll(values []string) []string {
	if values == nil {
		return nil
	}
	result := make([]string, len(values))
	for i, v := range values {
		result[i] = strings.TrimSpace(v)
	}
	return result
}
