package handler

import (
	"context"
	"movie_review/model"

	"github.com/stretchr/testify/mock"
)

type mockMovieService struct {
	mock.Mock
}

func (m *mockMovieService) GetMovies(ctx context.Context, filter model.MovieFilter, page int, limit int) (*model.MoviesRes, error) {
	args := m.Called(ctx, filter, page, limit)
	if res := args.Get(0); res != nil {
		return res.(*model.MoviesRes), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMovieService) GetMovieById(ctx context.Context, movieId string) (*model.Movie, error) {
	args := m.Called(ctx, movieId)
	if res := args.Get(0); res != nil {
		return res.(*model.Movie), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMovieService) AddMovie(ctx context.Context, req model.AddMovieReq) (*model.Movie, error) {
	args := m.Called(ctx, req)
	if res := args.Get(0); res != nil {
		return res.(*model.Movie), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockReviewService struct {
	mock.Mock
}

func (m *mockReviewService) AddReview(ctx context.Context, userId string, movieId string, req model.AddReviewReq) (*model.Review, float64, error) {
	args := m.Called(ctx, userId, movieId, req)
	if res := args.Get(0); res != nil {
		return res.(*model.Review), args.Get(1).(float64), args.Error(2)
	}
	return nil, 0, args.Error(2)
}

func (m *mockReviewService) GetMovieReviews(ctx context.Context, movieId string) ([]model.ReviewWithUser, error) {
	args := m.Called(ctx, movieId)
	if res := args.Get(0); res != nil {
		return res.([]model.ReviewWithUser), args.Error(1)
	}
	return nil, args.Error(1)
}
