package service

import (
	"context"
	"fmt"
	"math"
	"movie_review/configs"
	"movie_review/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovieService_AddMovieValidation(t *testing.T) {
	env := newTestEnv(t)

	valid := model.AddMovieReq{
		Title:       "Heat",
		Genre:       []string{"Crime"},
		ReleaseYear: 1995,
		Director:    "Michael Mann",
		Cast:        []string{"Al Pacino"},
	}
	tests := []struct {
		name   string
		mutate func(r *model.AddMovieReq)
	}{
		{"missing title", func(r *model.AddMovieReq) { r.Title = "  " }},
		{"empty genre", func(r *model.AddMovieReq) { r.Genre = []string{} }},
		{"blank genre", func(r *model.AddMovieReq) { r.Genre = []string{" "} }},
		{"zero year", func(r *model.AddMovieReq) { r.ReleaseYear = 0 }},
		{"missing director", func(r *model.AddMovieReq) { r.Director = "" }},
		{"no cast", func(r *model.AddMovieReq) { r.Cast = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			_, err := env.movieService.AddMovie(context.Background(), req)
			assert.ErrorIs(t, err, model.ErrValidation)
		})
	}

	movie, err := env.movieService.AddMovie(context.Background(), valid)
	require.NoError(t, err)
	assert.Equal(t, 0.0, movie.AverageRating)
	assert.False(t, movie.CreatedAt.IsZero())
}

func TestMovieService_GetMovies(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		env.addMovie(t, fmt.Sprintf("Drama %d", i), "Drama", 2000+i%2)
	}
	env.addMovie(t, "Comedy", "Comedy", 2000)

	res, err := env.movieService.GetMovies(ctx, model.MovieFilter{Genre: "Drama"}, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), res.Total)
	assert.Equal(t, 3, res.Pages)
	assert.Len(t, res.Movies, 2)

	res, err = env.movieService.GetMovies(ctx, model.MovieFilter{Genre: "Drama"}, 3, 2)
	require.NoError(t, err)
	assert.Len(t, res.Movies, 1)

	res, err = env.movieService.GetMovies(ctx, model.MovieFilter{ReleaseYear: 2000}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(4), res.Total)
	assert.Equal(t, 1, res.Pages)

	res, err = env.movieService.GetMovies(ctx, model.MovieFilter{Genre: "Horror"}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Total)
	assert.Equal(t, 0, res.Pages)
	assert.Empty(t, res.Movies)

	_, err = env.movieService.GetMovies(ctx, model.MovieFilter{}, 0, 10)
	assert.ErrorIs(t, err, model.ErrValidation)
	_, err = env.movieService.GetMovies(ctx, model.MovieFilter{}, 1, 0)
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestMovieService_GetMoviesPageBeyondRange(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.addMovie(t, "Drama", "Drama", 2000)
	env.addMovie(t, "Comedy", "Comedy", 2001)

	for _, limit := range []int{1, 10, math.MaxInt} {
		res, err := env.movieService.GetMovies(ctx, model.MovieFilter{}, math.MaxInt, limit)
		require.NoError(t, err)
		assert.Equal(t, int64(2), res.Total)
		assert.Equal(t, math.MaxInt, res.Page)
		assert.NotNil(t, res.Movies)
		assert.Empty(t, res.Movies)
	}
}

func TestMovieService_LimitCappedByDbConfigs(t *testing.T) {
	env := newTestEnv(t)
	configs.SetDbConfigs(configs.DbConfigData{Title: configs.DbConfigsTitle, MoviesPageLimit: 2})
	for i := 0; i < 3; i++ {
		env.addMovie(t, fmt.Sprintf("Movie %d", i), "Drama", 2000)
	}

	res, err := env.movieService.GetMovies(context.Background(), model.MovieFilter{}, 1, 50)
	require.NoError(t, err)
	assert.Len(t, res.Movies, 2)
	assert.Equal(t, 2, res.Pages)
}

func TestMovieService_GetMovieById(t *testing.T) {
	env := newTestEnv(t)
	movie := env.addMovie(t, "Heat", "Crime", 1995)

	got, err := env.movieService.GetMovieById(context.Background(), movie.Id.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Heat", got.Title)

	_, err = env.movieService.GetMovieById(context.Background(), "nope")
	assert.ErrorIs(t, err, model.ErrMovieNotFound)
	_, err = env.movieService.GetMovieById(context.Background(), "65f000000000000000000000")
	assert.ErrorIs(t, err, model.ErrMovieNotFound)
}
