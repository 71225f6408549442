package service

import (
	"context"
	"movie_review/configs"
	"movie_review/internal/repository/memory"
	"movie_review/model"
	"movie_review/util"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testEnv struct {
	users     *memory.UserRepository
	movies    *memory.MovieRepository
	reviews   *memory.ReviewRepository
	watchlist *memory.WatchlistRepository
	tokens    *util.TokenManager

	userService      *UserService
	movieService     *MovieService
	reviewService    *ReviewService
	watchlistService *WatchlistService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	tokens, err := util.NewTokenManager("test-secret", time.Hour)
	require.NoError(t, err)
	access, err := NewAccessService()
	require.NoError(t, err)
	cache := NewCacheService(nil)

	env := &testEnv{
		users:     memory.NewUserRepository(),
		movies:    memory.NewMovieRepository(),
		reviews:   memory.NewReviewRepository(),
		watchlist: memory.NewWatchlistRepository(),
		tokens:    tokens,
	}
	env.userService = NewUserService(env.users, tokens, access, cache, bcrypt.MinCost)
	env.movieService = NewMovieService(env.movies)
	env.reviewService = NewReviewService(env.reviews, env.movies, env.users, NewKeyedMutexLocker(), cache)
	env.watchlistService = NewWatchlistService(env.watchlist, env.movies)

	previous := configs.GetDbConfigs()
	configs.SetDbConfigs(configs.DbConfigData{Title: configs.DbConfigsTitle})
	t.Cleanup(func() {
		configs.SetDbConfigs(previous)
	})
	return env
}

func (e *testEnv) signup(t *testing.T, username string) *model.AuthRes {
	t.Helper()
	res, err := e.userService.Signup(context.Background(), model.SignupReq{
		Username: username,
		Email:    username + "@example.com",
		Password: "secret",
	})
	require.NoError(t, err)
	return res
}

func (e *testEnv) addMovie(t *testing.T, title string, genre string, year int) *model.Movie {
	t.Helper()
	movie, err := e.movieService.AddMovie(context.Background(), model.AddMovieReq{
		Title:       title,
		Genre:       []string{genre},
		ReleaseYear: year,
		Director:    "Director",
		Cast:        []string{"Actor"},
	})
	require.NoError(t, err)
	return movie
}

func (e *testEnv) createAdmin(t *testing.T) (*model.User, string) {
	t.Helper()
	admin := &model.User{
		Username: "admin",
		Email:    "admin@example.com",
		Password: "not-a-hash",
		Role:     model.RoleAdmin,
	}
	require.NoError(t, e.users.CreateUser(context.Background(), admin))
	token, err := e.tokens.CreateToken(admin.Id.Hex())
	require.NoError(t, err)
	return admin, token
}
