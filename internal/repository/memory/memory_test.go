package memory

import (
	"bytes"
	"context"
	"math"
	"movie_review/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserRepository_UniqueEmailAndUsername(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	first := &model.User{Username: "alice", Email: "alice@example.com", Password: "hash"}
	require.NoError(t, repo.CreateUser(ctx, first))
	assert.False(t, first.Id.IsZero())

	err := repo.CreateUser(ctx, &model.User{Username: "other", Email: "alice@example.com"})
	assert.ErrorIs(t, err, model.ErrDuplicateUser)

	err = repo.CreateUser(ctx, &model.User{Username: "alice", Email: "other@example.com"})
	assert.ErrorIs(t, err, model.ErrDuplicateUser)

	found, err := repo.GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "hash", found.Password)

	_, err = repo.GetUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}

func TestUserRepository_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	alice := &model.User{Username: "alice", Email: "alice@example.com", Password: "hash", Role: model.RoleUser}
	bob := &model.User{Username: "bob", Email: "bob@example.com"}
	require.NoError(t, repo.CreateUser(ctx, alice))
	require.NoError(t, repo.CreateUser(ctx, bob))

	taken := "bob@example.com"
	_, err := repo.UpdateUserProfile(ctx, alice.Id, model.ProfileUpdate{Email: &taken})
	assert.ErrorIs(t, err, model.ErrDuplicateUser)

	name := "alice2"
	updated, err := repo.UpdateUserProfile(ctx, alice.Id, model.ProfileUpdate{Username: &name})
	require.NoError(t, err)
	assert.Equal(t, "alice2", updated.Username)
	assert.Equal(t, "alice@example.com", updated.Email)
	assert.Equal(t, "hash", updated.Password)
	assert.Equal(t, model.RoleUser, updated.Role)

	summaries, err := repo.GetUsersByIds(ctx, []primitive.ObjectID{alice.Id, primitive.NewObjectID()})
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Empty(t, summaries[0].Password)
}

func TestMovieRepository_FilterAndPaginate(t *testing.T) {
	ctx := context.Background()
	repo := NewMovieRepository()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, m := range []model.Movie{
		{Title: "A", Genre: []string{"Drama"}, ReleaseYear: 1999},
		{Title: "B", Genre: []string{"Drama", "Crime"}, ReleaseYear: 2001},
		{Title: "C", Genre: []string{"Comedy"}, ReleaseYear: 1999},
	} {
		m.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.CreateMovie(ctx, &m))
	}

	all, total, err := repo.GetMovies(ctx, model.MovieFilter{}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, "C", all[0].Title)

	drama, total, err := repo.GetMovies(ctx, model.MovieFilter{Genre: "Drama"}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, drama, 2)

	page, total, err := repo.GetMovies(ctx, model.MovieFilter{ReleaseYear: 1999}, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, page, 1)
	assert.Equal(t, "A", page[0].Title)

	empty, total, err := repo.GetMovies(ctx, model.MovieFilter{}, 10, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestMovieRepository_UpdateAverageRating(t *testing.T) {
	ctx := context.Background()
	repo := NewMovieRepository()

	movie := &model.Movie{Title: "A", Genre: []string{"Drama"}, ReleaseYear: 1999}
	require.NoError(t, repo.CreateMovie(ctx, movie))
	require.NoError(t, repo.UpdateAverageRating(ctx, movie.Id, 3.5))

	got, err := repo.GetMovieById(ctx, movie.Id)
	require.NoError(t, err)
	assert.Equal(t, 3.5, got.AverageRating)

	err = repo.UpdateAverageRating(ctx, primitive.NewObjectID(), 1)
	assert.ErrorIs(t, err, model.ErrMovieNotFound)
}

func TestReviewRepository_AverageIsMean(t *testing.T) {
	ctx := context.Background()
	repo := NewReviewRepository()
	movieId := primitive.NewObjectID()

	avg, err := repo.GetAverageRating(ctx, movieId)
	require.NoError(t, err)
	assert.Equal(t, 0.0, avg)

	for _, r := range []int{5, 3, 4} {
		require.NoError(t, repo.CreateReview(ctx, &model.Review{MovieId: movieId, Rating: r, Timestamp: time.Now()}))
	}
	require.NoError(t, repo.CreateReview(ctx, &model.Review{MovieId: primitive.NewObjectID(), Rating: 1}))

	avg, err = repo.GetAverageRating(ctx, movieId)
	require.NoError(t, err)
	assert.Equal(t, 4.0, avg)

	reviews, err := repo.GetMovieReviews(ctx, movieId)
	require.NoError(t, err)
	assert.Len(t, reviews, 3)
}

func TestWatchlistRepository_SetSemantics(t *testing.T) {
	ctx := context.Background()
	repo := NewWatchlistRepository()
	userId, movieId := primitive.NewObjectID(), primitive.NewObjectID()
	first := time.Now().Add(-time.Hour)

	require.NoError(t, repo.AddToWatchlist(ctx, userId, movieId, first))
	require.NoError(t, repo.AddToWatchlist(ctx, userId, movieId, time.Now()))

	entries, err := repo.GetWatchlist(ctx, userId)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, first, entries[0].DateAdded)

	removed, err := repo.RemoveFromWatchlist(ctx, userId, movieId)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	removed, err = repo.RemoveFromWatchlist(ctx, userId, movieId)
	require.NoError(t, err)
	assert.Equal(t, int64(0), removed)

	entries, err = repo.GetWatchlist(ctx, userId)
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestMovieRepository_OutOfRangeWindow(t *testing.T) {
	ctx := context.Background()
	repo := NewMovieRepository()
	require.NoError(t, repo.CreateMovie(ctx, &model.Movie{Title: "A", CreatedAt: time.Now()}))

	movies, total, err := repo.GetMovies(ctx, model.MovieFilter{}, -10, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, movies, 1)

	movies, total, err = repo.GetMovies(ctx, model.MovieFilter{}, math.MaxInt64, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.NotNil(t, movies)
	assert.Empty(t, movies)

	movies, _, err = repo.GetMovies(ctx, model.MovieFilter{}, 0, math.MaxInt64)
	require.NoError(t, err)
	assert.Len(t, movies, 1)
}

func TestWatchlistRepository_SameDateOrderedById(t *testing.T) {
	ctx := context.Background()
	repo := NewWatchlistRepository()
	userId := primitive.NewObjectID()
	added := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	movieIds := make([]primitive.ObjectID, 5)
	for i := range movieIds {
		movieIds[i] = primitive.NewObjectID()
		require.NoError(t, repo.AddToWatchlist(ctx, userId, movieIds[i], added))
	}

	for n := 0; n < 3; n++ {
		entries, err := repo.GetWatchlist(ctx, userId)
		require.NoError(t, err)
		require.Len(t, entries, 5)
		for i := 1; i < len(entries); i++ {
			assert.Positive(t, bytes.Compare(entries[i-1].Id[:], entries[i].Id[:]))
		}
		// entries are created in insertion order, so the last movie comes first
		assert.Equal(t, movieIds[4], entries[0].MovieId)
	}
}
