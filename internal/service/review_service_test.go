package service

import (
	"context"
	"movie_review/model"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestReviewService_AverageAfterEachWrite(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.signup(t, "alice")
	movie := env.addMovie(t, "Heat", "Crime", 1995)

	expected := []float64{5, 4, 4, 3.5}
	for i, rating := range []int{5, 3, 4, 2} {
		_, average, err := env.reviewService.AddReview(ctx, user.User.Id.Hex(), movie.Id.Hex(), model.AddReviewReq{Rating: rating})
		require.NoError(t, err)
		assert.InDelta(t, expected[i], average, 1e-9)

		stored, err := env.movies.GetMovieById(ctx, movie.Id)
		require.NoError(t, err)
		assert.InDelta(t, expected[i], stored.AverageRating, 1e-9)
	}
}

func TestReviewService_RejectsRatingOutOfRange(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.signup(t, "alice")
	movie := env.addMovie(t, "Heat", "Crime", 1995)

	_, _, err := env.reviewService.AddReview(ctx, user.User.Id.Hex(), movie.Id.Hex(), model.AddReviewReq{Rating: 4})
	require.NoError(t, err)

	for _, rating := range []int{0, 6, -1} {
		_, _, err = env.reviewService.AddReview(ctx, user.User.Id.Hex(), movie.Id.Hex(), model.AddReviewReq{Rating: rating})
		assert.ErrorIs(t, err, model.ErrValidation)
	}

	reviews, err := env.reviews.GetMovieReviews(ctx, movie.Id)
	require.NoError(t, err)
	assert.Len(t, reviews, 1)

	stored, err := env.movies.GetMovieById(ctx, movie.Id)
	require.NoError(t, err)
	assert.Equal(t, 4.0, stored.AverageRating)
}

func TestReviewService_UnknownMovie(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.signup(t, "alice")

	_, _, err := env.reviewService.AddReview(ctx, user.User.Id.Hex(), primitive.NewObjectID().Hex(), model.AddReviewReq{Rating: 3})
	assert.ErrorIs(t, err, model.ErrMovieNotFound)

	_, _, err = env.reviewService.AddReview(ctx, user.User.Id.Hex(), "bad-id", model.AddReviewReq{Rating: 3})
	assert.ErrorIs(t, err, model.ErrMovieNotFound)
}

func TestReviewService_ConcurrentReviewsKeepExactMean(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.signup(t, "alice")
	movie := env.addMovie(t, "Heat", "Crime", 1995)

	const n = 50
	sum := 0
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		rating := i%5 + 1
		sum += rating
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := env.reviewService.AddReview(ctx, user.User.Id.Hex(), movie.Id.Hex(), model.AddReviewReq{Rating: rating})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	stored, err := env.movies.GetMovieById(ctx, movie.Id)
	require.NoError(t, err)
	assert.InDelta(t, float64(sum)/n, stored.AverageRating, 1e-9)

	reviews, err := env.reviews.GetMovieReviews(ctx, movie.Id)
	require.NoError(t, err)
	assert.Len(t, reviews, n)
}

func TestReviewService_GetMovieReviewsResolvesAuthors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.signup(t, "alice")
	movie := env.addMovie(t, "Heat", "Crime", 1995)

	_, _, err := env.reviewService.AddReview(ctx, alice.User.Id.Hex(), movie.Id.Hex(), model.AddReviewReq{Rating: 5, ReviewText: " great "})
	require.NoError(t, err)

	ghost := primitive.NewObjectID()
	_, _, err = env.reviewService.AddReview(ctx, ghost.Hex(), movie.Id.Hex(), model.AddReviewReq{Rating: 1})
	require.NoError(t, err)

	reviews, err := env.reviewService.GetMovieReviews(ctx, movie.Id.Hex())
	require.NoError(t, err)
	require.Len(t, reviews, 2)

	byAuthor := map[primitive.ObjectID]model.ReviewWithUser{}
	for _, r := range reviews {
		byAuthor[r.User.Id] = r
	}
	assert.Equal(t, "alice", byAuthor[alice.User.Id].User.Username)
	assert.Equal(t, "great", byAuthor[alice.User.Id].ReviewText)
	assert.Empty(t, byAuthor[ghost].User.Username)

	empty, err := env.reviewService.GetMovieReviews(ctx, primitive.NewObjectID().Hex())
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
