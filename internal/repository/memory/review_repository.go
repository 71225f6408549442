package memory

import (
	"context"
	"movie_review/model"
	"slices"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewRepository struct {
	mu      sync.RWMutex
	reviews []model.Review
}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{reviews: make([]model.Review, 0)}
}

//------------------------------------------
//------------------------------------------

func (m *ReviewRepository) CreateReview(_ context.Context, review *model.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if review.Id.IsZero() {
		review.Id = primitive.NewObjectID()
	}
	m.reviews = append(m.reviews, *review)
	return nil
}

func (m *ReviewRepository) GetMovieReviews(_ context.Context, movieId primitive.ObjectID) ([]model.Review, error) {
	m.mu.RLock()
	result := make([]model.Review, 0)
	for _, r := range m.reviews {
		if r.MovieId == movieId {
			result = append(result, r)
		}
	}
	m.mu.RUnlock()

	// newest first, insertion order breaks ties
	slices.Reverse(result)
	slices.SortStableFunc(result, func(a, b model.Review) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	return result, nil
}

func (m *ReviewRepository) GetAverageRating(_ context.Context, movieId primitive.ObjectID) (float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sum, count := 0, 0
	for _, r := range m.reviews {
		if r.MovieId == movieId {
			sum += r.Rating
			count++
		}
	}
	if count == 0 {
		return 0, nil
	}
	return float64(sum) / float64(count), nil
}
