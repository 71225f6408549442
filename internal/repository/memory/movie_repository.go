package memory

import (
	"bytes"
	"context"
	"movie_review/model"
	"slices"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MovieRepository struct {
	mu     sync.RWMutex
	movies map[primitive.ObjectID]model.Movie
}

func NewMovieRepository() *MovieRepository {
	return &MovieRepository{movies: make(map[primitive.ObjectID]model.Movie)}
}

//------------------------------------------
//------------------------------------------

func (m *MovieRepository) CreateMovie(_ context.Context, movie *model.Movie) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if movie.Id.IsZero() {
		movie.Id = primitive.NewObjectID()
	}
	m.movies[movie.Id] = cloneMovie(*movie)
	return nil
}

func (m *MovieRepository) GetMovieById(_ context.Context, id primitive.ObjectID) (*model.Movie, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	movie, ok := m.movies[id]
	if !ok {
		return nil, model.ErrMovieNotFound
	}
	movie = cloneMovie(movie)
	return &movie, nil
}

func (m *MovieRepository) GetMoviesByIds(_ context.Context, ids []primitive.ObjectID) ([]model.Movie, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]model.Movie, 0, len(ids))
	for _, id := range ids {
		if movie, ok := m.movies[id]; ok {
			result = append(result, cloneMovie(movie))
		}
	}
	return result, nil
}

func (m *MovieRepository) GetMovies(_ context.Context, filter model.MovieFilter, skip int64, limit int64) ([]model.Movie, int64, error) {
	m.mu.RLock()
	matched := make([]model.Movie, 0)
	for _, movie := range m.movies {
		if filter.Genre != "" && !slices.Contains(movie.Genre, filter.Genre) {
			continue
		}
		if filter.ReleaseYear != 0 && movie.ReleaseYear != filter.ReleaseYear {
			continue
		}
		matched = append(matched, cloneMovie(movie))
	}
	m.mu.RUnlock()

	slices.SortFunc(matched, func(a, b model.Movie) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return bytes.Compare(b.Id[:], a.Id[:])
	})

	total := int64(len(matched))
	skip = max(skip, 0)
	limit = max(limit, 0)
	if skip >= total {
		return []model.Movie{}, total, nil
	}
	end := total
	if limit < total-skip {
		end = skip + limit
	}
	return matched[skip:end], total, nil
}

func (m *MovieRepository) UpdateAverageRating(_ context.Context, id primitive.ObjectID, averageRating float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	movie, ok := m.movies[id]
	if !ok {
		return model.ErrMovieNotFound
	}
	movie.AverageRating = averageRating
	movie.UpdatedAt = time.Now().UTC()
	m.movies[id] = movie
	return nil
}

func cloneMovie(movie model.Movie) model.Movie {
	movie.Genre = slices.Clone(movie.Genre)
	movie.Cast = slices.Clone(movie.Cast)
	return movie
}
