package service

import (
	"context"
	"movie_review/internal/repository"
	"movie_review/model"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type IWatchlistService interface {
	AddToWatchlist(ctx context.Context, userId string, movieId string) error
	RemoveFromWatchlist(ctx context.Context, userId string, movieId string) error
	GetWatchlist(ctx context.Context, userId string) ([]model.WatchlistItem, error)
}

type WatchlistService struct {
	watchlistRepo repository.IWatchlistRepository
	movieRepo     repository.IMovieRepository
}

func NewWatchlistService(watchlistRepo repository.IWatchlistRepository, movieRepo repository.IMovieRepository) *WatchlistService {
	return &WatchlistService{
		watchlistRepo: watchlistRepo,
		movieRepo:     movieRepo,
	}
}

//------------------------------------------
//------------------------------------------

func (s *WatchlistService) AddToWatchlist(ctx context.Context, userId string, movieId string) error {
	uid, mid, err := parseWatchlistIds(userId, movieId)
	if err != nil {
		return err
	}
	if _, err = s.movieRepo.GetMovieById(ctx, mid); err != nil {
		return err
	}
	return s.watchlistRepo.AddToWatchlist(ctx, uid, mid, time.Now().UTC())
}

// RemoveFromWatchlist succeeds even when the movie was not listed.
func (s *WatchlistService) RemoveFromWatchlist(ctx context.Context, userId string, movieId string) error {
	uid, mid, err := parseWatchlistIds(userId, movieId)
	if err != nil {
		return err
	}
	_, err = s.watchlistRepo.RemoveFromWatchlist(ctx, uid, mid)
	return err
}

func (s *WatchlistService) GetWatchlist(ctx context.Context, userId string) ([]model.WatchlistItem, error) {
	uid, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return nil, model.NewValidationError("id", "must be a valid id")
	}
	entries, err := s.watchlistRepo.GetWatchlist(ctx, uid)
	if err != nil {
		return nil, err
	}
	result := make([]model.WatchlistItem, 0, len(entries))
	if len(entries) == 0 {
		return result, nil
	}

	movieIds := make([]primitive.ObjectID, len(entries))
	for i, e := range entries {
		movieIds[i] = e.MovieId
	}
	movies, err := s.movieRepo.GetMoviesByIds(ctx, movieIds)
	if err != nil {
		return nil, err
	}
	moviesMap := make(map[primitive.ObjectID]model.Movie, len(movies))
	for _, m := range movies {
		moviesMap[m.Id] = m
	}

	for _, e := range entries {
		movie, ok := moviesMap[e.MovieId]
		if !ok {
			continue
		}
		result = append(result, model.WatchlistItem{
			Id:        e.Id,
			UserId:    e.UserId,
			Movie:     movie,
			DateAdded: e.DateAdded,
		})
	}
	return result, nil
}

func parseWatchlistIds(userId string, movieId string) (primitive.ObjectID, primitive.ObjectID, error) {
	uid, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, model.ErrUnauthorized
	}
	mid, err := primitive.ObjectIDFromHex(strings.TrimSpace(movieId))
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, model.NewValidationError("movieId", "must be a valid id")
	}
	return uid, mid, nil
}
