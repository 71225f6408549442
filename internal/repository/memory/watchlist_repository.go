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

type watchlistKey struct {
	userId  primitive.ObjectID
	movieId primitive.ObjectID
}

type WatchlistRepository struct {
	mu      sync.RWMutex
	entries map[watchlistKey]model.WatchlistEntry
}

func NewWatchlistRepository() *WatchlistRepository {
	return &WatchlistRepository{entries: make(map[watchlistKey]model.WatchlistEntry)}
}

//------------------------------------------
//------------------------------------------

func (m *WatchlistRepository) AddToWatchlist(_ context.Context, userId primitive.ObjectID, movieId primitive.ObjectID, dateAdded time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := watchlistKey{userId: userId, movieId: movieId}
	if _, ok := m.entries[key]; ok {
		return nil
	}
	m.entries[key] = model.WatchlistEntry{
		Id:        primitive.NewObjectID(),
		UserId:    userId,
		MovieId:   movieId,
		DateAdded: dateAdded,
	}
	return nil
}

func (m *WatchlistRepository) RemoveFromWatchlist(_ context.Context, userId primitive.ObjectID, movieId primitive.ObjectID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := watchlistKey{userId: userId, movieId: movieId}
	if _, ok := m.entries[key]; !ok {
		return 0, nil
	}
	delete(m.entries, key)
	return 1, nil
}

func (m *WatchlistRepository) GetWatchlist(_ context.Context, userId primitive.ObjectID) ([]model.WatchlistEntry, error) {
	m.mu.RLock()
	result := make([]model.WatchlistEntry, 0)
	for key, entry := range m.entries {
		if key.userId == userId {
			result = append(result, entry)
		}
	}
	m.mu.RUnlock()

	slices.SortFunc(result, func(a, b model.WatchlistEntry) int {
		if c := b.DateAdded.Compare(a.DateAdded); c != 0 {
			return c
		}
		return bytes.Compare(b.Id[:], a.Id[:])
	})
	return result, nil
}
