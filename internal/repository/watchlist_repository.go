package repository

import (
	"context"
	"movie_review/db/mongodb"
	"movie_review/model"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type IWatchlistRepository interface {
	AddToWatchlist(ctx context.Context, userId primitive.ObjectID, movieId primitive.ObjectID, dateAdded time.Time) error
	RemoveFromWatchlist(ctx context.Context, userId primitive.ObjectID, movieId primitive.ObjectID) (int64, error)
	GetWatchlist(ctx context.Context, userId primitive.ObjectID) ([]model.WatchlistEntry, error)
}

type WatchlistRepository struct {
	mongodb *mongo.Database
}

func NewWatchlistRepository(mongodb *mongo.Database) *WatchlistRepository {
	return &WatchlistRepository{mongodb: mongodb}
}

//------------------------------------------
//------------------------------------------

func (m *WatchlistRepository) collection() *mongo.Collection {
	return m.mongodb.Collection(mongodb.WatchlistCollection)
}

// AddToWatchlist upserts on (userId, movieId); adding twice keeps the first dateAdded.
func (m *WatchlistRepository) AddToWatchlist(ctx context.Context, userId primitive.ObjectID, movieId primitive.ObjectID, dateAdded time.Time) error {
	filter := bson.M{
		"userId":  userId,
		"movieId": movieId,
	}
	update := bson.M{
		"$setOnInsert": bson.M{
			"dateAdded": dateAdded,
		},
	}
	opts := options.Update().SetUpsert(true)

	_, err := m.collection().UpdateOne(ctx, filter, update, opts)
	if mongo.IsDuplicateKeyError(err) {
		// concurrent upsert of the same pair, the entry exists
		return nil
	}
	return err
}

func (m *WatchlistRepository) RemoveFromWatchlist(ctx context.Context, userId primitive.ObjectID, movieId primitive.ObjectID) (int64, error) {
	filter := bson.M{
		"userId":  userId,
		"movieId": movieId,
	}

	res, err := m.collection().DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (m *WatchlistRepository) GetWatchlist(ctx context.Context, userId primitive.ObjectID) ([]model.WatchlistEntry, error) {
	opts := options.Find().SetSort(bson.D{{"dateAdded", -1}, {"_id", -1}})
	cursor, err := m.collection().Find(ctx, bson.M{"userId": userId}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := make([]model.WatchlistEntry, 0)
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
