package repository

import (
	"context"
	"errors"
	"movie_review/db/mongodb"
	"movie_review/model"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type IMovieRepository interface {
	CreateMovie(ctx context.Context, movie *model.Movie) error
	GetMovieById(ctx context.Context, id primitive.ObjectID) (*model.Movie, error)
	GetMoviesByIds(ctx context.Context, ids []primitive.ObjectID) ([]model.Movie, error)
	GetMovies(ctx context.Context, filter model.MovieFilter, skip int64, limit int64) ([]model.Movie, int64, error)
	UpdateAverageRating(ctx context.Context, id primitive.ObjectID, averageRating float64) error
}

type MovieRepository struct {
	mongodb *mongo.Database
}

func NewMovieRepository(mongodb *mongo.Database) *MovieRepository {
	return &MovieRepository{mongodb: mongodb}
}

//------------------------------------------
//------------------------------------------

func (m *MovieRepository) collection() *mongo.Collection {
	return m.mongodb.Collection(mongodb.MoviesCollection)
}

func (m *MovieRepository) CreateMovie(ctx context.Context, movie *model.Movie) error {
	if movie.Id.IsZero() {
		movie.Id = primitive.NewObjectID()
	}
	_, err := m.collection().InsertOne(ctx, movie)
	return err
}

func (m *MovieRepository) GetMovieById(ctx context.Context, id primitive.ObjectID) (*model.Movie, error) {
	var result model.Movie
	err := m.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrMovieNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (m *MovieRepository) GetMoviesByIds(ctx context.Context, ids []primitive.ObjectID) ([]model.Movie, error) {
	result := make([]model.Movie, 0, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	cursor, err := m.collection().Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (m *MovieRepository) GetMovies(ctx context.Context, filter model.MovieFilter, skip int64, limit int64) ([]model.Movie, int64, error) {
	query := bson.M{}
	if filter.Genre != "" {
		// matches when the genre array contains the value
		query["genre"] = filter.Genre
	}
	if filter.ReleaseYear != 0 {
		query["releaseYear"] = filter.ReleaseYear
	}

	total, err := m.collection().CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	skip = max(skip, 0)
	if skip >= total || limit <= 0 {
		return []model.Movie{}, total, nil
	}
	limit = min(limit, total-skip)

	opts := options.Find().
		SetSort(bson.D{{"createdAt", -1}, {"_id", -1}}).
		SetSkip(skip).
		SetLimit(limit)
	cursor, err := m.collection().Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	movies := make([]model.Movie, 0, limit)
	if err = cursor.All(ctx, &movies); err != nil {
		return nil, 0, err
	}
	return movies, total, nil
}

func (m *MovieRepository) UpdateAverageRating(ctx context.Context, id primitive.ObjectID, averageRating float64) error {
	update := bson.M{
		"$set": bson.M{
			"averageRating": averageRating,
			"updatedAt":     time.Now().UTC(),
		},
	}

	res, err := m.collection().UpdateByID(ctx, id, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return model.ErrMovieNotFound
	}
	return nil
}
