package repository

import (
	"context"
	"movie_review/db/mongodb"
	"movie_review/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type IReviewRepository interface {
	CreateReview(ctx context.Context, review *model.Review) error
	GetMovieReviews(ctx context.Context, movieId primitive.ObjectID) ([]model.Review, error)
	GetAverageRating(ctx context.Context, movieId primitive.ObjectID) (float64, error)
}

type ReviewRepository struct {
	mongodb *mongo.Database
}

func NewReviewRepository(mongodb *mongo.Database) *ReviewRepository {
	return &ReviewRepository{mongodb: mongodb}
}

//------------------------------------------
//------------------------------------------

func (m *ReviewRepository) collection() *mongo.Collection {
	return m.mongodb.Collection(mongodb.ReviewsCollection)
}

func (m *ReviewRepository) CreateReview(ctx context.Context, review *model.Review) error {
	if review.Id.IsZero() {
		review.Id = primitive.NewObjectID()
	}
	_, err := m.collection().InsertOne(ctx, review)
	return err
}

func (m *ReviewRepository) GetMovieReviews(ctx context.Context, movieId primitive.ObjectID) ([]model.Review, error) {
	opts := options.Find().SetSort(bson.D{{"timestamp", -1}, {"_id", -1}})
	cursor, err := m.collection().Find(ctx, bson.M{"movieId": movieId}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reviews := make([]model.Review, 0)
	if err = cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// GetAverageRating recomputes the mean from every stored review of the movie, 0 when there are none.
func (m *ReviewRepository) GetAverageRating(ctx context.Context, movieId primitive.ObjectID) (float64, error) {
	pipeline := mongo.Pipeline{
		{{"$match", bson.D{{"movieId", movieId}}}},
		{{"$group", bson.D{
			{"_id", nil},
			{"average", bson.D{{"$avg", "$rating"}}},
		}}},
	}

	cursor, err := m.collection().Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var r []struct {
		Average float64 `bson:"average"`
	}
	if err = cursor.All(ctx, &r); err != nil {
		return 0, err
	}
	if len(r) == 0 {
		return 0, nil
	}
	return r[0].Average, nil
}
