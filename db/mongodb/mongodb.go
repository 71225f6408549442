package mongodb

import (
	"context"
	"movie_review/configs"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	UsersCollection     = "users"
	MoviesCollection    = "movies"
	ReviewsCollection   = "reviews"
	WatchlistCollection = "watchlists"
	ConfigsCollection   = "configs"
)

type MongoDatabase struct {
	Db     *mongo.Database
	client *mongo.Client
}

func NewDatabase() (*MongoDatabase, error) {
	return Connect(configs.GetConfigs().MongodbDatabaseUrl, configs.GetConfigs().MongodbDatabaseName)
}

func Connect(url string, dbName string) (*MongoDatabase, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	opts := options.Client().ApplyURI(url)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err = client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return &MongoDatabase{
		client: client,
		Db:     client.Database(dbName),
	}, nil
}

func (d *MongoDatabase) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return d.client.Disconnect(ctx)
}

func (d *MongoDatabase) GetDB() *mongo.Database {
	return d.Db
}

// EnsureIndexes creates the unique and lookup indexes the repositories rely on.
func (d *MongoDatabase) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := map[string][]mongo.IndexModel{
		UsersCollection: {
			{Keys: bson.D{{"email", 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{"username", 1}}, Options: options.Index().SetUnique(true)},
		},
		MoviesCollection: {
			{Keys: bson.D{{"genre", 1}}},
			{Keys: bson.D{{"releaseYear", 1}}},
		},
		ReviewsCollection: {
			{Keys: bson.D{{"movieId", 1}, {"timestamp", -1}}},
		},
		WatchlistCollection: {
			{Keys: bson.D{{"userId", 1}, {"movieId", 1}}, Options: options.Index().SetUnique(true)},
		},
	}

	removed, err := d.DedupeWatchlist(ctx)
	if err != nil {
		return err
	}
	if removed > 0 {
		log.Warn().Int64("removed", removed).Msg("removed duplicate watchlist entries")
	}

	for collection, models := range indexes {
		if _, err := d.Db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}
	return nil
}

// DedupeWatchlist keeps the earliest entry of every (userId, movieId) pair so
// the unique watchlist index can be built on databases written before it existed.
func (d *MongoDatabase) DedupeWatchlist(ctx context.Context) (int64, error) {
	collection := d.Db.Collection(WatchlistCollection)
	pipeline := mongo.Pipeline{
		{{"$sort", bson.D{{"dateAdded", 1}, {"_id", 1}}}},
		{{"$group", bson.D{
			{"_id", bson.D{{"userId", "$userId"}, {"movieId", "$movieId"}}},
			{"ids", bson.D{{"$push", "$_id"}}},
			{"count", bson.D{{"$sum", 1}}},
		}}},
		{{"$match", bson.D{{"count", bson.D{{"$gt", 1}}}}}},
	}
	cursor, err := collection.Aggregate(ctx, pipeline, options.Aggregate().SetAllowDiskUse(true))
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var removed int64
	for cursor.Next(ctx) {
		var group struct {
			Ids []interface{} `bson:"ids"`
		}
		if err = cursor.Decode(&group); err != nil {
			return removed, err
		}
		result, err := collection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": group.Ids[1:]}})
		if err != nil {
			return removed, err
		}
		removed += result.DeletedCount
	}
	return removed, cursor.Err()
}
