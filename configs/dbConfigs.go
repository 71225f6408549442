package configs

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	DbConfigsTitle         = "server configs"
	DefaultMoviesPageLimit = 100
)

type DbConfigData struct {
	Id                 primitive.ObjectID `bson:"_id" json:"-"`
	Title              string             `bson:"title" json:"title"`
	CorsAllowedOrigins []string           `bson:"corsAllowedOrigins" json:"corsAllowedOrigins"`
	DisableSignup      bool               `bson:"disableSignup" json:"disableSignup"`
	MoviesPageLimit    int                `bson:"moviesPageLimit" json:"moviesPageLimit"`
}

var rwm sync.RWMutex
var dbConfigs = defaultDbConfigs()

func defaultDbConfigs() DbConfigData {
	return DbConfigData{
		Title:              DbConfigsTitle,
		CorsAllowedOrigins: []string{},
		MoviesPageLimit:    DefaultMoviesPageLimit,
	}
}

func GetDbConfigs() DbConfigData {
	rwm.RLock()
	defer rwm.RUnlock()
	return dbConfigs
}

// SetDbConfigs stores a config document, filling zero values with defaults.
func SetDbConfigs(data DbConfigData) {
	if data.MoviesPageLimit <= 0 {
		data.MoviesPageLimit = DefaultMoviesPageLimit
	}
	if data.CorsAllowedOrigins == nil {
		data.CorsAllowedOrigins = []string{}
	}
	rwm.Lock()
	defer rwm.Unlock()
	dbConfigs = data
}

// FetchMongoDbConfigs reloads the configs document. A missing document resets to defaults
// and returns mongo.ErrNoDocuments so the caller can report it.
func FetchMongoDbConfigs(ctx context.Context, mongodb *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var result DbConfigData
	err := mongodb.
		Collection("configs").
		FindOne(ctx, bson.M{"title": DbConfigsTitle}).
		Decode(&result)
	if err != nil {
		SetDbConfigs(defaultDbConfigs())
		return err
	}
	SetDbConfigs(result)
	return nil
}
