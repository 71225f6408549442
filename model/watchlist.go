package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type WatchlistEntry struct {
	Id        primitive.ObjectID `bson:"_id" json:"_id"`
	UserId    primitive.ObjectID `bson:"userId" json:"userId"`
	MovieId   primitive.ObjectID `bson:"movieId" json:"movieId"`
	DateAdded time.Time          `bson:"dateAdded" json:"dateAdded"`
}

// WatchlistItem is a watchlist entry with the referenced movie resolved inline.
type WatchlistItem struct {
	Id        primitive.ObjectID `json:"_id"`
	UserId    primitive.ObjectID `json:"userId"`
	Movie     Movie              `json:"movieId"`
	DateAdded time.Time          `json:"dateAdded"`
}

type WatchlistReq struct {
	MovieId string `json:"movieId" validate:"required"`
}
