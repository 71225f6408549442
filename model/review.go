package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	Id         primitive.ObjectID `bson:"_id" json:"_id"`
	UserId     primitive.ObjectID `bson:"userId" json:"userId"`
	MovieId    primitive.ObjectID `bson:"movieId" json:"movieId"`
	Rating     int                `bson:"rating" json:"rating"`
	ReviewText string             `bson:"reviewText,omitempty" json:"reviewText,omitempty"`
	Timestamp  time.Time          `bson:"timestamp" json:"timestamp"`
}

// ReviewWithUser mirrors a review with its author resolved in place of the raw userId.
type ReviewWithUser struct {
	Id         primitive.ObjectID `json:"_id"`
	User       UserSummary        `json:"userId"`
	MovieId    primitive.ObjectID `json:"movieId"`
	Rating     int                `json:"rating"`
	ReviewText string             `json:"reviewText,omitempty"`
	Timestamp  time.Time          `json:"timestamp"`
}

type AddReviewReq struct {
	Rating     int    `json:"rating" validate:"min=1,max=5"`
	ReviewText string `json:"reviewText"`
}

func ValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}
