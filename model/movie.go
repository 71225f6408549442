package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Movie struct {
	Id            primitive.ObjectID `bson:"_id" json:"_id"`
	Title         string             `bson:"title" json:"title"`
	Genre         []string           `bson:"genre" json:"genre"`
	ReleaseYear   int                `bson:"releaseYear" json:"releaseYear"`
	Director      string             `bson:"director" json:"director"`
	Cast          []string           `bson:"cast" json:"cast"`
	Synopsis      string             `bson:"synopsis,omitempty" json:"synopsis,omitempty"`
	PosterUrl     string             `bson:"posterUrl,omitempty" json:"posterUrl,omitempty"`
	AverageRating float64            `bson:"averageRating" json:"averageRating"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// AddMovieReq has no averageRating: the aggregate is written by the review ledger only.
type AddMovieReq struct {
	Title       string   `json:"title" validate:"required"`
	Genre       []string `json:"genre" validate:"required,min=1,dive,required"`
	ReleaseYear int      `json:"releaseYear" validate:"required,gt=0"`
	Director    string   `json:"director" validate:"required"`
	Cast        []string `json:"cast" validate:"required,min=1,dive,required"`
	Synopsis    string   `json:"synopsis"`
	PosterUrl   string   `json:"posterUrl"`
}

type MovieFilter struct {
	Genre       string
	ReleaseYear int
}

type MoviesRes struct {
	Total  int64   `json:"total"`
	Page   int     `json:"page"`
	Pages  int     `json:"pages"`
	Movies []Movie `json:"movies"`
}
