package repository

import (
	"context"
	"movie_review/configs"

	"go.mongodb.org/mongo-driver/mongo"
)

type IAdminRepository interface {
	FetchDbConfigs(ctx context.Context) error
}

type AdminRepository struct {
	mongodb *mongo.Database
}

func NewAdminRepository(mongodb *mongo.Database) *AdminRepository {
	return &AdminRepository{mongodb: mongodb}
}

//------------------------------------------
//------------------------------------------

func (m *AdminRepository) FetchDbConfigs(ctx context.Context) error {
	return configs.FetchMongoDbConfigs(ctx, m.mongodb)
}
