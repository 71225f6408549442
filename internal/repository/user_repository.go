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

type IUserRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserById(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUsersByIds(ctx context.Context, ids []primitive.ObjectID) ([]model.User, error)
	UpdateUserProfile(ctx context.Context, id primitive.ObjectID, update model.ProfileUpdate) (*model.User, error)
}

type UserRepository struct {
	mongodb *mongo.Database
}

func NewUserRepository(mongodb *mongo.Database) *UserRepository {
	return &UserRepository{mongodb: mongodb}
}

//------------------------------------------
//------------------------------------------

func (r *UserRepository) collection() *mongo.Collection {
	return r.mongodb.Collection(mongodb.UsersCollection)
}

func (r *UserRepository) CreateUser(ctx context.Context, user *model.User) error {
	if user.Id.IsZero() {
		user.Id = primitive.NewObjectID()
	}
	_, err := r.collection().InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return model.ErrDuplicateUser
	}
	return err
}

func (r *UserRepository) GetUserById(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *UserRepository) GetUsersByIds(ctx context.Context, ids []primitive.ObjectID) ([]model.User, error) {
	result := make([]model.User, 0, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	opts := options.Find().SetProjection(bson.M{"password": 0})
	cursor, err := r.collection().Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *UserRepository) UpdateUserProfile(ctx context.Context, id primitive.ObjectID, update model.ProfileUpdate) (*model.User, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Username != nil {
		set["username"] = *update.Username
	}
	if update.Email != nil {
		set["email"] = *update.Email
	}
	if update.ProfilePicture != nil {
		set["profilePicture"] = *update.ProfilePicture
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var result model.User
	err := r.collection().
		FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).
		Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrUserNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, model.ErrDuplicateUser
		}
		return nil, err
	}
	return &result, nil
}

//------------------------------------------
//------------------------------------------

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*model.User, error) {
	var result model.User
	err := r.collection().FindOne(ctx, filter).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}
	return &result, nil
}
