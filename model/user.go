package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	Id             primitive.ObjectID `bson:"_id" json:"_id"`
	Username       string             `bson:"username" json:"username"`
	Email          string             `bson:"email" json:"email"`
	Password       string             `bson:"password" json:"-"`
	Role           Role               `bson:"role" json:"role"`
	ProfilePicture string             `bson:"profilePicture,omitempty" json:"profilePicture,omitempty"`
	JoinDate       time.Time          `bson:"joinDate" json:"joinDate"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// UserProfile is the only user shape that leaves the service layer.
type UserProfile struct {
	Id             primitive.ObjectID `json:"_id"`
	Username       string             `json:"username"`
	Email          string             `json:"email"`
	Role           Role               `json:"role"`
	ProfilePicture string             `json:"profilePicture,omitempty"`
	JoinDate       time.Time          `json:"joinDate"`
}

type UserSummary struct {
	Id             primitive.ObjectID `bson:"_id" json:"_id"`
	Username       string             `bson:"username" json:"username"`
	ProfilePicture string             `bson:"profilePicture,omitempty" json:"profilePicture,omitempty"`
}

func (u *User) Profile() UserProfile {
	return UserProfile{
		Id:             u.Id,
		Username:       u.Username,
		Email:          u.Email,
		Role:           u.Role,
		ProfilePicture: u.ProfilePicture,
		JoinDate:       u.JoinDate,
	}
}

func (u *User) Summary() UserSummary {
	return UserSummary{
		Id:             u.Id,
		Username:       u.Username,
		ProfilePicture: u.ProfilePicture,
	}
}

//---------------------------------------
//---------------------------------------

type SignupReq struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,mailformat"`
	Password string `json:"password" validate:"required,min=4"`
}

type LoginReq struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileReq struct {
	Username       *string `json:"username" validate:"omitnil,min=3"`
	Email          *string `json:"email" validate:"omitnil,mailformat"`
	ProfilePicture *string `json:"profilePicture"`
}

type AuthRes struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

// ProfileUpdate lists the only user fields the profile path may change; nil means unchanged.
type ProfileUpdate struct {
	Username       *string
	Email          *string
	ProfilePicture *string
}
