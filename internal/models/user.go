package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered account and its favorite movies.
// The password hash is never serialized in responses.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Username       string             `bson:"username" json:"username"`
	Password       string             `bson:"password" json:"-"`
	Email          string             `bson:"email" json:"email"`
	Birthday       *time.Time         `bson:"birthday,omitempty" json:"birthday,omitempty"`
	FavoriteMovies []string           `bson:"favorite_movies" json:"favorite_movies"`
}

// RegisterRequest is the request body for registering a user.
type RegisterRequest struct {
	Username string     `json:"username"`
	Password string     `json:"password"`
	Email    string     `json:"email"`
	Birthday *time.Time `json:"birthday,omitempty"`
}

// UpdateUserRequest carries the full replacement profile for an update.
// Updates overwrite every field; this is not a sparse patch.
type UpdateUserRequest struct {
	Username string     `json:"username"`
	Password string     `json:"password"`
	Email    string     `json:"email"`
	Birthday *time.Time `json:"birthday,omitempty"`
}

// LoginRequest is the request body for password login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}
