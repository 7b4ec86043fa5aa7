package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Genre is the nested genre sub-object of a movie.
type Genre struct {
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description"`
}

// Director is the nested director sub-object of a movie.
type Director struct {
	Name string `bson:"name" json:"name"`
	Bio  string `bson:"bio" json:"bio"`
}

// Movie represents a catalog entry. Entries are append-only: there is
// no update or delete endpoint for movies.
type Movie struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Genre       Genre              `bson:"genre" json:"genre"`
	Director    Director           `bson:"director" json:"director"`
	Actors      []string           `bson:"actors" json:"actors"`
	ImagePath   string             `bson:"image_path" json:"image_path"`
	Featured    bool               `bson:"featured" json:"featured"`
}

// CreateMovieRequest is the request body for adding a movie.
type CreateMovieRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Genre       Genre    `json:"genre"`
	Director    Director `json:"director"`
	Actors      []string `json:"actors"`
	ImagePath   string   `json:"image_path"`
	Featured    bool     `json:"featured"`
}
