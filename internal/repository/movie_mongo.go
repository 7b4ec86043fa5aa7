package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"movie-catalog-api/internal/models"
)

type movieRepository struct {
	coll *mongo.Collection
}

// NewMovieRepository creates a MongoDB-backed MovieRepository over the
// "movies" collection.
func NewMovieRepository(db *mongo.Database) MovieRepository {
	return &movieRepository{coll: db.Collection("movies")}
}

func (r *movieRepository) Insert(ctx context.Context, movie *models.Movie) (*models.Movie, error) {
	res, err := r.coll.InsertOne(ctx, movie)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("insert movie: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		movie.ID = oid
	}
	return movie, nil
}

func (r *movieRepository) FindByTitle(ctx context.Context, title string) (*models.Movie, error) {
	return r.findOne(ctx, bson.M{"title": title})
}

func (r *movieRepository) FindAll(ctx context.Context) ([]models.Movie, error) {
	return r.find(ctx, bson.M{})
}

func (r *movieRepository) FindByGenre(ctx context.Context, genreName string) ([]models.Movie, error) {
	return r.find(ctx, bson.M{"genre.name": genreName})
}

func (r *movieRepository) FindByDirector(ctx context.Context, directorName string) (*models.Movie, error) {
	return r.findOne(ctx, bson.M{"director.name": directorName})
}

func (r *movieRepository) findOne(ctx context.Context, filter bson.M) (*models.Movie, error) {
	var movie models.Movie
	err := r.coll.FindOne(ctx, filter).Decode(&movie)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find movie: %w", err)
	}
	return &movie, nil
}

func (r *movieRepository) find(ctx context.Context, filter bson.M) ([]models.Movie, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	defer cursor.Close(ctx)

	movies := make([]models.Movie, 0)
	if err := cursor.All(ctx, &movies); err != nil {
		return nil, fmt.Errorf("decode movies: %w", err)
	}
	return movies, nil
}
