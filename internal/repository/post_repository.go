package repository

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/klass-lk/ginblog/internal/model"
)

type PostRepository struct {
	*MongoRepository[model.Post]
}

func NewPostRepository(database *mongo.Database) *PostRepository {
	return &PostRepository{
		MongoRepository: NewMongoRepository[model.Post](database),
	}
}
