package repository_book

import (
	"context"
	"errors"
	"fmt"

	"github.com/Super-Badmen-Viper/BookRec/domain"
	"github.com/Super-Badmen-Viper/BookRec/domain/domain_book/book_interface"
	"github.com/Super-Badmen-Viper/BookRec/domain/domain_book/book_models"
	"github.com/Super-Badmen-Viper/BookRec/mongo"
	"github.com/Super-Badmen-Viper/BookRec/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type userRepository struct {
	*repository.BaseMongoRepository[book_models.User]
}

func NewUserRepository(db mongo.Database) book_interface.UserRepository {
	return &userRepository{
		BaseMongoRepository: repository.NewBaseMongoRepository[book_models.User](db, domain.CollectionUser),
	}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*book_models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil || objID.IsZero() {
		return nil, fmt.Errorf("user id %q: %w", id, domain.ErrUserNotFound)
	}

	user, err := r.BaseMongoRepository.GetByID(ctx, objID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("user id %q: %w", id, domain.ErrUserNotFound)
		}
		return nil, err
	}
	return user, nil
}
