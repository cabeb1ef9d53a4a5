package repository_book

import (
	"context"

	"github.com/Super-Badmen-Viper/BookRec/domain"
	"github.com/Super-Badmen-Viper/BookRec/domain/domain_book/book_interface"
	"github.com/Super-Badmen-Viper/BookRec/domain/domain_book/book_models"
	"github.com/Super-Badmen-Viper/BookRec/mongo"
	"github.com/Super-Badmen-Viper/BookRec/repository"
	"go.mongodb.org/mongo-driver/bson"
)

type bookReadRepository struct {
	*repository.BaseMongoRepository[book_models.BookRead]
}

func NewBookReadRepository(db mongo.Database) book_interface.BookReadRepository {
	return &bookReadRepository{
		BaseMongoRepository: repository.NewBaseMongoRepository[book_models.BookRead](db, domain.CollectionBookRead),
	}
}

func (r *bookReadRepository) GetReadBookIDs(ctx context.Context, userID string) (map[string]struct{}, error) {
	records, err := r.GetByFilter(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}

	read := make(map[string]struct{}, len(records))
	for _, rec := range records {
		read[rec.BookID] = struct{}{}
	}
	return read, nil
}
