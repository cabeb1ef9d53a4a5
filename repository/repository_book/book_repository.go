package repository_book

import (
	"context"
	"fmt"
	"strings"

	"github.com/Super-Badmen-Viper/BookRec/domain"
	"github.com/Super-Badmen-Viper/BookRec/domain/domain_book/book_interface"
	"github.com/Super-Badmen-Viper/BookRec/domain/domain_book/book_models"
	"github.com/Super-Badmen-Viper/BookRec/mongo"
	"github.com/Super-Badmen-Viper/BookRec/repository"
	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type bookRepository struct {
	*repository.BaseMongoRepository[book_models.Book]
	db         mongo.Database
	collection string
}

func NewBookRepository(db mongo.Database) book_interface.BookRepository {
	return &bookRepository{
		BaseMongoRepository: repository.NewBaseMongoRepository[book_models.Book](db, domain.CollectionBook),
		db:                  db,
		collection:          domain.CollectionBook,
	}
}

func (r *bookRepository) GetByBookID(ctx context.Context, bookID string) (*book_models.Book, error) {
	if bookID == "" {
		return nil, fmt.Errorf("empty book id: %w", domain.ErrBookNotFound)
	}

	book, err := r.GetOneByFilter(ctx, bson.M{"book_id": bookID})
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, fmt.Errorf("book id %q: %w", bookID, domain.ErrBookNotFound)
	}
	return book, nil
}

// SearchCached 基于全文索引检索本地缓存，按相关度降序，同分按 book_id 升序
func (r *bookRepository) SearchCached(ctx context.Context, query string, limit int) ([]book_models.Book, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []book_models.Book{}, nil
	}

	coll := r.db.Collection(r.collection)
	score := bson.M{"$meta": "textScore"}
	opts := options.Find().
		SetProjection(bson.M{"score": score}).
		SetSort(bson.D{{Key: "score", Value: score}, {Key: "book_id", Value: 1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := coll.Find(ctx, bson.M{"$text": bson.M{"$search": query}}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search cached books: %w", err)
	}
	defer cursor.Close(ctx)

	books := make([]book_models.Book, 0)
	for cursor.Next(ctx) {
		var book book_models.Book
		if err := cursor.Decode(&book); err != nil {
			return nil, fmt.Errorf("failed to decode book: %w", err)
		}
		books = append(books, book)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cached books: %w", err)
	}
	return books, nil
}

// UpsertMany 以 book_id 为键批量写入，重复写入幂等，后写覆盖
func (r *bookRepository) UpsertMany(ctx context.Context, books []book_models.Book) (int, error) {
	if len(books) == 0 {
		return 0, nil
	}

	coll := r.db.Collection(r.collection)
	bulk := coll.BulkWrite()

	added := 0
	for _, book := range books {
		if book.BookID == "" {
			continue
		}
		added++
		model := driver.NewUpdateOneModel().
			SetFilter(bson.M{"book_id": book.BookID}).
			SetUpdate(bson.M{"$set": book}).
			SetUpsert(true)
		bulk.AddModel(model)
	}
	if added == 0 {
		return 0, nil
	}

	result, err := bulk.Execute(ctx)
	if err != nil {
		return 0, fmt.Errorf("bulk upsert books failed: %w", err)
	}

	return int(result.UpsertedCount() + result.ModifiedCount()), nil
}
