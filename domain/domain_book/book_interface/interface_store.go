package book_interface

import (
	"context"

	"github.com/Super-Badmen-Viper/BookRec/domain/domain_book/book_models"
)

type UserRepository interface {
	// GetByID 按十六进制 ObjectID 查找用户；不存在或格式非法返回 domain.ErrUserNotFound
	GetByID(ctx context.Context, id string) (*book_models.User, error)
}

type BookRepository interface {
	GetByBookID(ctx context.Context, bookID string) (*book_models.Book, error)
	SearchCached(ctx context.Context, query string, limit int) ([]book_models.Book, error)
	UpsertMany(ctx context.Context, books []book_models.Book) (int, error)
}

type BookReadRepository interface {
	GetReadBookIDs(ctx context.Context, userID string) (map[string]struct{}, error)
}
