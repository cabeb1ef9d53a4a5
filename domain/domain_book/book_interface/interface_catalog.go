package book_interface

import (
	"context"

	"github.com/Super-Badmen-Viper/BookRec/domain/domain_book/book_models"
)

// CatalogClient 外部图书目录（Google Books）
type CatalogClient interface {
	SearchVolumes(ctx context.Context, query string) ([]book_models.Book, error)
}

// CatalogSearch 本地缓存优先、外部目录兜底的检索
type CatalogSearch interface {
	Search(ctx context.Context, query string) (*book_models.SearchResult, error)
}

type BookUsecase interface {
	GetBook(ctx context.Context, bookID string) (*book_models.Book, error)
}
