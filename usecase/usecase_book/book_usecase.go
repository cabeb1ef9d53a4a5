package usecase_book

import (
	"context"
	"strings"
	"time"

	"github.com/Super-Badmen-Viper/BookRec/domain"
	"github.com/Super-Badmen-Viper/BookRec/domain/domain_book/book_interface"
	"github.com/Super-Badmen-Viper/BookRec/domain/domain_book/book_models"
)

type bookUsecase struct {
	repo    book_interface.BookRepository
	timeout time.Duration
}

func NewBookUsecase(repo book_interface.BookRepository, timeout time.Duration) book_interface.BookUsecase {
	return &bookUsecase{repo: repo, timeout: timeout}
}

func (uc *bookUsecase) GetBook(ctx context.Context, bookID string) (*book_models.Book, error) {
	bookID = strings.TrimSpace(bookID)
	if bookID == "" {
		return nil, domain.ErrBookNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	return uc.repo.GetByBookID(ctx, bookID)
}
