// Package book_mocks testify 模拟实现，供 usecase 与 controller 测试使用
package book_mocks

import (
	"context"

	"github.com/Super-Badmen-Viper/BookRec/domain/domain_book/book_models"
	"github.com/stretchr/testify/mock"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) GetByID(ctx context.Context, id string) (*book_models.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*book_models.User)
	return user, args.Error(1)
}

type BookRepository struct {
	mock.Mock
}

func (m *BookRepository) GetByBookID(ctx context.Context, bookID string) (*book_models.Book, error) {
	args := m.Called(ctx, bookID)
	book, _ := args.Get(0).(*book_models.Book)
	return book, args.Error(1)
}

func (m *BookRepository) SearchCached(ctx context.Context, query string, limit int) ([]book_models.Book, error) {
	args := m.Called(ctx, query, limit)
	books, _ := args.Get(0).([]book_models.Book)
	return books, args.Error(1)
}

func (m *BookRepository) UpsertMany(ctx context.Context, books []book_models.Book) (int, error) {
	args := m.Called(ctx, books)
	return args.Int(0), args.Error(1)
}

type BookReadRepository struct {
	mock.Mock
}

func (m *BookReadRepository) GetReadBookIDs(ctx context.Context, userID string) (map[string]struct{}, error) {
	args := m.Called(ctx, userID)
	ids, _ := args.Get(0).(map[string]struct{})
	return ids, args.Error(1)
}
