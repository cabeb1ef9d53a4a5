package book_mocks

import (
	"context"

	"github.com/Super-Badmen-Viper/BookRec/domain/domain_book/book_models"
	"github.com/stretchr/testify/mock"
)

type CatalogClient struct {
	mock.Mock
}

func (m *CatalogClient) SearchVolumes(ctx context.Context, query string) ([]book_models.Book, error) {
	args := m.Called(ctx, query)
	books, _ := args.Get(0).([]book_models.Book)
	return books, args.Error(1)
}

type CatalogSearch struct {
	mock.Mock
}

func (m *CatalogSearch) Search(ctx context.Context, query string) (*book_models.SearchResult, error) {
	args := m.Called(ctx, query)
	result, _ := args.Get(0).(*book_models.SearchResult)
	return result, args.Error(1)
}

type BookUsecase struct {
	mock.Mock
}

func (m *BookUsecase) GetBook(ctx context.Context, bookID string) (*book_models.Book, error) {
	args := m.Called(ctx, bookID)
	book, _ := args.Get(0).(*book_models.Book)
	return book, args.Error(1)
}

type TokenValidator struct {
	mock.Mock
}

func (m *TokenValidator) Validate(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

type KeywordExtractor struct {
	mock.Mock
}

func (m *KeywordExtractor) Extract(text string) ([]string, error) {
	args := m.Called(text)
	phrases, _ := args.Get(0).([]string)
	return phrases, args.Error(1)
}

type RecommendUsecase struct {
	mock.Mock
}

func (m *RecommendUsecase) Recommend(ctx context.Context, token string) ([]book_models.Book, error) {
	args := m.Called(ctx, token)
	books, _ := args.Get(0).([]book_models.Book)
	return books, args.Error(1)
}
