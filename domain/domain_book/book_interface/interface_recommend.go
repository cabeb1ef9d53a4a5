package book_interface

import (
	"context"

	"github.com/Super-Badmen-Viper/BookRec/domain/domain_book/book_models"
)

type TokenValidator interface {
	// Validate 返回令牌中的用户ID；无效令牌返回 domain.ErrAuth
	Validate(token string) (string, error)
}

type KeywordExtractor interface {
	// Extract 按显著性从高到低返回候选短语
	Extract(text string) ([]string, error)
}

type RecommendUsecase interface {
	Recommend(ctx context.Context, token string) ([]book_models.Book, error)
}
