package usecase_book

import (
	"context"
	"fmt"
	"time"

	"github.com/Super-Badmen-Viper/BookRec/domain"
	"github.com/Super-Badmen-Viper/BookRec/domain/domain_book/book_interface"
	"github.com/Super-Badmen-Viper/BookRec/domain/domain_book/book_models"
	"github.com/Super-Badmen-Viper/BookRec/metrics"
	"github.com/Super-Badmen-Viper/BookRec/usecase/usecase_book/book_rec_util"
	"go.uber.org/zap"
)

type RecommendDeps struct {
	Tokens    book_interface.TokenValidator
	Users     book_interface.UserRepository
	Books     book_interface.BookRepository
	Reads     book_interface.BookReadRepository
	Search    book_interface.CatalogSearch
	Extractor book_interface.KeywordExtractor
}

type RecommendUsecase struct {
	deps    RecommendDeps
	ranker  *book_rec_util.SimilarityRanker
	timeout time.Duration
	log     *zap.Logger
}

func NewRecommendUsecase(deps RecommendDeps, limit int, timeout time.Duration, log *zap.Logger) *RecommendUsecase {
	if deps.Extractor == nil {
		deps.Extractor = book_rec_util.NewRakeExtractor()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &RecommendUsecase{
		deps:    deps,
		ranker:  book_rec_util.NewSimilarityRanker(limit),
		timeout: timeout,
		log:     log,
	}
}

var _ book_interface.RecommendUsecase = (*RecommendUsecase)(nil)

// Recommend 令牌 -> 用户 -> 最近阅读 -> 关键词 -> 目录检索 -> 过滤 -> 相似度排序
func (uc *RecommendUsecase) Recommend(ctx context.Context, token string) ([]book_models.Book, error) {
	userID, err := uc.deps.Tokens.Validate(token)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	user, err := uc.deps.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry, ok := user.MostRecentRead()
	if !ok {
		return nil, domain.ErrEmptyHistory
	}

	seed, err := uc.deps.Books.GetByBookID(ctx, entry.BookID)
	if err != nil {
		return nil, err
	}

	phrases, err := uc.deps.Extractor.Extract(seed.KeywordSource())
	if err != nil {
		return nil, err
	}
	if len(phrases) == 0 {
		return nil, fmt.Errorf("%w: %q", domain.ErrNoSalientKeyword, seed.KeywordSource())
	}
	keyword := phrases[0]

	result, err := uc.deps.Search.Search(ctx, keyword)
	if err != nil {
		return nil, err
	}

	alreadyRead, err := uc.deps.Reads.GetReadBookIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load reading history: %w", err)
	}

	candidates := book_rec_util.FilterCandidates(result.Books, alreadyRead, *seed)
	recs := uc.ranker.Rank(candidates, seed.BookID)

	metrics.RecommendationsSize.Observe(float64(len(recs)))
	uc.log.Debug("recommendations computed",
		zap.String("user_id", userID),
		zap.String("seed_book_id", seed.BookID),
		zap.String("keyword", keyword),
		zap.Int("candidates", len(candidates)),
		zap.Int("recommendations", len(recs)),
		zap.Bool("degraded", result.Degraded))

	return recs, nil
}
