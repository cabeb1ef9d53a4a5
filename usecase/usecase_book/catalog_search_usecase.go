package usecase_book

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Super-Badmen-Viper/BookRec/domain"
	"github.com/Super-Badmen-Viper/BookRec/domain/domain_book/book_interface"
	"github.com/Super-Badmen-Viper/BookRec/domain/domain_book/book_models"
	"github.com/Super-Badmen-Viper/BookRec/metrics"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type CatalogSearchConfig struct {
	MaxResults      int // 本地缓存查询上限
	MinCacheResults int // 缓存命中数达到该值时不再访问外部目录
	Timeout         time.Duration
}

type CatalogSearchUsecase struct {
	repo   book_interface.BookRepository
	client book_interface.CatalogClient
	cfg    CatalogSearchConfig
	group  singleflight.Group
	log    *zap.Logger
}

func NewCatalogSearchUsecase(
	repo book_interface.BookRepository,
	client book_interface.CatalogClient,
	cfg CatalogSearchConfig,
	log *zap.Logger,
) *CatalogSearchUsecase {
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = 40
	}
	if cfg.MinCacheResults <= 0 {
		cfg.MinCacheResults = 1
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &CatalogSearchUsecase{repo: repo, client: client, cfg: cfg, log: log}
}

var _ book_interface.CatalogSearch = (*CatalogSearchUsecase)(nil)

// Search 相同查询的并发请求共享一次执行；空结果不是错误
func (uc *CatalogSearchUsecase) Search(ctx context.Context, query string) (*book_models.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return &book_models.SearchResult{Books: []book_models.Book{}, StatusCode: http.StatusOK}, nil
	}

	// 共享执行不继承任何调用方的取消，只受 cfg.Timeout 约束；各调用方按自己的 ctx 放弃等待
	detached := context.WithoutCancel(ctx)
	ch := uc.group.DoChan(strings.ToLower(query), func() (interface{}, error) {
		return uc.search(detached, query)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return nil, res.Err
	}

	shared := res.Val.(*book_models.SearchResult)
	result := *shared
	result.Books = append([]book_models.Book(nil), shared.Books...)
	return &result, nil
}

func (uc *CatalogSearchUsecase) search(ctx context.Context, query string) (*book_models.SearchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.cfg.Timeout)
	defer cancel()

	cached, err := uc.repo.SearchCached(ctx, query, uc.cfg.MaxResults)
	if err != nil {
		// 缓存故障按未命中处理
		uc.log.Warn("local catalog cache query failed", zap.String("query", query), zap.Error(err))
		cached = nil
	}

	if len(cached) >= uc.cfg.MinCacheResults {
		metrics.CatalogRequestsTotal.WithLabelValues(metrics.SourceCache, metrics.OutcomeHit).Inc()
		return &book_models.SearchResult{Books: cached, StatusCode: http.StatusOK}, nil
	}
	metrics.CatalogRequestsTotal.WithLabelValues(metrics.SourceCache, metrics.OutcomeMiss).Inc()

	external, err := uc.fetchExternal(ctx, query)
	if err != nil {
		if len(cached) > 0 {
			metrics.CatalogRequestsTotal.WithLabelValues(metrics.SourceCache, metrics.OutcomeDegraded).Inc()
			uc.log.Warn("external catalog failed, serving cached results",
				zap.String("query", query), zap.Int("cached", len(cached)), zap.Error(err))
			return &book_models.SearchResult{Books: cached, StatusCode: http.StatusOK, Degraded: true}, nil
		}
		return nil, err
	}

	if len(external) > 0 {
		if _, err := uc.repo.UpsertMany(ctx, external); err != nil {
			uc.log.Warn("failed to persist external catalog results",
				zap.String("query", query), zap.Int("books", len(external)), zap.Error(err))
		}
	}

	return &book_models.SearchResult{Books: mergeByBookID(cached, external), StatusCode: http.StatusOK}, nil
}

// fetchExternal 外部目录不可用时重试一次
func (uc *CatalogSearchUsecase) fetchExternal(ctx context.Context, query string) ([]book_models.Book, error) {
	books, err := uc.client.SearchVolumes(ctx, query)
	if errors.Is(err, domain.ErrCatalogUnavailable) && ctx.Err() == nil {
		metrics.CatalogRequestsTotal.WithLabelValues(metrics.SourceExternal, metrics.OutcomeRetry).Inc()
		books, err = uc.client.SearchVolumes(ctx, query)
	}
	if err != nil {
		metrics.CatalogRequestsTotal.WithLabelValues(metrics.SourceExternal, metrics.OutcomeFailure).Inc()
		return nil, err
	}
	metrics.CatalogRequestsTotal.WithLabelValues(metrics.SourceExternal, metrics.OutcomeSuccess).Inc()
	return books, nil
}

// mergeByBookID 缓存结果在前，外部结果按 book_id 去重后追加
func mergeByBookID(cached, external []book_models.Book) []book_models.Book {
	merged := make([]book_models.Book, 0, len(cached)+len(external))
	seen := make(map[string]struct{}, len(cached)+len(external))
	for _, list := range [][]book_models.Book{cached, external} {
		for _, b := range list {
			if _, ok := seen[b.BookID]; ok {
				continue
			}
			seen[b.BookID] = struct{}{}
			merged = append(merged, b)
		}
	}
	return merged
}
