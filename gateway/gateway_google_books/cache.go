package gateway_google_books

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Super-Badmen-Viper/BookRec/domain/domain_book/book_models"
	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "bookrec:catalog:"

// ResponseCache 外部目录响应缓存
type ResponseCache interface {
	Get(ctx context.Context, key string) ([]book_models.Book, bool, error)
	Set(ctx context.Context, key string, books []book_models.Book) error
}

func cacheKey(query string) string {
	return cacheKeyPrefix + strings.Join(strings.Fields(strings.ToLower(query)), " ")
}

type RedisCache struct {
	rdb redis.UniversalClient
	ttl time.Duration
}

func NewRedisCache(rdb redis.UniversalClient, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &RedisCache{rdb: rdb, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]book_models.Book, bool, error) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var books []book_models.Book
	if err := json.Unmarshal(raw, &books); err != nil {
		return nil, false, err
	}
	return books, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, books []book_models.Book) error {
	raw, err := json.Marshal(books)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, raw, c.ttl).Err()
}
