// Package gateway_google_books 外部图书目录（Google Books volumes API）客户端
package gateway_google_books

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Super-Badmen-Viper/BookRec/domain"
	"github.com/Super-Badmen-Viper/BookRec/domain/domain_book/book_interface"
	"github.com/Super-Badmen-Viper/BookRec/domain/domain_book/book_models"
	json "github.com/goccy/go-json"
	"github.com/microcosm-cc/bluemonday"
	gobreaker "github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const DefaultBaseURL = "https://www.googleapis.com/books/v1"

type Config struct {
	BaseURL          string
	APIKey           string
	MaxResults       int
	Timeout          time.Duration
	RatePerSecond    float64
	FailureThreshold uint32        // 连续失败次数达到后熔断
	OpenTimeout      time.Duration // 熔断后进入半开状态的等待时间
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.MaxResults <= 0 || c.MaxResults > 40 {
		c.MaxResults = 40
	}
	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}
	if c.RatePerSecond <= 0 {
		c.RatePerSecond = 5
	}
	if c.FailureThreshold == 0 {
		c.FailureThreshold = 5
	}
	if c.OpenTimeout <= 0 {
		c.OpenTimeout = 30 * time.Second
	}
	return c
}

type Client struct {
	cfg       Config
	http      *http.Client
	limiter   *rate.Limiter
	breaker   *gobreaker.CircuitBreaker[[]book_models.Book]
	sanitizer *bluemonday.Policy
	cache     ResponseCache
	log       *zap.Logger
}

// NewClient cache 可为 nil，表示不缓存外部响应
func NewClient(cfg Config, cache ResponseCache, log *zap.Logger) *Client {
	cfg = cfg.withDefaults()
	if log == nil {
		log = zap.NewNop()
	}
	c := &Client{
		cfg:       cfg,
		http:      &http.Client{Timeout: cfg.Timeout},
		limiter:   rate.NewLimiter(rate.Limit(cfg.RatePerSecond), 1),
		sanitizer: bluemonday.StrictPolicy(),
		cache:     cache,
		log:       log,
	}
	c.breaker = gobreaker.NewCircuitBreaker[[]book_models.Book](gobreaker.Settings{
		Name:    "google-books",
		Timeout: cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		// 凭据错误和调用方取消都不是服务故障，不计入熔断
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, domain.ErrCatalogAuth) ||
				errors.Is(err, context.Canceled) ||
				errors.Is(err, context.DeadlineExceeded)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("catalog circuit breaker state changed",
				zap.String("breaker", name), zap.String("from", from.String()), zap.String("to", to.String()))
		},
	})
	return c
}

var _ book_interface.CatalogClient = (*Client)(nil)

// BreakerState 供健康检查展示
func (c *Client) BreakerState() string {
	return c.breaker.State().String()
}

func (c *Client) SearchVolumes(ctx context.Context, query string) ([]book_models.Book, error) {
	key := cacheKey(query)
	if c.cache != nil {
		books, ok, err := c.cache.Get(ctx, key)
		if err != nil {
			c.log.Warn("catalog response cache read failed", zap.String("query", query), zap.Error(err))
		} else if ok {
			return books, nil
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	books, err := c.breaker.Execute(func() ([]book_models.Book, error) {
		return c.fetch(ctx, query)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
		}
		return nil, err
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, key, books); err != nil {
			c.log.Warn("catalog response cache write failed", zap.String("query", query), zap.Error(err))
		}
	}
	return books, nil
}

type volumesResponse struct {
	TotalItems int      `json:"totalItems"`
	Items      []volume `json:"items"`
}

type volume struct {
	ID         string     `json:"id"`
	VolumeInfo volumeInfo `json:"volumeInfo"`
}

type volumeInfo struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Authors     []string `json:"authors"`
	Categories  []string `json:"categories"`
}

func (c *Client) fetch(ctx context.Context, query string) ([]book_models.Book, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: rate limiter: %v", domain.ErrCatalogUnavailable, err)
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("maxResults", strconv.Itoa(c.cfg.MaxResults))
	if c.cfg.APIKey != "" {
		params.Set("key", c.cfg.APIKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/volumes?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: status %d", domain.ErrCatalogAuth, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("%w: status %d", domain.ErrCatalogUnavailable, resp.StatusCode)
	}

	var body volumesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrCatalogUnavailable, err)
	}

	books := make([]book_models.Book, 0, len(body.Items))
	for _, item := range body.Items {
		if book, ok := c.toBook(item); ok {
			books = append(books, book)
		}
	}
	return books, nil
}

// toBook 缺少 id 或标题的条目丢弃
func (c *Client) toBook(v volume) (book_models.Book, bool) {
	title := strings.TrimSpace(v.VolumeInfo.Title)
	if v.ID == "" || title == "" {
		return book_models.Book{}, false
	}
	return book_models.Book{
		BookID:     v.ID,
		Title:      title,
		Summary:    book_models.Text(c.plainText(v.VolumeInfo.Description)),
		Categories: book_models.Text(strings.Join(v.VolumeInfo.Categories, ", ")),
		Authors:    book_models.Text(strings.Join(v.VolumeInfo.Authors, ", ")),
	}, true
}

func (c *Client) plainText(s string) string {
	return strings.TrimSpace(html.UnescapeString(c.sanitizer.Sanitize(s)))
}
