package route

import (
	"net/http"
	"time"

	"github.com/Super-Badmen-Viper/BookRec/api/middleware"
	"github.com/Super-Badmen-Viper/BookRec/api/route/route_book"
	"github.com/Super-Badmen-Viper/BookRec/bootstrap"
	"github.com/Super-Badmen-Viper/BookRec/gateway/gateway_google_books"
	"github.com/Super-Badmen-Viper/BookRec/internal/tokenutil"
	"github.com/Super-Badmen-Viper/BookRec/mongo"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func Setup(env *bootstrap.Env, timeout time.Duration, db mongo.Database, rdb redis.UniversalClient, log *zap.Logger, engine *gin.Engine) {
	engine.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(log),
		middleware.Metrics(),
		middleware.CORS(env.AllowedOrigins()),
	)

	var cache gateway_google_books.ResponseCache
	if rdb != nil {
		cache = gateway_google_books.NewRedisCache(rdb, time.Duration(env.SearchCacheTTL)*time.Second)
	}
	catalog := gateway_google_books.NewClient(gateway_google_books.Config{
		BaseURL:       env.GoogleBooksBaseURL,
		APIKey:        env.GoogleBooksAPIKey,
		MaxResults:    env.GoogleBooksMaxResults,
		Timeout:       time.Duration(env.GoogleBooksTimeout) * time.Second,
		RatePerSecond: env.GoogleBooksRatePerSecond,
	}, cache, log.Named("catalog"))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "catalog_breaker": catalog.BreakerState()})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	publicRouter := engine.Group("")
	route_book.NewBookRouter(route_book.Options{
		Timeout:         timeout,
		RecLimit:        env.RecLimit,
		MaxResults:      env.GoogleBooksMaxResults,
		MinCacheResults: env.SearchMinCacheResults,
	}, db, catalog, tokenutil.NewJWTValidator(env.AccessTokenSecret), log, publicRouter)
}
