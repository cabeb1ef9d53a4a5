package route_book

import (
	"time"

	"github.com/Super-Badmen-Viper/BookRec/api/controller/controller_book"
	"github.com/Super-Badmen-Viper/BookRec/domain/domain_book/book_interface"
	"github.com/Super-Badmen-Viper/BookRec/mongo"
	"github.com/Super-Badmen-Viper/BookRec/repository/repository_book"
	"github.com/Super-Badmen-Viper/BookRec/usecase/usecase_book"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Options struct {
	Timeout         time.Duration
	RecLimit        int
	MaxResults      int
	MinCacheResults int
}

// NewBookRouter 装配 repository -> usecase -> controller 并注册 /rec /search /book
func NewBookRouter(
	opts Options,
	db mongo.Database,
	catalog book_interface.CatalogClient,
	tokens book_interface.TokenValidator,
	log *zap.Logger,
	group *gin.RouterGroup,
) {
	userRepo := repository_book.NewUserRepository(db)
	bookRepo := repository_book.NewBookRepository(db)
	readRepo := repository_book.NewBookReadRepository(db)

	searchUsecase := usecase_book.NewCatalogSearchUsecase(bookRepo, catalog, usecase_book.CatalogSearchConfig{
		MaxResults:      opts.MaxResults,
		MinCacheResults: opts.MinCacheResults,
		Timeout:         opts.Timeout,
	}, log)
	recommendUsecase := usecase_book.NewRecommendUsecase(usecase_book.RecommendDeps{
		Tokens: tokens,
		Users:  userRepo,
		Books:  bookRepo,
		Reads:  readRepo,
		Search: searchUsecase,
	}, opts.RecLimit, opts.Timeout, log)
	bookUsecase := usecase_book.NewBookUsecase(bookRepo, opts.Timeout)

	recCtrl := controller_book.NewRecommendController(recommendUsecase)
	searchCtrl := controller_book.NewSearchController(searchUsecase)
	bookCtrl := controller_book.NewBookController(bookUsecase)

	group.GET("/rec", recCtrl.GetRecommendations)
	group.GET("/search", searchCtrl.Search)
	group.GET("/book", bookCtrl.GetBook)
}
