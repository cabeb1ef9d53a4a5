package controller_book

import (
	"errors"
	"net/http"

	"github.com/Super-Badmen-Viper/BookRec/api/controller"
	"github.com/Super-Badmen-Viper/BookRec/domain"
	"github.com/Super-Badmen-Viper/BookRec/domain/domain_book/book_interface"
	"github.com/Super-Badmen-Viper/BookRec/domain/domain_book/book_models"
	"github.com/gin-gonic/gin"
)

type RecommendController struct {
	RecommendUsecase book_interface.RecommendUsecase
}

func NewRecommendController(uc book_interface.RecommendUsecase) *RecommendController {
	return &RecommendController{RecommendUsecase: uc}
}

// GetRecommendations GET /rec?token=
func (rc *RecommendController) GetRecommendations(c *gin.Context) {
	recs, err := rc.RecommendUsecase.Recommend(c.Request.Context(), c.Query("token"))
	if err != nil {
		_ = c.Error(err)
		status, message := recommendError(err)
		controller.ErrorResponse(c, status, "", message)
		return
	}
	if recs == nil {
		recs = []book_models.Book{}
	}
	c.JSON(http.StatusOK, gin.H{"rec": recs})
}

// recommendError 对外消息保持与既有客户端一致
func recommendError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrAuth):
		return http.StatusBadRequest, "Invalid token"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusPaymentRequired, "user id not present in database"
	case errors.Is(err, domain.ErrEmptyHistory):
		return http.StatusBadRequest, "No books read so far!"
	case errors.Is(err, domain.ErrBookNotFound):
		return http.StatusNotFound, "book not present in database"
	case errors.Is(err, domain.ErrNoSalientKeyword):
		return http.StatusUnprocessableEntity, "No keyword could be extracted"
	default:
		return catalogError(err)
	}
}

func catalogError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrCatalogUnavailable):
		return http.StatusServiceUnavailable, "Book catalog unavailable"
	case errors.Is(err, domain.ErrCatalogAuth):
		return http.StatusBadGateway, "Book catalog rejected the request"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
