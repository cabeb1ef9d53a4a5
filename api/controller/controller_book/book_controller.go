package controller_book

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Super-Badmen-Viper/BookRec/api/controller"
	"github.com/Super-Badmen-Viper/BookRec/domain"
	"github.com/Super-Badmen-Viper/BookRec/domain/domain_book/book_interface"
	"github.com/gin-gonic/gin"
)

type BookController struct {
	BookUsecase book_interface.BookUsecase
}

func NewBookController(uc book_interface.BookUsecase) *BookController {
	return &BookController{BookUsecase: uc}
}

// GetBook GET /book?book_id=
func (bc *BookController) GetBook(c *gin.Context) {
	bookID := strings.TrimSpace(c.Query("book_id"))
	if bookID == "" {
		controller.ErrorResponse(c, http.StatusBadRequest, "INVALID_PARAMETERS", "缺少必要参数: book_id")
		return
	}

	book, err := bc.BookUsecase.GetBook(c.Request.Context(), bookID)
	if err != nil {
		_ = c.Error(err)
		if errors.Is(err, domain.ErrNotFound) {
			controller.ErrorResponse(c, http.StatusNotFound, "RESOURCE_NOT_FOUND", "book not present in database")
			return
		}
		controller.ErrorResponse(c, http.StatusInternalServerError, "BOOK_LOOKUP_ERROR", "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"book": book})
}
