package controller_book

import (
	"net/http"
	"strings"

	"github.com/Super-Badmen-Viper/BookRec/api/controller"
	"github.com/Super-Badmen-Viper/BookRec/domain/domain_book/book_interface"
	"github.com/Super-Badmen-Viper/BookRec/domain/domain_book/book_models"
	"github.com/gin-gonic/gin"
)

type SearchController struct {
	CatalogSearch book_interface.CatalogSearch
}

func NewSearchController(search book_interface.CatalogSearch) *SearchController {
	return &SearchController{CatalogSearch: search}
}

// Search GET /search?query=
func (sc *SearchController) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		controller.ErrorResponse(c, http.StatusBadRequest, "INVALID_PARAMETERS", "缺少必要参数: query")
		return
	}

	result, err := sc.CatalogSearch.Search(c.Request.Context(), query)
	if err != nil {
		_ = c.Error(err)
		status, message := catalogError(err)
		controller.ErrorResponse(c, status, "CATALOG_ERROR", message)
		return
	}

	books := result.Books
	if books == nil {
		books = []book_models.Book{}
	}
	c.JSON(http.StatusOK, gin.H{
		"books":    books,
		"count":    len(books),
		"degraded": result.Degraded,
	})
}
