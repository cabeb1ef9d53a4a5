package controller_book

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Super-Badmen-Viper/BookRec/domain"
	"github.com/Super-Badmen-Viper/BookRec/domain/domain_book/book_mocks"
	"github.com/Super-Badmen-Viper/BookRec/domain/domain_book/book_models"
	"github.com/Super-Badmen-Viper/BookRec/usecase/usecase_book"
	json "github.com/goccy/go-json"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(t *testing.T, r *gin.Engine, target string) (int, map[string]interface{}) {
	t.Helper()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return rec.Code, body
}

func recRouter(uc *book_mocks.RecommendUsecase) *gin.Engine {
	r := gin.New()
	r.GET("/rec", NewRecommendController(uc).GetRecommendations)
	return r
}

func TestGetRecommendations_ErrorMapping(t *testing.T) {
	tests := []struct {
		err     error
		status  int
		message string
	}{
		{fmt.Errorf("%w: signature is invalid", domain.ErrAuth), 400, "Invalid token"},
		{domain.ErrUserNotFound, 402, "user id not present in database"},
		{domain.ErrEmptyHistory, 400, "No books read so far!"},
		{domain.ErrBookNotFound, 404, "book not present in database"},
		{fmt.Errorf("%w: %q", domain.ErrNoSalientKeyword, "it"), 422, "No keyword could be extracted"},
		{domain.ErrCatalogUnavailable, 503, "Book catalog unavailable"},
		{domain.ErrCatalogAuth, 502, "Book catalog rejected the request"},
		{errors.New("connection reset"), 500, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			uc := new(book_mocks.RecommendUsecase)
			uc.On("Recommend", mock.Anything, "tok").Return(nil, tt.err)

			status, body := serve(t, recRouter(uc), "/rec?token=tok")
			assert.Equal(t, tt.status, status)
			assert.Equal(t, map[string]interface{}{"message": tt.message}, body)
		})
	}
}

func TestGetRecommendations_Success(t *testing.T) {
	uc := new(book_mocks.RecommendUsecase)
	uc.On("Recommend", mock.Anything, "tok").Return([]book_models.Book{
		{BookID: "worms", Title: "Sandworm Tales", Summary: book_models.Text("Giant sandworms.")},
	}, nil)

	status, body := serve(t, recRouter(uc), "/rec?token=tok")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []interface{}{
		map[string]interface{}{
			"book_id":    "worms",
			"title":      "Sandworm Tales",
			"summary":    "Giant sandworms.",
			"categories": book_models.NoCategory,
			"authors":    book_models.NoAuthor,
		},
	}, body["rec"])
}

func TestGetRecommendations_EmptyListIsArray(t *testing.T) {
	uc := new(book_mocks.RecommendUsecase)
	uc.On("Recommend", mock.Anything, "tok").Return(nil, nil)

	status, body := serve(t, recRouter(uc), "/rec?token=tok")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []interface{}{}, body["rec"])
}

func TestGetRecommendations_InvalidTokenMakesNoStoreCalls(t *testing.T) {
	tokens := new(book_mocks.TokenValidator)
	users := new(book_mocks.UserRepository)
	books := new(book_mocks.BookRepository)
	reads := new(book_mocks.BookReadRepository)
	search := new(book_mocks.CatalogSearch)
	tokens.On("Validate", "expired").Return("", domain.ErrAuth)

	uc := usecase_book.NewRecommendUsecase(usecase_book.RecommendDeps{
		Tokens: tokens, Users: users, Books: books, Reads: reads, Search: search,
	}, 10, time.Second, zap.NewNop())
	r := gin.New()
	r.GET("/rec", NewRecommendController(uc).GetRecommendations)

	status, body := serve(t, r, "/rec?token=expired")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid token", body["message"])
	users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	books.AssertNotCalled(t, "GetByBookID", mock.Anything, mock.Anything)
	reads.AssertNotCalled(t, "GetReadBookIDs", mock.Anything, mock.Anything)
	search.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestSearch(t *testing.T) {
	search := new(book_mocks.CatalogSearch)
	search.On("Search", mock.Anything, "dune").Return(&book_models.SearchResult{
		Books:      []book_models.Book{{BookID: "dune", Title: "Dune"}},
		StatusCode: 200,
		Degraded:   true,
	}, nil)
	search.On("Search", mock.Anything, "down").Return(nil, domain.ErrCatalogUnavailable)
	search.On("Search", mock.Anything, "none").Return(&book_models.SearchResult{StatusCode: 200}, nil)

	r := gin.New()
	r.GET("/search", NewSearchController(search).Search)

	status, body := serve(t, r, "/search?query=dune")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["count"])
	assert.Equal(t, true, body["degraded"])

	status, body = serve(t, r, "/search?query=none")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []interface{}{}, body["books"])

	status, body = serve(t, r, "/search?query=down")
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, "Book catalog unavailable", body["message"])

	status, _ = serve(t, r, "/search")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestGetBook(t *testing.T) {
	uc := new(book_mocks.BookUsecase)
	dune := book_models.Book{BookID: "dune", Title: "Dune"}
	uc.On("GetBook", mock.Anything, "dune").Return(&dune, nil)
	uc.On("GetBook", mock.Anything, "gone").Return(nil, domain.ErrBookNotFound)
	uc.On("GetBook", mock.Anything, "err").Return(nil, context.DeadlineExceeded)

	r := gin.New()
	r.GET("/book", NewBookController(uc).GetBook)

	status, body := serve(t, r, "/book?book_id=dune")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Dune", body["book"].(map[string]interface{})["title"])
	assert.Equal(t, book_models.NoSummary, body["book"].(map[string]interface{})["summary"])

	status, body = serve(t, r, "/book?book_id=gone")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "book not present in database", body["message"])

	status, _ = serve(t, r, "/book?book_id=err")
	assert.Equal(t, http.StatusInternalServerError, status)

	status, _ = serve(t, r, "/book")
	assert.Equal(t, http.StatusBadRequest, status)
}
