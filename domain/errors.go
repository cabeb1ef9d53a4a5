package domain

import "errors"

// 推荐链路上的错误分类，由controller统一映射为HTTP状态码
var (
	ErrAuth = errors.New("invalid token")

	ErrNotFound     = errors.New("not found")
	ErrUserNotFound = &notFoundError{what: "user"}
	ErrBookNotFound = &notFoundError{what: "book"}

	ErrEmptyHistory     = errors.New("no books read so far")
	ErrNoSalientKeyword = errors.New("no salient keyword")

	ErrCatalogUnavailable = errors.New("book catalog unavailable")
	ErrCatalogAuth        = errors.New("book catalog rejected credentials")
)

type notFoundError struct {
	what string
}

func (e *notFoundError) Error() string { return e.what + " not found" }

// Is 使 errors.Is(ErrUserNotFound, ErrNotFound) 成立
func (e *notFoundError) Is(target error) bool { return target == ErrNotFound }
