package book_rec_util

import (
	"github.com/Super-Badmen-Viper/BookRec/domain/domain_book/book_models"
)

// FilterCandidates 按输入顺序保留未读且标题未出现过的图书，最后无条件追加种子图书。
// 种子可能与已保留条目重复，排序锚点取最后一次出现的位置。
func FilterCandidates(
	raw []book_models.Book,
	alreadyRead map[string]struct{},
	seed book_models.Book,
) []book_models.Book {
	filtered := make([]book_models.Book, 0, len(raw)+1)
	titles := make(map[string]struct{}, len(raw))

	for _, book := range raw {
		if _, read := alreadyRead[book.BookID]; read {
			continue
		}
		if _, dup := titles[book.Title]; dup {
			continue
		}
		titles[book.Title] = struct{}{}
		filtered = append(filtered, book)
	}

	return append(filtered, seed)
}
