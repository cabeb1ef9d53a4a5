package book_rec_util

import (
	"sort"

	"github.com/Super-Badmen-Viper/BookRec/domain/domain_book/book_models"
)

const MaxRecommendations = 10

type SimilarityRanker struct {
	vectorizer func() *TfidfVectorizer
	limit      int
}

// NewSimilarityRanker limit 超出 [1, MaxRecommendations] 时取 MaxRecommendations
func NewSimilarityRanker(limit int) *SimilarityRanker {
	if limit <= 0 || limit > MaxRecommendations {
		limit = MaxRecommendations
	}
	return &SimilarityRanker{vectorizer: NewTfidfVectorizer, limit: limit}
}

type scoredIndex struct {
	index int
	score float64
}

// Rank 以种子图书为锚点，按TF-IDF余弦相似度降序返回其余候选（稳定排序，同分保持输入顺序），
// 结果不含种子图书且按 book_id 去重。
func (r *SimilarityRanker) Rank(candidates []book_models.Book, seedBookID string) []book_models.Book {
	// book_id -> 下标，后写覆盖前写，锚点即最后追加的种子
	indices := make(map[string]int, len(candidates))
	infos := make([]string, len(candidates))
	for i, book := range candidates {
		indices[book.BookID] = i
		infos[i] = book.Info()
	}

	anchor, ok := indices[seedBookID]
	if !ok {
		return []book_models.Book{}
	}

	similarity := SimilarityMatrix(r.vectorizer().FitTransform(infos))

	scores := make([]scoredIndex, 0, len(candidates)-1)
	for i, s := range similarity[anchor] {
		if i == anchor {
			continue
		}
		scores = append(scores, scoredIndex{index: i, score: s})
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].score > scores[j].score
	})
	if len(scores) > r.limit {
		scores = scores[:r.limit]
	}

	recs := make([]book_models.Book, 0, len(scores))
	seen := map[string]struct{}{seedBookID: {}}
	for _, s := range scores {
		book := candidates[s.index]
		if _, dup := seen[book.BookID]; dup {
			continue
		}
		seen[book.BookID] = struct{}{}
		recs = append(recs, book)
	}
	return recs
}
