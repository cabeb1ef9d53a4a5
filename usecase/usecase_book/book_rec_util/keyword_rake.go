package book_rec_util

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Super-Badmen-Viper/BookRec/domain"
	"github.com/Super-Badmen-Viper/BookRec/domain/domain_util"
)

// RakeExtractor 基于词共现的关键短语抽取（RAKE，degree/frequency 评分）
type RakeExtractor struct {
	stopWords map[string]bool
	maxLength int
}

func NewRakeExtractor() *RakeExtractor {
	return &RakeExtractor{
		stopWords: domain_util.MustLoadStopWords(domain_util.StopWordsRAKE),
		maxLength: 100000,
	}
}

type rankedPhrase struct {
	phrase string
	score  float64
}

// Extract 返回去重后的短语列表，得分降序；同分按短语字符串降序
func (r *RakeExtractor) Extract(text string) ([]string, error) {
	phrases := r.candidatePhrases(text)
	if len(phrases) == 0 {
		return nil, fmt.Errorf("%w: %q", domain.ErrNoSalientKeyword, text)
	}

	frequency := make(map[string]int)
	degree := make(map[string]int)
	for _, phrase := range phrases {
		for _, word := range phrase {
			frequency[word]++
			degree[word] += len(phrase)
		}
	}

	ranked := make([]rankedPhrase, 0, len(phrases))
	seen := make(map[string]bool, len(phrases))
	for _, phrase := range phrases {
		joined := strings.Join(phrase, " ")
		if seen[joined] {
			continue
		}
		seen[joined] = true

		score := 0.0
		for _, word := range phrase {
			score += float64(degree[word]) / float64(frequency[word])
		}
		ranked = append(ranked, rankedPhrase{phrase: joined, score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].phrase > ranked[j].phrase
	})

	out := make([]string, len(ranked))
	for i, p := range ranked {
		out[i] = p.phrase
	}
	return out, nil
}

// TopKeyword 仅取排名第一的短语
func (r *RakeExtractor) TopKeyword(text string) (string, error) {
	phrases, err := r.Extract(text)
	if err != nil {
		return "", err
	}
	return phrases[0], nil
}

// candidatePhrases 以停用词与标点切分出连续的内容词序列
func (r *RakeExtractor) candidatePhrases(text string) [][]string {
	var (
		phrases [][]string
		current []string
	)
	flush := func() {
		if len(current) > 0 && len(current) <= r.maxLength {
			phrases = append(phrases, current)
		}
		current = nil
	}

	for _, token := range wordPunctTokens(text) {
		if !isWord(token) || r.stopWords[token] {
			flush()
			continue
		}
		current = append(current, token)
	}
	flush()
	return phrases
}
