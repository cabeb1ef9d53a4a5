package book_rec_util

import (
	"regexp"

	"github.com/Super-Badmen-Viper/BookRec/domain/domain_util"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var (
	// 两个及以上单词字符组成的词元，对应TF-IDF的默认切词规则
	termPattern = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]{2,}`)
	// 单词或连续标点，标点串作为短语分隔符
	wordPunctPattern = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]+|[^\p{L}\p{M}\p{N}_\s]+`)
	wordPattern      = regexp.MustCompile(`^[\p{L}\p{M}\p{N}_]+$`)
)

// normalize NFC规范化并转小写；cases.Caser 非并发安全，每次调用新建
func normalize(text string) string {
	text = domain_util.StripInvalidChars(text)
	return cases.Lower(language.Und).String(norm.NFC.String(text))
}

// Terms 返回用于TF-IDF的词元序列（未过滤停用词）
func Terms(text string) []string {
	return termPattern.FindAllString(normalize(text), -1)
}

// wordPunctTokens 返回单词与标点串交替的词元序列
func wordPunctTokens(text string) []string {
	return wordPunctPattern.FindAllString(normalize(text), -1)
}

func isWord(token string) bool {
	return wordPattern.MatchString(token)
}
