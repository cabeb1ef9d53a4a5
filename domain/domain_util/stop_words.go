package domain_util

import (
	"bufio"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/Super-Badmen-Viper/BookRec/domain/domain_resource"
)

const (
	StopWordsTFIDF = "english_tfidf.txt"
	StopWordsRAKE  = "english_rake.txt"
)

var (
	stopWordsMu    sync.Mutex
	stopWordsCache = make(map[string]map[string]bool)
)

// LoadStopWords 从嵌入的文件系统加载停用词表，结果只读且按文件名缓存
func LoadStopWords(name string) (map[string]bool, error) {
	stopWordsMu.Lock()
	defer stopWordsMu.Unlock()

	if words, ok := stopWordsCache[name]; ok {
		return words, nil
	}

	content, err := domain_resource.StopWordsFS.ReadFile("stopwords/" + name)
	if err != nil {
		return nil, fmt.Errorf("无法读取嵌入的停用词文件 %s: %w", name, err)
	}
	words, err := loadStopWordsFromContent(string(content))
	if err != nil {
		return nil, fmt.Errorf("解析停用词文件失败 %s: %w", name, err)
	}
	stopWordsCache[name] = words
	return words, nil
}

// MustLoadStopWords 内置词表缺失属于构建错误
func MustLoadStopWords(name string) map[string]bool {
	words, err := LoadStopWords(name)
	if err != nil {
		panic(err)
	}
	return words
}

func loadStopWordsFromContent(content string) (map[string]bool, error) {
	result := make(map[string]bool)
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" && !strings.HasPrefix(word, "//") {
			// 所有停用词都以小写形式存储
			result[strings.ToLower(word)] = true
		}
	}
	return result, scanner.Err()
}

var invalidRegex = regexp.MustCompile(`[\x00-\x1F\x7F\x{200B}-\x{200F}\x{2028}\x{2029}\x{FEFF}]`)

// StripInvalidChars 将控制字符与零宽字符替换为空格
func StripInvalidChars(text string) string {
	return invalidRegex.ReplaceAllString(text, " ")
}
