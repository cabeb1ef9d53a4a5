package domain_resource

import "embed"

// StopWordsFS 内置停用词表：english_tfidf.txt 用于TF-IDF词表过滤，english_rake.txt 用于关键词短语切分
//
//go:embed stopwords/*.txt
var StopWordsFS embed.FS
