package book_models

// SearchResult 目录检索结果；StatusCode 为 HTTP 语义的状态码，空结果同样为 200
type SearchResult struct {
	Books      []Book
	StatusCode int
	Degraded   bool // 外部目录不可用，仅返回本地缓存结果
}
