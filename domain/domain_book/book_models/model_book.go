package book_models

import (
	"encoding/json"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// 存储与接口层使用的缺省哨兵值
const (
	NoSummary  = "No summary available"
	NoCategory = "No category available"
	NoAuthor   = "No author available"
)

// Book 图书目录记录；Summary/Categories/Authors 为 nil 表示缺省
type Book struct {
	BookID     string
	Title      string
	Summary    *string
	Categories *string
	Authors    *string
}

// bookDocument 序列化边界上的形态，缺省字段以哨兵字符串表示
type bookDocument struct {
	BookID     string `bson:"book_id" json:"book_id"`
	Title      string `bson:"title" json:"title"`
	Summary    string `bson:"summary" json:"summary"`
	Categories string `bson:"categories" json:"categories"`
	Authors    string `bson:"authors" json:"authors"`
}

// Text 返回可选字段；空字符串视为缺省
func Text(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

func encodeOptional(v *string, sentinel string) string {
	if v == nil || *v == "" {
		return sentinel
	}
	return *v
}

func decodeOptional(s, sentinel string) *string {
	if s == sentinel {
		return nil
	}
	return Text(s)
}

func (b Book) document() bookDocument {
	return bookDocument{
		BookID:     b.BookID,
		Title:      b.Title,
		Summary:    encodeOptional(b.Summary, NoSummary),
		Categories: encodeOptional(b.Categories, NoCategory),
		Authors:    encodeOptional(b.Authors, NoAuthor),
	}
}

func (b *Book) fromDocument(doc bookDocument) {
	b.BookID = doc.BookID
	b.Title = doc.Title
	b.Summary = decodeOptional(doc.Summary, NoSummary)
	b.Categories = decodeOptional(doc.Categories, NoCategory)
	b.Authors = decodeOptional(doc.Authors, NoAuthor)
}

func (b Book) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.document())
}

func (b *Book) UnmarshalJSON(data []byte) error {
	var doc bookDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	b.fromDocument(doc)
	return nil
}

func (b Book) MarshalBSON() ([]byte, error) {
	return bson.Marshal(b.document())
}

func (b *Book) UnmarshalBSON(data []byte) error {
	var doc bookDocument
	if err := bson.Unmarshal(data, &doc); err != nil {
		return err
	}
	b.fromDocument(doc)
	return nil
}

// Info 推荐用的拼接文本：title + summary + categories + authors（存在时），空格分隔
func (b Book) Info() string {
	var sb strings.Builder
	sb.WriteString(b.Title)
	for _, part := range []*string{b.Summary, b.Categories, b.Authors} {
		if part != nil {
			sb.WriteByte(' ')
			sb.WriteString(*part)
		}
	}
	return sb.String()
}

// KeywordSource 关键词抽取的输入：有简介用简介，否则用标题
func (b Book) KeywordSource() string {
	if b.Summary != nil {
		return *b.Summary
	}
	return b.Title
}
