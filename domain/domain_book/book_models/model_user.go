package book_models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Email          string             `bson:"email" json:"email"`
	MainCollection []CollectionEntry  `bson:"main_collection" json:"main_collection"` // 下标0为最近阅读
}

type CollectionEntry struct {
	BookID string `bson:"book_id" json:"book_id"`
	Title  string `bson:"title,omitempty" json:"title,omitempty"`
}

// MostRecentRead 返回最近阅读条目；阅读记录为空时 ok=false
func (u *User) MostRecentRead() (CollectionEntry, bool) {
	if u == nil || len(u.MainCollection) == 0 {
		return CollectionEntry{}, false
	}
	return u.MainCollection[0], true
}

// BookRead books_read 集合中的 (user_id, book_id) 记录
type BookRead struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	UserID string             `bson:"user_id"`
	BookID string             `bson:"book_id"`
}
