package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BaseRepository 通用Repository接口，提供标准读取与写入操作
// T: 实体类型，必须包含ID字段
type BaseRepository[T any] interface {
	// 基础操作
	Create(ctx context.Context, entity *T) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*T, error)

	// 查询操作
	GetByFilter(ctx context.Context, filter interface{}) ([]*T, error)
	GetOneByFilter(ctx context.Context, filter interface{}) (*T, error)
}
