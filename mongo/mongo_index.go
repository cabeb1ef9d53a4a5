package mongo

import (
	"context"
	"time"

	"github.com/Super-Badmen-Viper/BookRec/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// BookTextIndex books 集合的全文索引名，本地缓存检索依赖它
const BookTextIndex = "book_text_search"

func CreateIndexes(db Database, log *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Book Collection
	bookCollection := db.Collection(domain.CollectionBook)
	createIndex(ctx, log, bookCollection, bson.D{{Key: "book_id", Value: 1}}, "book_id", true)
	createIndex(ctx, log, bookCollection, bson.D{{Key: "title", Value: 1}}, "title", false)
	createTextIndex(ctx, log, bookCollection, bson.D{
		{Key: "title", Value: "text"},
		{Key: "summary", Value: "text"},
		{Key: "categories", Value: "text"},
		{Key: "authors", Value: "text"},
	}, BookTextIndex)

	// BookRead Collection
	bookReadCollection := db.Collection(domain.CollectionBookRead)
	createIndex(ctx, log, bookReadCollection, bson.D{{Key: "user_id", Value: 1}}, "user_id", false)
	// 复合唯一索引：同一用户同一本书只记一次
	createIndex(ctx, log, bookReadCollection, bson.D{
		{Key: "user_id", Value: 1},
		{Key: "book_id", Value: 1}}, "user_book_compound", true)
}

func createIndex(
	ctx context.Context,
	log *zap.Logger,
	collection Collection,
	keys bson.D,
	name string,
	unique bool,
) {
	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetName(name).SetUnique(unique),
	}

	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		log.Warn("创建索引失败", zap.String("index", name), zap.Error(err))
	} else {
		log.Debug("索引创建成功", zap.String("index", name))
	}
}

// createTextIndex 每个集合只能有一个文本索引，已存在时跳过
func createTextIndex(
	ctx context.Context,
	log *zap.Logger,
	collection Collection,
	keys bson.D,
	name string,
) {
	specs, err := collection.Indexes().ListSpecifications(ctx)
	if err != nil {
		// 检查失败仍然尝试创建
		log.Warn("检查索引失败", zap.Error(err))
	}

	for _, spec := range specs {
		if spec.Name == name {
			log.Debug("索引已存在，跳过创建", zap.String("index", name))
			return
		}

		var specKeys bson.D
		if err := bson.Unmarshal(spec.KeysDocument, &specKeys); err == nil {
			for _, key := range specKeys {
				if key.Key == "_fts" || key.Value == "text" {
					log.Warn("集合已存在其他文本索引",
						zap.String("existing", spec.Name), zap.String("index", name))
					return
				}
			}
		}
	}

	createIndex(ctx, log, collection, keys, name, false)
}
