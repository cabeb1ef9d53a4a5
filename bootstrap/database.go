package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/Super-Badmen-Viper/BookRec/mongo"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func NewMongoDatabase(env *Env, log *zap.Logger) (mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.NewClient(env.DBURI)
	if err != nil {
		return nil, fmt.Errorf("创建MongoDB客户端失败: %w", err)
	}
	if err := client.Connect(ctx); err != nil {
		return nil, fmt.Errorf("连接MongoDB失败: %w", err)
	}
	if err := client.Ping(ctx); err != nil {
		return nil, fmt.Errorf("MongoDB不可达: %w", err)
	}

	log.Info("connected to MongoDB", zap.String("db", env.DBName))
	return client, nil
}

func CloseMongoDBConnection(client mongo.Client, log *zap.Logger) {
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Disconnect(ctx); err != nil {
		log.Error("failed to close MongoDB connection", zap.Error(err))
		return
	}
	log.Info("connection to MongoDB closed")
}

// NewRedisClient REDIS_ADDR 为空时返回 nil；Redis 不可达只告警，检索退化为不缓存
func NewRedisClient(env *Env, log *zap.Logger) redis.UniversalClient {
	if env.RedisAddr == "" {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     env.RedisAddr,
		Password: env.RedisPassword,
		DB:       env.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("redis unreachable, catalog responses will not be cached",
			zap.String("addr", env.RedisAddr), zap.Error(err))
		_ = rdb.Close()
		return nil
	}
	return rdb
}
