package bootstrap

import (
	"github.com/Super-Badmen-Viper/BookRec/mongo"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Application struct {
	Env   *Env
	Log   *zap.Logger
	Mongo mongo.Client
	Redis redis.UniversalClient
}

func App(configFile string) (*Application, error) {
	env, err := NewEnv(configFile)
	if err != nil {
		return nil, err
	}

	log, err := NewLogger(env.AppEnv)
	if err != nil {
		return nil, err
	}

	client, err := NewMongoDatabase(env, log)
	if err != nil {
		return nil, err
	}

	app := &Application{
		Env:   env,
		Log:   log,
		Mongo: client,
		Redis: NewRedisClient(env, log),
	}
	mongo.CreateIndexes(app.Mongo.Database(env.DBName), log)
	return app, nil
}

func (app *Application) Close() {
	CloseMongoDBConnection(app.Mongo, app.Log)
	if app.Redis != nil {
		_ = app.Redis.Close()
	}
	_ = app.Log.Sync()
}
