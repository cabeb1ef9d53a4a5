package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Super-Badmen-Viper/BookRec/api/route"
	"github.com/Super-Badmen-Viper/BookRec/bootstrap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	configFile := flag.String("config", ".env", "dotenv 配置文件路径")
	flag.Parse()

	app, err := bootstrap.App(*configFile)
	if err != nil {
		log.Fatalf("启动失败: %v", err)
	}
	defer app.Close()

	env := app.Env
	db := app.Mongo.Database(env.DBName)
	timeout := time.Duration(env.ContextTimeout) * time.Second

	if env.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	route.Setup(env, timeout, db, app.Redis, app.Log, engine)

	srv := &http.Server{
		Addr:              env.ServerAddress,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		app.Log.Info("server listening", zap.String("addr", env.ServerAddress))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.Log.Error("server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		app.Log.Error("graceful shutdown failed", zap.Error(err))
	}
}
