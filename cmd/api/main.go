package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"UAsync_Community/internal/config"
	"UAsync_Community/internal/pkg"
	"UAsync_Community/internal/pkg/imaging"
	"UAsync_Community/internal/repository/mysql"
	"UAsync_Community/internal/repository/redis"
	"UAsync_Community/internal/router"
	"UAsync_Community/internal/service"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config: load failed", "err", err)
		os.Exit(1)
	}
	pkg.SetupLogger(os.Stdout, cfg.LogLevel)
	gin.SetMode(gin.ReleaseMode)

	db, err := mysql.Connect(cfg)
	if err != nil {
		slog.Error("mysql: connect failed", "err", err)
		os.Exit(1)
	}
	defer func() {
		if err := mysql.Close(db); err != nil {
			slog.Error("mysql: close failed", "err", err)
		}
	}()

	// 自动建表（开发阶段使用）
	if cfg.DBAutoMigrate {
		if err := mysql.AutoMigrate(db); err != nil {
			slog.Error("mysql: auto migrate failed", "err", err)
			os.Exit(1)
		}
	}

	deps := router.Deps{
		DB:             db,
		Images:         imaging.NewBimgProcessor(),
		UploadMaxBytes: cfg.UploadMaxBytes,
	}

	// 连接redis（可选）
	var rdb *goredis.Client
	if cfg.RedisAddr != "" {
		if rdb, err = redis.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err != nil {
			slog.Error("redis: connect failed", "addr", cfg.RedisAddr, "err", err)
			os.Exit(1)
		}
		defer rdb.Close()
		deps.Redis = rdb
		deps.Lock = redis.NewDistLock(rdb)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// outbox 投递：配置了 Kafka 则写入 Kafka，否则只打印
	sender := service.LogSender
	if len(cfg.KafkaBrokers) > 0 {
		producer := pkg.NewKafkaProducer(pkg.KafkaConfig{Brokers: cfg.KafkaBrokers, Topic: cfg.KafkaTopic})
		defer producer.Close()
		sender = service.KafkaSender(producer)
		slog.Info("outbox: publishing to kafka", "brokers", cfg.KafkaBrokers, "topic", producer.Topic())
	}
	relayer := service.NewOutboxRelayer(db, sender, cfg.OutboxInterval)
	relayerDone := make(chan struct{})
	go func() {
		defer close(relayerDone)
		relayer.Run(ctx)
	}()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.InitRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		slog.Info("http: listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http: serve failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("http: shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http: shutdown failed", "err", err)
	}
	<-relayerDone
}
