package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"UAsync_Community/internal/repository/mysql"
	"UAsync_Community/internal/repository/redis"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db  *gorm.DB
	rdb *goredis.Client
}

func NewHealthHandler(db *gorm.DB, rdb *goredis.Client) *HealthHandler {
	return &HealthHandler{db: db, rdb: rdb}
}

// Healthz 检查连接池，配置了 Redis 时一并检查
func (h *HealthHandler) Healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	// 具体错误只写日志，不返回给调用方
	if err := mysql.Ping(ctx, h.db); err != nil {
		slog.Error("health: database ping failed", "err", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down"})
		return
	}
	if h.rdb != nil {
		if err := redis.Ping(ctx, h.rdb); err != nil {
			slog.Error("health: redis ping failed", "err", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
