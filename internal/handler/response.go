package handler

import (
	"errors"
	"net/http"
	"strconv"

	"UAsync_Community/internal/pkg"

	"github.com/gin-gonic/gin"
)

// writeError 按错误分类映射状态码；500 时只返回 failMsg，不暴露底层错误
func writeError(c *gin.Context, err error, failMsg string) {
	switch {
	case errors.Is(err, pkg.ErrAuth):
		c.JSON(http.StatusUnauthorized, gin.H{"error": pkg.Reason(err)})
	case errors.Is(err, pkg.ErrValidation), errors.Is(err, pkg.ErrUpload):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, pkg.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	case errors.Is(err, pkg.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": failMsg})
	}
}

func invalidParams(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"message": "invalid params"})
}

// parseID 空串或非法数字返回 0，交给 service 层统一校验
func parseID(s string) uint64 {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return id
}
