package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"UAsync_Community/internal/pkg"

	"github.com/gin-gonic/gin"
)

const (
	titleImageField   = "title_image"
	profileImageField = "profile_image"
	mainGroupField    = "image"
)

// readImage 读取单个上传图片；没有文件时返回 nil
func readImage(c *gin.Context, field string, maxBytes int64) ([]byte, error) {
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", pkg.ErrUpload, err)
	}
	if fh.Size > maxBytes {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", pkg.ErrUpload, maxBytes)
	}
	if !strings.HasPrefix(fh.Header.Get("Content-Type"), "image/") {
		return nil, fmt.Errorf("%w: invalid file type, only images are allowed", pkg.ErrUpload)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", pkg.ErrUpload, err)
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", pkg.ErrUpload, err)
	}
	return data, nil
}
