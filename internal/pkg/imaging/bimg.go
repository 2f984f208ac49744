// Package imaging 基于 libvips（cgo）的图片处理，只在 cmd 中引入
package imaging

import (
	"fmt"

	"UAsync_Community/internal/pkg"

	"github.com/h2non/bimg"
)

// BimgProcessor 裁剪填满目标尺寸后输出 JPEG
type BimgProcessor struct {
	Quality int
}

func NewBimgProcessor() *BimgProcessor {
	return &BimgProcessor{Quality: pkg.JPEGQuality}
}

func (p *BimgProcessor) Compress(data []byte, width, height int) ([]byte, error) {
	out, err := bimg.NewImage(data).Process(bimg.Options{
		Width:   width,
		Height:  height,
		Crop:    true,
		Gravity: bimg.GravityCentre,
		Type:    bimg.JPEG,
		Quality: p.Quality,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", pkg.ErrImage, err)
	}
	return out, nil
}

var _ pkg.ImageProcessor = (*BimgProcessor)(nil)
