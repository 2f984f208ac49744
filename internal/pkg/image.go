package pkg

// 图片压缩参数
const (
	ProfileImageSize = 500
	PostImageSize    = 800
	JPEGQuality      = 80
)

// ImageProcessor 将上传的原始字节缩放并重新编码
type ImageProcessor interface {
	Compress(data []byte, width, height int) ([]byte, error)
}
