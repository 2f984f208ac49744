package imaging

import (
	"testing"

	"UAsync_Community/internal/pkg"

	"github.com/stretchr/testify/assert"
)

func TestCompressRejectsNonImage(t *testing.T) {
	p := NewBimgProcessor()
	assert.Equal(t, pkg.JPEGQuality, p.Quality)

	_, err := p.Compress([]byte("not an image"), pkg.PostImageSize, pkg.PostImageSize)
	assert.ErrorIs(t, err, pkg.ErrImage)
}
