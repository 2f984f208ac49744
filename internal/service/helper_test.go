package service

import (
	"context"
	"errors"
	"testing"

	"UAsync_Community/internal/config"
	"UAsync_Community/internal/pkg"
	"UAsync_Community/internal/repository/mysql"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := mysql.Connect(&config.Config{DBType: "sqlite", DBName: ":memory:", DBMaxOpenConns: 1})
	require.NoError(t, err)
	require.NoError(t, mysql.AutoMigrate(db))
	t.Cleanup(func() { _ = mysql.Close(db) })
	return db
}

type compressCall struct {
	size          int
	width, height int
}

// fakeImages 记录调用参数，返回固定内容
type fakeImages struct {
	calls []compressCall
	err   error
}

func (f *fakeImages) Compress(data []byte, width, height int) ([]byte, error) {
	f.calls = append(f.calls, compressCall{size: len(data), width: width, height: height})
	if f.err != nil {
		return nil, f.err
	}
	return []byte("jpeg"), nil
}

var _ pkg.ImageProcessor = (*fakeImages)(nil)

type fakeLocker struct {
	acquired   bool
	acquireErr error
	keys       []string
	released   []string
}

func (f *fakeLocker) Acquire(ctx context.Context, key, token string) (bool, error) {
	f.keys = append(f.keys, key)
	return f.acquired, f.acquireErr
}

func (f *fakeLocker) Release(ctx context.Context, key, token string) error {
	f.released = append(f.released, key)
	return nil
}

var errRedisDown = errors.New("redis down")
