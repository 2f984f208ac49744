package mysql

import (
	"errors"
	"testing"

	"UAsync_Community/internal/config"
	"UAsync_Community/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var errInjected = errors.New("injected failure")

// newTestDB 每个测试独立的内存库，连接池固定为 1，保证数据不随连接关闭丢失
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Connect(&config.Config{DBType: "sqlite", DBName: ":memory:", DBMaxOpenConns: 1})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	t.Cleanup(func() { _ = Close(db) })
	return db
}

// failOn 在指定表的 query/delete/create 上注入错误，返回的函数用于解除
func failOn(t *testing.T, db *gorm.DB, kind, table string) (disarm func()) {
	t.Helper()
	armed := true
	fn := func(tx *gorm.DB) {
		if armed && tx.Statement.Table == table {
			_ = tx.AddError(errInjected)
		}
	}
	name := "test:fail_" + kind + "_" + table
	cb := db.Callback()
	switch kind {
	case "query":
		require.NoError(t, cb.Query().Before("gorm:query").Register(name, fn))
	case "delete":
		require.NoError(t, cb.Delete().Before("gorm:delete").Register(name, fn))
	case "create":
		require.NoError(t, cb.Create().Before("gorm:create").Register(name, fn))
	default:
		t.Fatalf("unknown callback kind %q", kind)
	}
	return func() { armed = false }
}

func seedMainGroups(t *testing.T, db *gorm.DB, ids ...uint64) {
	t.Helper()
	for _, id := range ids {
		require.NoError(t, db.Create(&model.MainGroup{ID: id, Name: "main"}).Error)
	}
}

func seedSubgroup(t *testing.T, db *gorm.DB, id, mainGroupID uint64, name string) {
	t.Helper()
	require.NoError(t, db.Create(&model.SubGroup{
		ID:          id,
		MainGroupID: mainGroupID,
		UserID:      1,
		Name:        name,
		Caption:     "caption",
	}).Error)
}

func seedPost(t *testing.T, db *gorm.DB, id, groupID uint64) {
	t.Helper()
	require.NoError(t, db.Create(&model.Post{ID: id, GroupID: groupID, UserID: 1, Heading: "post"}).Error)
}

type pair struct {
	A, B uint64
}

func mainPairs(t *testing.T, db *gorm.DB) []pair {
	t.Helper()
	var rows []model.SubscribedMainGroup
	require.NoError(t, db.Order("id ASC").Find(&rows).Error)
	out := make([]pair, 0, len(rows))
	for _, r := range rows {
		out = append(out, pair{r.UserID, r.MainGroupID})
	}
	return out
}

func subPairs(t *testing.T, db *gorm.DB) []pair {
	t.Helper()
	var rows []model.SubscribedSubGroup
	require.NoError(t, db.Order("id ASC").Find(&rows).Error)
	out := make([]pair, 0, len(rows))
	for _, r := range rows {
		out = append(out, pair{r.UserID, r.SubgroupID})
	}
	return out
}

func outboxCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&model.SubscriptionOutbox{}).Count(&n).Error)
	return n
}
