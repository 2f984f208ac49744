package mysql

import (
	"context"
	"testing"

	"UAsync_Community/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestListWithSubgroupsKeepsEmptyMainGroups(t *testing.T) {
	db := newTestDB(t)
	seedMainGroups(t, db, 1, 2)
	seedSubgroup(t, db, 10, 1, "a")
	seedSubgroup(t, db, 11, 1, "b")

	list, err := (&MainGroupRepository{DB: db}).ListWithSubgroups(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, uint64(1), list[0].MainGroupID)
	require.Len(t, list[0].Subgroups, 2)
	assert.Equal(t, uint64(10), list[0].Subgroups[0].SubgroupID)
	assert.Equal(t, "a", list[0].Subgroups[0].SubgroupName)
	assert.Equal(t, "caption", list[0].Subgroups[0].SubgroupCaption)

	assert.Equal(t, uint64(2), list[1].MainGroupID)
	assert.NotNil(t, list[1].Subgroups)
	assert.Empty(t, list[1].Subgroups)
}

func TestSubgroupNameUniquePerMainGroup(t *testing.T) {
	db := newTestDB(t)
	repo := &SubGroupRepository{DB: db}
	ctx := context.Background()
	seedSubgroup(t, db, 10, 5, "Alpha")

	n, err := repo.CountByName(ctx, 5, "Alpha")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.CountByName(ctx, 6, "Alpha")
	require.NoError(t, err)
	assert.Zero(t, n)

	// 唯一索引兜底
	err = repo.Create(ctx, &model.SubGroup{MainGroupID: 5, Name: "Alpha", Caption: "x"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	require.NoError(t, repo.Create(ctx, &model.SubGroup{MainGroupID: 6, Name: "Alpha", Caption: "x"}))
}

func TestUpdateTitleImage(t *testing.T) {
	db := newTestDB(t)
	seedMainGroups(t, db, 1)
	repo := &MainGroupRepository{DB: db}
	ctx := context.Background()

	n, err := repo.UpdateTitleImage(ctx, 1, []byte("<svg/>"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	g, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []byte("<svg/>"), g.TitleImage)

	n, err = repo.UpdateTitleImage(ctx, 99, []byte("x"))
	require.NoError(t, err)
	assert.Zero(t, n)
}
