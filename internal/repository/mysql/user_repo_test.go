package mysql

import (
	"context"
	"errors"
	"testing"

	"UAsync_Community/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserRepository(t *testing.T) {
	db := newTestDB(t)
	repo := &UserRepository{DB: db}
	ctx := context.Background()

	u := &model.User{Email: "a@example.com", Username: "a", Password: "hash", RoleID: 1}
	require.NoError(t, repo.Create(ctx, u))
	require.NotZero(t, u.ID)

	exists, err := repo.ExistsByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "b@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repo.FindByEmail(ctx, "b@example.com")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	n, err := repo.UpdateProfile(ctx, u.ID, ProfileUpdate{Email: "a@example.com", Name: "Alice", Biography: "hi"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, "hi", got.Biography)

	n, err = repo.UpdateProfile(ctx, u.ID+100, ProfileUpdate{Email: "x@example.com"})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestPostAndEventRepositories(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	posts := &PostRepository{DB: db}
	events := &EventRepository{DB: db}

	seedPost(t, db, 1, 10)
	seedPost(t, db, 2, 10)
	seedPost(t, db, 3, 11)

	list, err := posts.ListBySubgroup(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, uint64(2), list[0].ID)

	n, err := posts.DeleteBySubgroup(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = posts.Delete(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	n, err = posts.Delete(ctx, 3)
	require.NoError(t, err)
	assert.Zero(t, n)

	ev := &model.Event{GroupID: 10, UserID: 7, Text: "meetup", Date: "2024-01-01", Time: "10:00", Location: "hall"}
	require.NoError(t, events.Create(ctx, ev))

	// 非创建者删除不生效
	n, err = events.DeleteByOwner(ctx, ev.ID, 8)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = events.DeleteByOwner(ctx, ev.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	evs, err := events.ListBySubgroup(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, evs)
}
