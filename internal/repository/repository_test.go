package repository

import (
	"Board/internal/model"
	"Board/internal/pkg/database"
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var dbSeq atomic.Int64

func newTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := database.NewSQLiteDB(fmt.Sprintf("repo_%s_%d", name, dbSeq.Add(1)))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return NewStore(db)
}

func seedPost(t *testing.T, store *Store) *model.Post {
	t.Helper()
	ctx := context.Background()
	user := &model.User{LoginID: "writer", Password: "x", Username: "writer", Role: "USER"}
	require.NoError(t, store.Users.CreateUser(ctx, user))
	post := &model.Post{UserID: user.ID, Title: "t", Content: "c"}
	require.NoError(t, store.Posts.CreatePost(ctx, post))
	return post
}

func TestCountersNeverGoNegative(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	post := seedPost(t, store)

	counters := []model.Counter{model.CounterViews, model.CounterLikes, model.CounterDislikes, model.CounterBookmarks}
	for _, counter := range counters {
		require.NoError(t, store.Posts.DecrementCounter(ctx, post.ID, counter))
		require.NoError(t, store.Posts.IncrementCounter(ctx, post.ID, counter))
		require.NoError(t, store.Posts.IncrementCounter(ctx, post.ID, counter))
		require.NoError(t, store.Posts.DecrementCounter(ctx, post.ID, counter))
	}

	reloaded, err := store.Posts.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), reloaded.ViewCount)
	assert.Equal(t, int64(1), reloaded.LikeCount)
	assert.Equal(t, int64(1), reloaded.DislikeCount)
	assert.Equal(t, int64(1), reloaded.BookmarkCount)

	for i := 0; i < 3; i++ {
		require.NoError(t, store.Posts.DecrementCounter(ctx, post.ID, model.CounterLikes))
	}
	likes, dislikes, err := store.Posts.GetReactionCounts(ctx, post.ID)
	require.NoError(t, err)
	assert.Zero(t, likes)
	assert.Equal(t, int64(1), dislikes)
}

func TestUnknownCounterRejected(t *testing.T) {
	store := newTestStore(t)
	post := seedPost(t, store)

	err := store.Posts.IncrementCounter(context.Background(), post.ID, model.Counter("title"))
	assert.ErrorIs(t, err, ErrUnknownCounter)
	err = store.Posts.DecrementCounter(context.Background(), post.ID, model.Counter("id; DROP TABLE posts"))
	assert.ErrorIs(t, err, ErrUnknownCounter)
}

func TestTransactionRollsBack(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	post := seedPost(t, store)

	err := store.Transaction(ctx, func(tx *Store) error {
		if err := tx.Posts.IncrementCounter(ctx, post.ID, model.CounterLikes); err != nil {
			return err
		}
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)

	reloaded, err := store.Posts.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Zero(t, reloaded.LikeCount)
}

func TestDuplicateReactionIsDuplicateError(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	post := seedPost(t, store)

	require.NoError(t, store.Reactions.CreateReaction(ctx, &model.Reaction{PostID: post.ID, UserID: post.UserID, Kind: model.ReactionLike}))
	err := store.Reactions.CreateReaction(ctx, &model.Reaction{PostID: post.ID, UserID: post.UserID, Kind: model.ReactionDislike})
	require.Error(t, err)
	assert.True(t, IsDuplicateError(err))
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(gorm.ErrDuplicatedKey))
	assert.True(t, IsDuplicateError(fmt.Errorf("insert: %w", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})))
	assert.False(t, IsDuplicateError(&mysql.MySQLError{Number: 1213}))
	assert.False(t, IsDuplicateError(gorm.ErrRecordNotFound))
	assert.False(t, IsDuplicateError(nil))
}

func TestGetOrCreateCategoryConcurrent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	ids := make([]uint64, 8)
	errs := make([]error, 8)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			category, err := store.Categories.GetOrCreateCategory(ctx, "free")
			errs[i] = err
			if category != nil {
				ids[i] = category.ID
			}
		}(i)
	}
	wg.Wait()

	for i := range ids {
		require.NoError(t, errs[i])
		assert.Equal(t, ids[0], ids[i])
	}
	all, err := store.Categories.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGetMissingReturnsNil(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user, err := store.Users.GetUserById(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, user)

	post, err := store.Posts.GetPost(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, post)

	comment, err := store.Comments.GetCommentByID(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, comment)
}
