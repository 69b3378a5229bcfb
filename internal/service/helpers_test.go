package service

import (
	"Board/internal/api/dto"
	"Board/internal/model"
	"Board/internal/pkg/consts"
	"Board/internal/pkg/database"
	"Board/internal/repository"
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

var dbSeq atomic.Int64

func newTestStore(t *testing.T) *repository.Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.NewSQLiteDB(fmt.Sprintf("%s_%d", name, dbSeq.Add(1)))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return repository.NewStore(db)
}

func createUser(t *testing.T, store *repository.Store, name string) *model.User {
	t.Helper()
	user := &model.User{LoginID: name, Password: "x", Username: name, Role: consts.RoleUser}
	require.NoError(t, store.Users.CreateUser(context.Background(), user))
	return user
}

func createPost(t *testing.T, store *repository.Store, owner *model.User, title string) *model.Post {
	t.Helper()
	post := &model.Post{UserID: owner.ID, Title: title, Content: "content of " + title}
	require.NoError(t, store.Posts.CreatePost(context.Background(), post))
	return post
}

func reloadPost(t *testing.T, store *repository.Store, id uint64) *model.Post {
	t.Helper()
	post, err := store.Posts.GetPost(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, post)
	return post
}

func writeComment(t *testing.T, svc CommentService, postID, userID uint64, content string, parentID *uint64) uint64 {
	t.Helper()
	id, err := svc.WriteComment(context.Background(), postID, userID, &dto.WriteCommentDTO{Content: content, ParentID: parentID})
	require.NoError(t, err)
	return id
}
