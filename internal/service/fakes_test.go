package service

import (
	"Board/internal/model"
	"Board/internal/repository"
	"context"
	"testing"
)

// failingReactionRepo 任何调用都会让测试失败
type failingReactionRepo struct {
	repository.ReactionRepo
	t *testing.T
}

func (r failingReactionRepo) GetReaction(context.Context, uint64, uint64) (*model.Reaction, error) {
	r.t.Fatal("reaction storage must not be touched")
	return nil, nil
}

type failingBookmarkRepo struct {
	repository.BookmarkRepo
	t *testing.T
}

func (r failingBookmarkRepo) ExistsBookmark(context.Context, uint64, uint64) (bool, error) {
	r.t.Fatal("bookmark storage must not be touched")
	return false, nil
}

func (r failingBookmarkRepo) GetBookmark(context.Context, uint64, uint64) (*model.Bookmark, error) {
	r.t.Fatal("bookmark storage must not be touched")
	return nil, nil
}

// staleReactionRepo 读不到已存在的记录，模拟并发请求先一步写入
type staleReactionRepo struct {
	repository.ReactionRepo
}

func (staleReactionRepo) GetReaction(context.Context, uint64, uint64) (*model.Reaction, error) {
	return nil, nil
}

type staleBookmarkRepo struct {
	repository.BookmarkRepo
}

func (staleBookmarkRepo) GetBookmark(context.Context, uint64, uint64) (*model.Bookmark, error) {
	return nil, nil
}
