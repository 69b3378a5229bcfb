package service

import (
	"Board/internal/api/dto"
	"Board/internal/model"
	"Board/internal/pkg/util"
	"Board/internal/repository"
	"context"
)

type BookmarkService interface {
	ToggleBookmark(ctx context.Context, postID, userID uint64) (bool, error)
	IsBookmarked(ctx context.Context, postID, userID uint64) (bool, error)
	ListBookmarkedPosts(ctx context.Context, userID uint64, page, pageSize int) (*dto.PageResult[*dto.PostSummaryDTO], error)
}

type BookmarkServiceImpl struct {
	store *repository.Store
}

func NewBookmarkService(store *repository.Store) BookmarkService {
	return &BookmarkServiceImpl{
		store: store,
	}
}

// ToggleBookmark 返回切换后的状态，true 表示已收藏
func (s *BookmarkServiceImpl) ToggleBookmark(ctx context.Context, postID, userID uint64) (bool, error) {
	var bookmarked bool
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		user, err := tx.Users.GetUserById(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}
		exists, err := tx.Posts.ExistsPost(ctx, postID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrPostNotFound
		}

		current, err := tx.Bookmarks.GetBookmark(ctx, postID, userID)
		if err != nil {
			return err
		}

		if current != nil {
			if err = tx.Bookmarks.DeleteBookmark(ctx, current.ID); err != nil {
				return err
			}
			bookmarked = false
			return tx.Posts.DecrementCounter(ctx, postID, model.CounterBookmarks)
		}

		if err = tx.Bookmarks.CreateBookmark(ctx, &model.Bookmark{PostID: postID, UserID: userID}); err != nil {
			if repository.IsDuplicateError(err) {
				return ErrConcurrentRequest
			}
			return err
		}
		bookmarked = true
		return tx.Posts.IncrementCounter(ctx, postID, model.CounterBookmarks)
	})
	if err != nil {
		return false, err
	}
	return bookmarked, nil
}

// IsBookmarked 匿名用户不访问存储
func (s *BookmarkServiceImpl) IsBookmarked(ctx context.Context, postID, userID uint64) (bool, error) {
	if userID == 0 {
		return false, nil
	}
	return s.store.Bookmarks.ExistsBookmark(ctx, postID, userID)
}

func (s *BookmarkServiceImpl) ListBookmarkedPosts(ctx context.Context, userID uint64, page, pageSize int) (*dto.PageResult[*dto.PostSummaryDTO], error) {
	page, pageSize = util.NormalizePage(page, pageSize)

	posts, total, err := s.store.Bookmarks.GetBookmarkedPosts(ctx, userID, pageSize, util.Offset(page, pageSize))
	if err != nil {
		return nil, err
	}
	summaries, err := toPostSummaries(posts)
	if err != nil {
		return nil, err
	}
	return dto.NewPageResult(summaries, total, page, pageSize), nil
}
