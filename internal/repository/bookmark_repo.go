package repository

import (
	"Board/internal/model"
	"context"

	"gorm.io/gorm"
)

type BookmarkRepo interface {
	GetBookmark(ctx context.Context, postID, userID uint64) (*model.Bookmark, error)
	ExistsBookmark(ctx context.Context, postID, userID uint64) (bool, error)
	CreateBookmark(ctx context.Context, bookmark *model.Bookmark) error
	DeleteBookmark(ctx context.Context, id uint64) error
	DeleteByPostID(ctx context.Context, postID uint64) error
	GetBookmarkedPosts(ctx context.Context, userID uint64, limit, offset int) ([]*model.Post, int64, error)
}

type BookmarkRepoImpl struct {
	db *gorm.DB
}

func NewBookmarkRepo(db *gorm.DB) BookmarkRepo {
	return &BookmarkRepoImpl{db: db}
}

// GetBookmark 没有记录时返回 nil, nil
func (s *BookmarkRepoImpl) GetBookmark(ctx context.Context, postID, userID uint64) (*model.Bookmark, error) {
	bookmark := &model.Bookmark{}
	err := s.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		First(bookmark).Error
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return bookmark, nil
}

func (s *BookmarkRepoImpl) ExistsBookmark(ctx context.Context, postID, userID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Bookmark{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	return count > 0, err
}

func (s *BookmarkRepoImpl) CreateBookmark(ctx context.Context, bookmark *model.Bookmark) error {
	return s.db.WithContext(ctx).Create(bookmark).Error
}

func (s *BookmarkRepoImpl) DeleteBookmark(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Bookmark{}, id).Error
}

func (s *BookmarkRepoImpl) DeleteByPostID(ctx context.Context, postID uint64) error {
	return s.db.WithContext(ctx).Where("post_id = ?", postID).Delete(&model.Bookmark{}).Error
}

// GetBookmarkedPosts 按收藏时间倒序
func (s *BookmarkRepoImpl) GetBookmarkedPosts(ctx context.Context, userID uint64, limit, offset int) ([]*model.Post, int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&model.Bookmark{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	posts := make([]*model.Post, 0)
	if total == 0 {
		return posts, 0, nil
	}
	err = s.db.WithContext(ctx).
		Joins("JOIN bookmarks ON bookmarks.post_id = posts.id").
		Where("bookmarks.user_id = ?", userID).
		Preload("User").Preload("Category").
		Order("bookmarks.created_at DESC").Order("bookmarks.id DESC").
		Limit(limit).Offset(offset).
		Find(&posts).Error
	return posts, total, err
}
