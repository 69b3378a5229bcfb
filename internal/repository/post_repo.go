package repository

import (
	"Board/internal/model"
	"context"
	"fmt"

	"gorm.io/gorm"
)

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post) error
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	ExistsPost(ctx context.Context, id uint64) (bool, error)
	UpdatePostContent(ctx context.Context, id uint64, title, content string, categoryID *uint64) error
	DeletePost(ctx context.Context, id uint64) error
	ListPosts(ctx context.Context, categoryID *uint64, limit, offset int) ([]*model.Post, int64, error)
	GetReactionCounts(ctx context.Context, id uint64) (likes int64, dislikes int64, err error)

	IncrementCounter(ctx context.Context, id uint64, counter model.Counter) error
	DecrementCounter(ctx context.Context, id uint64, counter model.Counter) error
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) PostRepo {
	return &PostRepoImpl{db: db}
}

func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Omit("User", "Category").Create(post).Error
}

// GetPost 带作者与分类，不存在时返回 nil, nil
func (s *PostRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	post := &model.Post{}
	err := s.db.WithContext(ctx).Preload("User").Preload("Category").First(post, id).Error
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return post, nil
}

func (s *PostRepoImpl) ExistsPost(ctx context.Context, id uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (s *PostRepoImpl) UpdatePostContent(ctx context.Context, id uint64, title, content string, categoryID *uint64) error {
	return s.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).
		Select("title", "content", "category_id", "updated_at").
		Updates(map[string]any{
			"title":       title,
			"content":     content,
			"category_id": categoryID,
		}).Error
}

func (s *PostRepoImpl) DeletePost(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Post{}, id).Error
}

// ListPosts 最新在前，categoryID 为 nil 时不过滤
func (s *PostRepoImpl) ListPosts(ctx context.Context, categoryID *uint64, limit, offset int) ([]*model.Post, int64, error) {
	byCategory := func(db *gorm.DB) *gorm.DB {
		if categoryID != nil {
			return db.Where("category_id = ?", *categoryID)
		}
		return db
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&model.Post{}).Scopes(byCategory).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	posts := make([]*model.Post, 0)
	if total == 0 {
		return posts, 0, nil
	}
	err := s.db.WithContext(ctx).Scopes(byCategory).
		Preload("User").Preload("Category").
		Order("created_at DESC").Order("id DESC").
		Limit(limit).Offset(offset).
		Find(&posts).Error
	return posts, total, err
}

func (s *PostRepoImpl) GetReactionCounts(ctx context.Context, id uint64) (int64, int64, error) {
	var row struct {
		LikeCount    int64
		DislikeCount int64
	}
	err := s.db.WithContext(ctx).Model(&model.Post{}).
		Select("like_count", "dislike_count").
		Where("id = ?", id).
		Take(&row).Error
	return row.LikeCount, row.DislikeCount, err
}

// IncrementCounter 单条 UPDATE，不覆盖其他计数
func (s *PostRepoImpl) IncrementCounter(ctx context.Context, id uint64, counter model.Counter) error {
	if !counter.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownCounter, counter)
	}
	col := string(counter)
	return s.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).
		UpdateColumn(col, gorm.Expr(col+" + 1")).Error
}

// DecrementCounter 计数已为 0 时保持 0
func (s *PostRepoImpl) DecrementCounter(ctx context.Context, id uint64, counter model.Counter) error {
	if !counter.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownCounter, counter)
	}
	col := string(counter)
	return s.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).
		UpdateColumn(col, gorm.Expr("CASE WHEN "+col+" > 0 THEN "+col+" - 1 ELSE 0 END")).Error
}
