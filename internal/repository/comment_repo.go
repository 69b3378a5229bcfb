package repository

import (
	"Board/internal/model"
	"context"

	"gorm.io/gorm"
)

type CommentRepo interface {
	CreateComment(ctx context.Context, comment *model.Comment) error
	GetCommentByID(ctx context.Context, id uint64) (*model.Comment, error)
	UpdateCommentContent(ctx context.Context, id uint64, content string) error
	SoftDeleteComment(ctx context.Context, id uint64) error
	GetRootComments(ctx context.Context, postID uint64, limit, offset int) ([]*model.Comment, int64, error)
	GetRepliesByRootIDs(ctx context.Context, rootIDs []uint64) ([]*model.Comment, error)
	CountByPostID(ctx context.Context, postID uint64) (int64, error)
	DeleteByPostID(ctx context.Context, postID uint64) error
}

type CommentRepoImpl struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) CommentRepo {
	return &CommentRepoImpl{db: db}
}

func (s *CommentRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) error {
	return s.db.WithContext(ctx).Omit("User").Create(comment).Error
}

// GetCommentByID 不存在时返回 nil, nil
func (s *CommentRepoImpl) GetCommentByID(ctx context.Context, id uint64) (*model.Comment, error) {
	comment := &model.Comment{}
	if err := s.db.WithContext(ctx).First(comment, id).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return comment, nil
}

// UpdateCommentContent 已删除的评论不会被改写
func (s *CommentRepoImpl) UpdateCommentContent(ctx context.Context, id uint64, content string) error {
	return s.db.WithContext(ctx).Model(&model.Comment{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("content", content).Error
}

func (s *CommentRepoImpl) SoftDeleteComment(ctx context.Context, id uint64) error {
	deleted := model.Comment{}
	deleted.SoftDelete()
	return s.db.WithContext(ctx).Model(&model.Comment{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_deleted": deleted.IsDeleted,
			"content":    deleted.Content,
		}).Error
}

// GetRootComments 一级评论按时间正序分页，total 只统计一级评论
func (s *CommentRepoImpl) GetRootComments(ctx context.Context, postID uint64, limit, offset int) ([]*model.Comment, int64, error) {
	roots := func(db *gorm.DB) *gorm.DB {
		return db.Where("post_id = ? AND parent_id IS NULL", postID)
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&model.Comment{}).Scopes(roots).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	comments := make([]*model.Comment, 0)
	if total == 0 {
		return comments, 0, nil
	}
	err := s.db.WithContext(ctx).Scopes(roots).
		Preload("User").
		Order("created_at ASC").Order("id ASC").
		Limit(limit).Offset(offset).
		Find(&comments).Error
	return comments, total, err
}

func (s *CommentRepoImpl) GetRepliesByRootIDs(ctx context.Context, rootIDs []uint64) ([]*model.Comment, error) {
	replies := make([]*model.Comment, 0)
	if len(rootIDs) == 0 {
		return replies, nil
	}
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("parent_id IN ?", rootIDs).
		Order("created_at ASC").Order("id ASC").
		Find(&replies).Error
	return replies, err
}

// CountByPostID 包含回复与已删除评论
func (s *CommentRepoImpl) CountByPostID(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Comment{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

func (s *CommentRepoImpl) DeleteByPostID(ctx context.Context, postID uint64) error {
	return s.db.WithContext(ctx).Where("post_id = ?", postID).Delete(&model.Comment{}).Error
}
