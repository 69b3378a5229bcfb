package repository

import (
	"Board/internal/model"
	"context"

	"gorm.io/gorm"
)

type ReactionRepo interface {
	GetReaction(ctx context.Context, postID, userID uint64) (*model.Reaction, error)
	CreateReaction(ctx context.Context, reaction *model.Reaction) error
	UpdateReactionKind(ctx context.Context, id uint64, kind model.ReactionKind) error
	DeleteReaction(ctx context.Context, id uint64) error
	DeleteByPostID(ctx context.Context, postID uint64) error
}

type ReactionRepoImpl struct {
	db *gorm.DB
}

func NewReactionRepo(db *gorm.DB) ReactionRepo {
	return &ReactionRepoImpl{db: db}
}

// GetReaction 没有记录时返回 nil, nil
func (s *ReactionRepoImpl) GetReaction(ctx context.Context, postID, userID uint64) (*model.Reaction, error) {
	reaction := &model.Reaction{}
	err := s.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		First(reaction).Error
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return reaction, nil
}

func (s *ReactionRepoImpl) CreateReaction(ctx context.Context, reaction *model.Reaction) error {
	return s.db.WithContext(ctx).Create(reaction).Error
}

func (s *ReactionRepoImpl) UpdateReactionKind(ctx context.Context, id uint64, kind model.ReactionKind) error {
	return s.db.WithContext(ctx).Model(&model.Reaction{}).Where("id = ?", id).Update("kind", kind).Error
}

func (s *ReactionRepoImpl) DeleteReaction(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Reaction{}, id).Error
}

func (s *ReactionRepoImpl) DeleteByPostID(ctx context.Context, postID uint64) error {
	return s.db.WithContext(ctx).Where("post_id = ?", postID).Delete(&model.Reaction{}).Error
}
