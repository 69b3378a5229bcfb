package service

import (
	"Board/internal/model"
	"Board/internal/repository"
	"context"
)

type ReactionService interface {
	ApplyReaction(ctx context.Context, postID, userID uint64, kind model.ReactionKind) (model.ReactionOutcome, error)
	ReactionOf(ctx context.Context, postID, userID uint64) (*model.ReactionKind, error)
}

type ReactionServiceImpl struct {
	store *repository.Store
}

func NewReactionService(store *repository.Store) ReactionService {
	return &ReactionServiceImpl{
		store: store,
	}
}

// ApplyReaction 记录与计数在同一事务中变更：
// 无记录则新增，同类型则取消，异类型则切换
func (s *ReactionServiceImpl) ApplyReaction(ctx context.Context, postID, userID uint64, kind model.ReactionKind) (model.ReactionOutcome, error) {
	if !kind.Valid() {
		return "", ErrInvalidInput
	}

	var outcome model.ReactionOutcome
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		exists, err := tx.Posts.ExistsPost(ctx, postID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrPostNotFound
		}
		user, err := tx.Users.GetUserById(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}

		current, err := tx.Reactions.GetReaction(ctx, postID, userID)
		if err != nil {
			return err
		}

		switch {
		case current == nil:
			if err = tx.Reactions.CreateReaction(ctx, &model.Reaction{PostID: postID, UserID: userID, Kind: kind}); err != nil {
				if repository.IsDuplicateError(err) {
					return ErrConcurrentRequest
				}
				return err
			}
			if err = tx.Posts.IncrementCounter(ctx, postID, kind.Counter()); err != nil {
				return err
			}
			outcome = model.ReactionCreated

		case current.Kind == kind:
			if err = tx.Reactions.DeleteReaction(ctx, current.ID); err != nil {
				return err
			}
			if err = tx.Posts.DecrementCounter(ctx, postID, kind.Counter()); err != nil {
				return err
			}
			outcome = model.ReactionCancelled

		default:
			if err = tx.Posts.IncrementCounter(ctx, postID, kind.Counter()); err != nil {
				return err
			}
			if err = tx.Posts.DecrementCounter(ctx, postID, current.Kind.Counter()); err != nil {
				return err
			}
			if err = tx.Reactions.UpdateReactionKind(ctx, current.ID, kind); err != nil {
				return err
			}
			outcome = model.ReactionChanged
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return outcome, nil
}

// ReactionOf 匿名用户不访问存储，直接返回 nil
func (s *ReactionServiceImpl) ReactionOf(ctx context.Context, postID, userID uint64) (*model.ReactionKind, error) {
	if userID == 0 {
		return nil, nil
	}
	reaction, err := s.store.Reactions.GetReaction(ctx, postID, userID)
	if err != nil || reaction == nil {
		return nil, err
	}
	return &reaction.Kind, nil
}
