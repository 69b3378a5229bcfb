package service

import (
	"Board/internal/api/dto"
	"Board/internal/model"
	"Board/internal/pkg/util"
	"Board/internal/repository"
	"context"
)

type CommentService interface {
	WriteComment(ctx context.Context, postID, userID uint64, dto *dto.WriteCommentDTO) (uint64, error)
	UpdateComment(ctx context.Context, postID, commentID, userID uint64, dto *dto.UpdateCommentDTO) error
	DeleteComment(ctx context.Context, postID, commentID, userID uint64) error
	ListComments(ctx context.Context, postID, requesterID uint64, page, pageSize int) (*dto.PageResult[*dto.CommentDTO], error)
	CountComments(ctx context.Context, postID uint64) (int64, error)
}

type CommentServiceImpl struct {
	store *repository.Store
}

func NewCommentService(store *repository.Store) CommentService {
	return &CommentServiceImpl{
		store: store,
	}
}

// WriteComment 回复一条回复时挂到其一级评论下，ReplyToUserID 记录被回复的人
func (s *CommentServiceImpl) WriteComment(ctx context.Context, postID, userID uint64, writeDTO *dto.WriteCommentDTO) (uint64, error) {
	if err := util.ValidateDTO(writeDTO); err != nil {
		return 0, invalidInput(ctx, err)
	}

	if err := s.requirePost(ctx, postID); err != nil {
		return 0, err
	}
	user, err := s.store.Users.GetUserById(ctx, userID)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, ErrUserNotFound
	}

	comment := &model.Comment{
		PostID:  postID,
		UserID:  userID,
		Content: writeDTO.Content,
	}

	if writeDTO.ParentID != nil {
		parent, err := s.store.Comments.GetCommentByID(ctx, *writeDTO.ParentID)
		if err != nil {
			return 0, err
		}
		if parent == nil || parent.PostID != postID {
			return 0, ErrParentCommentNotFound
		}
		rootID := parent.RootID()
		replyTo := parent.UserID
		comment.ParentID = &rootID
		comment.ReplyToUserID = &replyTo
	}

	if err = s.store.Comments.CreateComment(ctx, comment); err != nil {
		return 0, err
	}
	return comment.ID, nil
}

func (s *CommentServiceImpl) UpdateComment(ctx context.Context, postID, commentID, userID uint64, updateDTO *dto.UpdateCommentDTO) error {
	comment, err := s.findComment(ctx, postID, commentID)
	if err != nil {
		return err
	}
	if err = RequireOwner(comment.UserID, userID); err != nil {
		return err
	}
	if _, deleted := comment.Body().(model.DeletedBody); deleted {
		return ErrDeletedCommentEdit
	}
	if err = util.ValidateDTO(updateDTO); err != nil {
		return invalidInput(ctx, err)
	}

	return s.store.Comments.UpdateCommentContent(ctx, commentID, updateDTO.Content)
}

// DeleteComment 软删除，已删除的评论再次删除直接成功
func (s *CommentServiceImpl) DeleteComment(ctx context.Context, postID, commentID, userID uint64) error {
	comment, err := s.findComment(ctx, postID, commentID)
	if err != nil {
		return err
	}
	if err = RequireOwner(comment.UserID, userID); err != nil {
		return err
	}
	if comment.IsDeleted {
		return nil
	}
	return s.store.Comments.SoftDeleteComment(ctx, commentID)
}

func (s *CommentServiceImpl) ListComments(ctx context.Context, postID, requesterID uint64, page, pageSize int) (*dto.PageResult[*dto.CommentDTO], error) {
	if err := s.requirePost(ctx, postID); err != nil {
		return nil, err
	}
	page, pageSize = util.NormalizePage(page, pageSize)

	roots, total, err := s.store.Comments.GetRootComments(ctx, postID, pageSize, util.Offset(page, pageSize))
	if err != nil {
		return nil, err
	}

	rootIDs := make([]uint64, 0, len(roots))
	for _, root := range roots {
		rootIDs = append(rootIDs, root.ID)
	}
	replies, err := s.store.Comments.GetRepliesByRootIDs(ctx, rootIDs)
	if err != nil {
		return nil, err
	}

	repliesByRoot := make(map[uint64][]*dto.CommentDTO, len(roots))
	for _, reply := range replies {
		repliesByRoot[reply.RootID()] = append(repliesByRoot[reply.RootID()], toCommentDTO(reply, requesterID))
	}

	nodes := make([]*dto.CommentDTO, 0, len(roots))
	for _, root := range roots {
		node := toCommentDTO(root, requesterID)
		if children, ok := repliesByRoot[root.ID]; ok {
			node.Replies = children
		}
		nodes = append(nodes, node)
	}

	return dto.NewPageResult(nodes, total, page, pageSize), nil
}

func (s *CommentServiceImpl) CountComments(ctx context.Context, postID uint64) (int64, error) {
	return s.store.Comments.CountByPostID(ctx, postID)
}

func (s *CommentServiceImpl) requirePost(ctx context.Context, postID uint64) error {
	exists, err := s.store.Posts.ExistsPost(ctx, postID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrPostNotFound
	}
	return nil
}

// findComment 评论必须属于路径中的帖子
func (s *CommentServiceImpl) findComment(ctx context.Context, postID, commentID uint64) (*model.Comment, error) {
	comment, err := s.store.Comments.GetCommentByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil || comment.PostID != postID {
		return nil, ErrCommentNotFound
	}
	return comment, nil
}

func toCommentDTO(comment *model.Comment, requesterID uint64) *dto.CommentDTO {
	return &dto.CommentDTO{
		ID:            comment.ID,
		Content:       comment.Body().Text(),
		WriterID:      comment.UserID,
		WriterName:    comment.User.Username,
		CreatedAt:     comment.CreatedAt,
		IsDeleted:     comment.IsDeleted,
		IsOwner:       requesterID != 0 && comment.UserID == requesterID,
		ReplyToUserID: comment.ReplyToUserID,
		Replies:       make([]*dto.CommentDTO, 0),
	}
}
