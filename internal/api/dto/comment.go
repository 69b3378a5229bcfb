package dto

import "time"

type WriteCommentDTO struct {
	Content  string  `json:"content" binding:"required" validate:"required,notblank,max=500"`
	ParentID *uint64 `json:"parentId"`
}

type UpdateCommentDTO struct {
	Content string `json:"content" binding:"required" validate:"required,notblank,max=500"`
}

type CommentIDDTO struct {
	CommentID uint64 `json:"commentId"`
}

// CommentDTO 一级评论带 replies，回复的 replies 始终为空
type CommentDTO struct {
	ID            uint64        `json:"id"`
	Content       string        `json:"content"`
	WriterID      uint64        `json:"writerId"`
	WriterName    string        `json:"writerName"`
	CreatedAt     time.Time     `json:"createdAt"`
	IsDeleted     bool          `json:"isDeleted"`
	IsOwner       bool          `json:"isOwner"`
	ReplyToUserID *uint64       `json:"replyToUserId"`
	Replies       []*CommentDTO `json:"replies"`
}
