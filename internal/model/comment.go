package model

import (
	"Board/internal/pkg/consts"
	"time"
)

type Comment struct {
	ID            uint64    `gorm:"primaryKey" json:"id"`
	PostID        uint64    `gorm:"not null;index:idx_comments_post_parent,priority:1" json:"postId"`
	UserID        uint64    `gorm:"not null" json:"userId"`
	ParentID      *uint64   `gorm:"index:idx_comments_post_parent,priority:2" json:"parentId"` // nil 表示一级评论
	ReplyToUserID *uint64   `json:"replyToUserId"`
	Content       string    `gorm:"type:varchar(500);not null" json:"content"`
	IsDeleted     bool      `gorm:"type:tinyint(1);not null;default:0" json:"isDeleted"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

func (Comment) TableName() string {
	return "comments"
}

// CommentBody 评论正文的两种状态：ActiveBody 或 DeletedBody
type CommentBody interface {
	Text() string
	isCommentBody()
}

type ActiveBody struct {
	Content string
}

func (b ActiveBody) Text() string { return b.Content }
func (ActiveBody) isCommentBody() {}

// DeletedBody 软删除后不再保留原文
type DeletedBody struct{}

func (DeletedBody) Text() string { return consts.DeletedCommentPlaceholder }
func (DeletedBody) isCommentBody() {}

func (c *Comment) Body() CommentBody {
	if c.IsDeleted {
		return DeletedBody{}
	}
	return ActiveBody{Content: c.Content}
}

func (c *Comment) IsTopLevel() bool {
	return c.ParentID == nil
}

// RootID 回复返回所属一级评论的 ID，一级评论返回自身
func (c *Comment) RootID() uint64 {
	if c.IsTopLevel() {
		return c.ID
	}
	return *c.ParentID
}

// SoftDelete 不可逆，重复调用无副作用
func (c *Comment) SoftDelete() {
	c.IsDeleted = true
	c.Content = consts.DeletedCommentPlaceholder
}
