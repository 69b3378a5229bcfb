package model

import (
	"time"
)

type Bookmark struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	PostID    uint64    `gorm:"not null;uniqueIndex:uk_bookmarks_post_user,priority:1" json:"postId"`
	UserID    uint64    `gorm:"not null;uniqueIndex:uk_bookmarks_post_user,priority:2;index:idx_bookmarks_user_id" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Bookmark) TableName() string {
	return "bookmarks"
}

