package model

import (
	"time"
)

type Post struct {
	ID            uint64    `gorm:"primaryKey" json:"id"`
	UserID        uint64    `gorm:"not null;index:idx_posts_user_id" json:"userId"`
	Title         string    `gorm:"type:varchar(255);not null" json:"title"`
	Content       string    `gorm:"type:text;not null" json:"content"`
	CategoryID    *uint64   `gorm:"index:idx_posts_category_id" json:"categoryId"`
	ViewCount     int64     `gorm:"not null;default:0" json:"viewCount"`
	LikeCount     int64     `gorm:"not null;default:0" json:"likeCount"`
	DislikeCount  int64     `gorm:"not null;default:0" json:"dislikeCount"`
	BookmarkCount int64     `gorm:"not null;default:0" json:"bookmarkCount"`
	CreatedAt     time.Time `gorm:"index:idx_posts_created_at" json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	// 关联关系
	User     User      `gorm:"foreignKey:UserID;references:ID"`
	Category *Category `gorm:"foreignKey:CategoryID;references:ID"`
}

func (Post) TableName() string {
	return "posts"
}

// IsOwnedBy 匿名请求者（0）永远不是作者
func (p *Post) IsOwnedBy(userID uint64) bool {
	return userID != 0 && p.UserID == userID
}

// Counter 帖子上的计数列，只能通过仓储的增减操作修改
type Counter string

const (
	CounterViews     Counter = "view_count"
	CounterLikes     Counter = "like_count"
	CounterDislikes  Counter = "dislike_count"
	CounterBookmarks Counter = "bookmark_count"
)

func (c Counter) Valid() bool {
	switch c {
	case CounterViews, CounterLikes, CounterDislikes, CounterBookmarks:
		return true
	}
	return false
}
