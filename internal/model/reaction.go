package model

import (
	"time"
)

type ReactionKind string

const (
	ReactionLike    ReactionKind = "LIKE"
	ReactionDislike ReactionKind = "DISLIKE"
)

func (k ReactionKind) Valid() bool {
	return k == ReactionLike || k == ReactionDislike
}

// Counter 该类型对应的帖子计数列
func (k ReactionKind) Counter() Counter {
	if k == ReactionDislike {
		return CounterDislikes
	}
	return CounterLikes
}

type Reaction struct {
	ID        uint64       `gorm:"primaryKey" json:"id"`
	PostID    uint64       `gorm:"not null;uniqueIndex:uk_post_reactions_post_user,priority:1" json:"postId"`
	UserID    uint64       `gorm:"not null;uniqueIndex:uk_post_reactions_post_user,priority:2" json:"userId"`
	Kind      ReactionKind `gorm:"type:varchar(10);not null" json:"kind"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

func (Reaction) TableName() string {
	return "post_reactions"
}

// ReactionOutcome ApplyReaction 的结果
type ReactionOutcome string

const (
	ReactionCreated   ReactionOutcome = "created"
	ReactionChanged   ReactionOutcome = "changed"
	ReactionCancelled ReactionOutcome = "cancelled"
)
