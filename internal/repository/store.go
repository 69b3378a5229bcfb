package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store 聚合全部仓储，Transaction 内的仓储共享同一个事务
type Store struct {
	db       *gorm.DB
	decorate func(*Store)

	Users      UserRepo
	Categories CategoryRepo
	Posts      PostRepo
	Comments   CommentRepo
	Reactions  ReactionRepo
	Bookmarks  BookmarkRepo
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:         db,
		Users:      NewUserRepo(db),
		Categories: NewCategoryRepo(db),
		Posts:      NewPostRepo(db),
		Comments:   NewCommentRepo(db),
		Reactions:  NewReactionRepo(db),
		Bookmarks:  NewBookmarkRepo(db),
	}
}

// Decorate 返回替换了部分仓储的副本，fn 对其事务内的 Store 同样生效
func (s *Store) Decorate(fn func(*Store)) *Store {
	decorated := NewStore(s.db)
	decorated.decorate = fn
	fn(decorated)
	return decorated
}

// Transaction fn 返回错误时整体回滚，fn 内只能使用 tx
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(db *gorm.DB) error {
		tx := NewStore(db)
		if s.decorate != nil {
			tx.decorate = s.decorate
			s.decorate(tx)
		}
		return fn(tx)
	})
}
