package api

import "Board/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler     *handler.UserHandler
	CategoryHandler *handler.CategoryHandler
	PostHandler     *handler.PostHandler
	CommentHandler  *handler.CommentHandler
	BookmarkHandler *handler.BookmarkHandler
}
