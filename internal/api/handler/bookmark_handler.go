package handler

import (
	"Board/internal/api/dto"
	"Board/internal/pkg/response"
	"Board/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	bookmarkAddedMessage   = "북마크에 추가되었습니다."
	bookmarkRemovedMessage = "북마크가 해제되었습니다."
)

type BookmarkHandler struct {
	bookmarkSvc service.BookmarkService
}

func NewBookmarkHandler(bookmarkSvc service.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{
		bookmarkSvc: bookmarkSvc,
	}
}

func (s *BookmarkHandler) ToggleBookmark(c *gin.Context) {
	userID := c.GetUint64("user_id")
	postID, ok := pathID(c, "post_id")
	if !ok {
		return
	}

	bookmarked, err := s.bookmarkSvc.ToggleBookmark(c.Request.Context(), postID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	message := bookmarkRemovedMessage
	if bookmarked {
		message = bookmarkAddedMessage
	}
	response.Success(c, dto.BookmarkResultDTO{Bookmarked: bookmarked, Message: message})
}

func (s *BookmarkHandler) ListBookmarks(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var pageQuery dto.PageQuery
	if err := c.ShouldBindQuery(&pageQuery); err != nil {
		response.InvalidParam(c, "query")
		return
	}

	posts, err := s.bookmarkSvc.ListBookmarkedPosts(c.Request.Context(), userID, pageQuery.Page, pageQuery.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}
