package handler

import (
	"Board/internal/api/dto"
	"Board/internal/pkg/response"
	"Board/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentSvc service.CommentService
}

func NewCommentHandler(commentSvc service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentSvc: commentSvc,
	}
}

func (s *CommentHandler) ListComments(c *gin.Context) {
	userID := c.GetUint64("user_id")
	postID, ok := pathID(c, "post_id")
	if !ok {
		return
	}

	var pageQuery dto.PageQuery
	if err := c.ShouldBindQuery(&pageQuery); err != nil {
		response.InvalidParam(c, "query")
		return
	}

	comments, err := s.commentSvc.ListComments(c.Request.Context(), postID, userID, pageQuery.Page, pageQuery.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comments)
}

func (s *CommentHandler) WriteComment(c *gin.Context) {
	userID := c.GetUint64("user_id")
	postID, ok := pathID(c, "post_id")
	if !ok {
		return
	}

	var req dto.WriteCommentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	commentID, err := s.commentSvc.WriteComment(c.Request.Context(), postID, userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.CommentIDDTO{CommentID: commentID})
}

func (s *CommentHandler) UpdateComment(c *gin.Context) {
	userID := c.GetUint64("user_id")
	postID, ok := pathID(c, "post_id")
	if !ok {
		return
	}
	commentID, ok := pathID(c, "comment_id")
	if !ok {
		return
	}

	var req dto.UpdateCommentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.commentSvc.UpdateComment(c.Request.Context(), postID, commentID, userID, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.CommentIDDTO{CommentID: commentID})
}

func (s *CommentHandler) DeleteComment(c *gin.Context) {
	userID := c.GetUint64("user_id")
	postID, ok := pathID(c, "post_id")
	if !ok {
		return
	}
	commentID, ok := pathID(c, "comment_id")
	if !ok {
		return
	}

	if err := s.commentSvc.DeleteComment(c.Request.Context(), postID, commentID, userID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
