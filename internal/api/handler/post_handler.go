package handler

import (
	"Board/internal/api/dto"
	"Board/internal/model"
	"Board/internal/pkg/response"
	"Board/internal/pkg/util"
	"Board/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

type PostHandler struct {
	postSvc     service.PostService
	commentSvc  service.CommentService
	reactionSvc service.ReactionService
	bookmarkSvc service.BookmarkService
}

func NewPostHandler(
	postSvc service.PostService,
	commentSvc service.CommentService,
	reactionSvc service.ReactionService,
	bookmarkSvc service.BookmarkService,
) *PostHandler {
	return &PostHandler{
		postSvc:     postSvc,
		commentSvc:  commentSvc,
		reactionSvc: reactionSvc,
		bookmarkSvc: bookmarkSvc,
	}
}

type postListQuery struct {
	dto.PageQuery
	CategoryID *uint64 `form:"category_id"`
}

func (s *PostHandler) ListPosts(c *gin.Context) {
	var query postListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.InvalidParam(c, "query")
		return
	}

	posts, err := s.postSvc.ListPosts(c.Request.Context(), query.CategoryID, query.Page, query.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) CreatePost(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var req dto.CreatePostDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	postID, err := s.postSvc.CreatePost(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.PostIDDTO{PostID: postID})
}

func (s *PostHandler) UpdatePost(c *gin.Context) {
	userID := c.GetUint64("user_id")
	postID, ok := pathID(c, "post_id")
	if !ok {
		return
	}

	var req dto.UpdatePostDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.postSvc.UpdatePost(c.Request.Context(), postID, userID, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.PostIDDTO{PostID: postID})
}

func (s *PostHandler) DeletePost(c *gin.Context) {
	userID := c.GetUint64("user_id")
	postID, ok := pathID(c, "post_id")
	if !ok {
		return
	}

	if err := s.postSvc.DeletePost(c.Request.Context(), postID, userID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// GetPost 先计浏览数，再并发取当前用户状态与第一页评论
func (s *PostHandler) GetPost(c *gin.Context) {
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
	page, pageSize := util.NormalizePage(pageQuery.Page, pageQuery.PageSize)

	ctx := c.Request.Context()
	detail, err := s.postSvc.GetPost(ctx, postID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := &dto.PostPageDTO{Post: detail}
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		kind, err := s.reactionSvc.ReactionOf(gCtx, postID, userID)
		if err != nil {
			return err
		}
		if kind != nil {
			reaction := string(*kind)
			result.MyReaction = &reaction
		}
		return nil
	})
	g.Go(func() error {
		bookmarked, err := s.bookmarkSvc.IsBookmarked(gCtx, postID, userID)
		result.IsBookmarked = bookmarked
		return err
	})
	g.Go(func() error {
		comments, err := s.commentSvc.ListComments(gCtx, postID, userID, page, pageSize)
		result.Comments = comments
		return err
	})
	g.Go(func() error {
		count, err := s.commentSvc.CountComments(gCtx, postID)
		result.CommentCount = count
		return err
	})
	if err = g.Wait(); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

func (s *PostHandler) LikePost(c *gin.Context) {
	s.react(c, model.ReactionLike)
}

func (s *PostHandler) DislikePost(c *gin.Context) {
	s.react(c, model.ReactionDislike)
}

func (s *PostHandler) react(c *gin.Context, kind model.ReactionKind) {
	userID := c.GetUint64("user_id")
	postID, ok := pathID(c, "post_id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	outcome, err := s.reactionSvc.ApplyReaction(ctx, postID, userID, kind)
	if err != nil {
		response.Error(c, err)
		return
	}
	counts, err := s.postSvc.GetReactionCounts(ctx, postID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ReactionResultDTO{
		Result:       string(outcome),
		LikeCount:    counts.LikeCount,
		DislikeCount: counts.DislikeCount,
	})
}
