package service

import (
	"Board/internal/api/dto"
	"Board/internal/model"
	"Board/internal/pkg/util"
	"Board/internal/repository"
	"context"
	"strings"
)

type PostService interface {
	CreatePost(ctx context.Context, userID uint64, dto *dto.CreatePostDTO) (uint64, error)
	UpdatePost(ctx context.Context, postID, userID uint64, dto *dto.UpdatePostDTO) error
	DeletePost(ctx context.Context, postID, userID uint64) error
	ListPosts(ctx context.Context, categoryID *uint64, page, pageSize int) (*dto.PageResult[*dto.PostSummaryDTO], error)
	GetPost(ctx context.Context, postID, requesterID uint64) (*dto.PostDetailDTO, error)
	GetReactionCounts(ctx context.Context, postID uint64) (*dto.ReactionCountsDTO, error)
}

type PostServiceImpl struct {
	store           *repository.Store
	categoryService CategoryService
}

func NewPostService(store *repository.Store, categoryService CategoryService) PostService {
	return &PostServiceImpl{
		store:           store,
		categoryService: categoryService,
	}
}

func (s *PostServiceImpl) CreatePost(ctx context.Context, userID uint64, createDTO *dto.CreatePostDTO) (uint64, error) {
	if err := util.ValidateDTO(createDTO); err != nil {
		return 0, invalidInput(ctx, err)
	}

	user, err := s.store.Users.GetUserById(ctx, userID)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, ErrUserNotFound
	}

	categoryID, err := s.resolveCategory(ctx, createDTO.CategoryID, createDTO.NewCategoryName)
	if err != nil {
		return 0, err
	}

	post := &model.Post{
		UserID:     user.ID,
		Title:      createDTO.Title,
		Content:    createDTO.Content,
		CategoryID: categoryID,
	}
	if err = s.store.Posts.CreatePost(ctx, post); err != nil {
		return 0, err
	}
	return post.ID, nil
}

// resolveCategory categoryID 优先，其次按新名字查找或创建，都没有则不归类
func (s *PostServiceImpl) resolveCategory(ctx context.Context, categoryID *uint64, newName *string) (*uint64, error) {
	if categoryID != nil {
		category, err := s.categoryService.GetCategory(ctx, *categoryID)
		if err != nil {
			return nil, err
		}
		return &category.ID, nil
	}
	if newName != nil && strings.TrimSpace(*newName) != "" {
		category, err := s.categoryService.GetOrCreateCategory(ctx, *newName)
		if err != nil {
			return nil, err
		}
		return &category.ID, nil
	}
	return nil, nil
}

func (s *PostServiceImpl) UpdatePost(ctx context.Context, postID, userID uint64, updateDTO *dto.UpdatePostDTO) error {
	post, err := s.store.Posts.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if err = RequireOwner(post.UserID, userID); err != nil {
		return err
	}
	if err = util.ValidateDTO(updateDTO); err != nil {
		return invalidInput(ctx, err)
	}

	categoryID, err := s.resolveCategory(ctx, updateDTO.CategoryID, nil)
	if err != nil {
		return err
	}

	return s.store.Posts.UpdatePostContent(ctx, postID, updateDTO.Title, updateDTO.Content, categoryID)
}

// DeletePost 评论、反应、收藏与帖子在同一事务中删除
func (s *PostServiceImpl) DeletePost(ctx context.Context, postID, userID uint64) error {
	post, err := s.store.Posts.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if err = RequireOwner(post.UserID, userID); err != nil {
		return err
	}

	return s.store.Transaction(ctx, func(tx *repository.Store) error {
		if err := tx.Comments.DeleteByPostID(ctx, postID); err != nil {
			return err
		}
		if err := tx.Reactions.DeleteByPostID(ctx, postID); err != nil {
			return err
		}
		if err := tx.Bookmarks.DeleteByPostID(ctx, postID); err != nil {
			return err
		}
		return tx.Posts.DeletePost(ctx, postID)
	})
}

func (s *PostServiceImpl) ListPosts(ctx context.Context, categoryID *uint64, page, pageSize int) (*dto.PageResult[*dto.PostSummaryDTO], error) {
	page, pageSize = util.NormalizePage(page, pageSize)

	posts, total, err := s.store.Posts.ListPosts(ctx, categoryID, pageSize, util.Offset(page, pageSize))
	if err != nil {
		return nil, err
	}
	summaries, err := toPostSummaries(posts)
	if err != nil {
		return nil, err
	}
	return dto.NewPageResult(summaries, total, page, pageSize), nil
}

// GetPost 非作者（含匿名）每次读取浏览数加一，作者本人不计
func (s *PostServiceImpl) GetPost(ctx context.Context, postID, requesterID uint64) (*dto.PostDetailDTO, error) {
	post, err := s.store.Posts.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	if !post.IsOwnedBy(requesterID) {
		if err = s.store.Posts.IncrementCounter(ctx, postID, model.CounterViews); err != nil {
			return nil, err
		}
		post.ViewCount++
	}

	return toPostDetail(post, requesterID)
}

func (s *PostServiceImpl) GetReactionCounts(ctx context.Context, postID uint64) (*dto.ReactionCountsDTO, error) {
	exists, err := s.store.Posts.ExistsPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrPostNotFound
	}

	likes, dislikes, err := s.store.Posts.GetReactionCounts(ctx, postID)
	if err != nil {
		return nil, err
	}
	return &dto.ReactionCountsDTO{LikeCount: likes, DislikeCount: dislikes}, nil
}
