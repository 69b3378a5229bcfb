package dto

import "time"

type CreatePostDTO struct {
	Title           string  `json:"title" binding:"required" validate:"required,notblank,max=255"`
	Content         string  `json:"content" binding:"required" validate:"required,notblank,max=10000"`
	CategoryID      *uint64 `json:"categoryId"`
	NewCategoryName *string `json:"newCategoryName" validate:"omitempty,max=50"`
}

type UpdatePostDTO struct {
	Title      string  `json:"title" binding:"required" validate:"required,notblank,max=255"`
	Content    string  `json:"content" binding:"required" validate:"required,notblank,max=10000"`
	CategoryID *uint64 `json:"categoryId"`
}

type PostIDDTO struct {
	PostID uint64 `json:"postId"`
}

// PostSummaryDTO 列表项
type PostSummaryDTO struct {
	ID            uint64    `json:"id"`
	Title         string    `json:"title"`
	WriterID      uint64    `json:"writerId"`
	WriterName    string    `json:"writerName"`
	CategoryID    *uint64   `json:"categoryId"`
	CategoryName  string    `json:"categoryName"`
	ViewCount     int64     `json:"viewCount"`
	LikeCount     int64     `json:"likeCount"`
	DislikeCount  int64     `json:"dislikeCount"`
	BookmarkCount int64     `json:"bookmarkCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

type PostDetailDTO struct {
	ID            uint64    `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	WriterID      uint64    `json:"writerId"`
	WriterName    string    `json:"writerName"`
	CategoryID    *uint64   `json:"categoryId"`
	CategoryName  string    `json:"categoryName"`
	ViewCount     int64     `json:"viewCount"`
	LikeCount     int64     `json:"likeCount"`
	DislikeCount  int64     `json:"dislikeCount"`
	BookmarkCount int64     `json:"bookmarkCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	IsOwner       bool      `json:"isOwner"`
}

// PostPageDTO 详情页：帖子、当前用户状态与第一页评论
type PostPageDTO struct {
	Post         *PostDetailDTO           `json:"post"`
	MyReaction   *string                  `json:"myReaction"`
	IsBookmarked bool                     `json:"isBookmarked"`
	Comments     *PageResult[*CommentDTO] `json:"comments"`
	CommentCount int64                    `json:"commentCount"`
}

type ReactionCountsDTO struct {
	LikeCount    int64 `json:"likeCount"`
	DislikeCount int64 `json:"dislikeCount"`
}

type ReactionResultDTO struct {
	Result       string `json:"result"`
	LikeCount    int64  `json:"likeCount"`
	DislikeCount int64  `json:"dislikeCount"`
}

type BookmarkResultDTO struct {
	Bookmarked bool   `json:"bookmarked"`
	Message    string `json:"message"`
}
