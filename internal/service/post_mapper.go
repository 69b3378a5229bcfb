package service

import (
	"Board/internal/api/dto"
	"Board/internal/model"

	"github.com/jinzhu/copier"
)

func toPostSummary(post *model.Post) (*dto.PostSummaryDTO, error) {
	summary := &dto.PostSummaryDTO{}
	if err := copier.Copy(summary, post); err != nil {
		return nil, err
	}
	summary.WriterID = post.UserID
	summary.WriterName = post.User.Username
	if post.Category != nil {
		summary.CategoryName = post.Category.Name
	}
	return summary, nil
}

func toPostSummaries(posts []*model.Post) ([]*dto.PostSummaryDTO, error) {
	result := make([]*dto.PostSummaryDTO, 0, len(posts))
	for _, post := range posts {
		summary, err := toPostSummary(post)
		if err != nil {
			return nil, err
		}
		result = append(result, summary)
	}
	return result, nil
}

func toPostDetail(post *model.Post, requesterID uint64) (*dto.PostDetailDTO, error) {
	detail := &dto.PostDetailDTO{}
	if err := copier.Copy(detail, post); err != nil {
		return nil, err
	}
	detail.WriterID = post.UserID
	detail.WriterName = post.User.Username
	if post.Category != nil {
		detail.CategoryName = post.Category.Name
	}
	detail.IsOwner = post.IsOwnedBy(requesterID)
	return detail, nil
}
