package service

import (
	"Board/internal/api/dto"
	"Board/internal/model"
	"Board/internal/pkg/consts"
	"Board/internal/pkg/util"
	"Board/internal/repository"
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jinzhu/copier"
)

type CategoryService interface {
	ListCategories(ctx context.Context) ([]*dto.CategoryDTO, error)
	GetCategory(ctx context.Context, id uint64) (*model.Category, error)
	CreateCategory(ctx context.Context, dto *dto.CreateCategoryDTO) (*dto.CategoryDTO, error)
	GetOrCreateCategory(ctx context.Context, name string) (*model.Category, error)
}

type CategoryServiceImpl struct {
	categoryRepo repository.CategoryRepo
}

func NewCategoryService(categoryRepo repository.CategoryRepo) CategoryService {
	return &CategoryServiceImpl{
		categoryRepo: categoryRepo,
	}
}

func (s *CategoryServiceImpl) ListCategories(ctx context.Context) ([]*dto.CategoryDTO, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.CategoryDTO, 0, len(categories))
	if err = copier.Copy(&result, &categories); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *CategoryServiceImpl) GetCategory(ctx context.Context, id uint64) (*model.Category, error) {
	category, err := s.categoryRepo.GetCategoryById(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

func (s *CategoryServiceImpl) CreateCategory(ctx context.Context, createDTO *dto.CreateCategoryDTO) (*dto.CategoryDTO, error) {
	createDTO.Name = strings.TrimSpace(createDTO.Name)
	if err := util.ValidateDTO(createDTO); err != nil {
		return nil, invalidInput(ctx, err)
	}

	existing, err := s.categoryRepo.GetCategoryByName(ctx, createDTO.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", ErrCategoryExists, createDTO.Name)
	}

	category := &model.Category{Name: createDTO.Name}
	if err = s.categoryRepo.CreateCategory(ctx, category); err != nil {
		if repository.IsDuplicateError(err) {
			return nil, fmt.Errorf("%w: %s", ErrCategoryExists, createDTO.Name)
		}
		return nil, err
	}

	return &dto.CategoryDTO{ID: category.ID, Name: category.Name}, nil
}

// GetOrCreateCategory 名字会先去掉首尾空白
func (s *CategoryServiceImpl) GetOrCreateCategory(ctx context.Context, name string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > consts.MaxCategoryLen {
		return nil, invalidInput(ctx, fmt.Errorf("category name must be 1..%d characters", consts.MaxCategoryLen))
	}
	return s.categoryRepo.GetOrCreateCategory(ctx, name)
}
