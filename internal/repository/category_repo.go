package repository

import (
	"Board/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CategoryRepo interface {
	ListCategories(ctx context.Context) ([]*model.Category, error)
	GetCategoryById(ctx context.Context, id uint64) (*model.Category, error)
	GetCategoryByName(ctx context.Context, name string) (*model.Category, error)
	CreateCategory(ctx context.Context, category *model.Category) error
	GetOrCreateCategory(ctx context.Context, name string) (*model.Category, error)
}

type CategoryRepoImpl struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) CategoryRepo {
	return &CategoryRepoImpl{db: db}
}

func (s *CategoryRepoImpl) ListCategories(ctx context.Context) ([]*model.Category, error) {
	categories := make([]*model.Category, 0)
	err := s.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	return categories, err
}

func (s *CategoryRepoImpl) GetCategoryById(ctx context.Context, id uint64) (*model.Category, error) {
	category := &model.Category{}
	if err := s.db.WithContext(ctx).First(category, id).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryRepoImpl) GetCategoryByName(ctx context.Context, name string) (*model.Category, error) {
	category := &model.Category{}
	if err := s.db.WithContext(ctx).Where("name = ?", name).First(category).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryRepoImpl) CreateCategory(ctx context.Context, category *model.Category) error {
	return s.db.WithContext(ctx).Create(category).Error
}

// GetOrCreateCategory 并发调用时只会落一行，随后按名字读回
func (s *CategoryRepoImpl) GetOrCreateCategory(ctx context.Context, name string) (*model.Category, error) {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&model.Category{Name: name}).Error
	if err != nil {
		return nil, err
	}

	category := &model.Category{}
	if err = s.db.WithContext(ctx).Where("name = ?", name).First(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}
