package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/internal/store"
	"github.com/MKhiriev/go-finance-tracker/models"
)

type categoryService struct {
	categories store.CategoryRepository

	logger *logger.Logger
}

func NewCategoryService(categories store.CategoryRepository, logger *logger.Logger) CategoryService {
	return &categoryService{categories: categories, logger: logger}
}

func (s *categoryService) CreateCategory(ctx context.Context, userID int64, category models.Category) (models.Category, error) {
	_, lookupErr := s.categories.FindCategoryByName(ctx, userID, category.Name)
	exists, err := taken(lookupErr)
	if err != nil {
		return models.Category{}, fmt.Errorf("category lookup failed: %w", err)
	}
	if exists {
		return models.Category{}, ErrCategoryAlreadyExists
	}

	category.UserID = userID
	created, err := s.categories.CreateCategory(ctx, category)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("category creation failed")
		return models.Category{}, translate(err, ErrCategoryNotFound, ErrCategoryAlreadyExists)
	}

	return created, nil
}

func (s *categoryService) ListCategories(ctx context.Context, userID int64, page models.PageRequest) (models.Page[models.Category], error) {
	page = page.Normalize()

	categories, total, err := s.categories.ListCategories(ctx, userID, page)
	if err != nil {
		return models.Page[models.Category]{}, fmt.Errorf("listing categories failed: %w", err)
	}

	return models.NewPage(categories, total, page), nil
}

func (s *categoryService) GetCategory(ctx context.Context, userID, id int64) (models.Category, error) {
	category, err := s.categories.GetCategory(ctx, userID, id)
	if err != nil {
		return models.Category{}, translate(err, ErrCategoryNotFound, nil)
	}
	return category, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, userID, id int64, update models.CategoryUpdate) (models.Category, error) {
	if update.Name != nil {
		other, err := s.categories.FindCategoryByName(ctx, userID, *update.Name)
		exists, err := taken(err)
		if err != nil {
			return models.Category{}, fmt.Errorf("category lookup failed: %w", err)
		}
		if exists && other.ID != id {
			return models.Category{}, ErrCategoryAlreadyExists
		}
	}

	updated, err := s.categories.UpdateCategory(ctx, userID, id, update)
	if err != nil {
		return models.Category{}, translate(err, ErrCategoryNotFound, ErrCategoryAlreadyExists)
	}
	return updated, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, userID, id int64) error {
	if err := s.categories.DeleteCategory(ctx, userID, id); err != nil {
		return translate(err, ErrCategoryNotFound, nil)
	}
	return nil
}
