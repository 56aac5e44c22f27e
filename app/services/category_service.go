package services

import (
	"context"
	"fmt"

	"github.com/partsbay/catalog-api/app/models"
	"github.com/partsbay/catalog-api/app/repositories"
)

type CategoryService struct {
	categoryRepo repositories.CategoryRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
}

func NewCategoryService(categoryRepo repositories.CategoryRepositoryImpl, productRepo repositories.ProductRepositoryImpl) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

type CreateCategoryInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// UpdateCategoryInput uses pointer fields so that an omitted field and a field
// explicitly set to its zero value stay distinguishable.
type UpdateCategoryInput struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	IsActive    *bool   `json:"is_active"`
}

func (s *CategoryService) ListActive(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.GetActive(ctx)
}

// GetByID returns the category whether active or not; the public endpoint
// mirrors the admin lookup here.
func (s *CategoryService) GetByID(ctx context.Context, id string) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, &NotFoundError{Resource: "Category"}
	}
	return category, nil
}

func (s *CategoryService) Create(ctx context.Context, input CreateCategoryInput) (*models.Category, error) {
	conflict := &ConflictError{Detail: "Category with this name already exists"}

	existing, err := s.categoryRepo.FindByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, conflict
	}

	category := &models.Category{
		Name:        input.Name,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		IsActive:    true,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, translateDuplicate(err, conflict)
	}
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, id string, input UpdateCategoryInput) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, &NotFoundError{Resource: "Category"}
	}

	conflict := &ConflictError{Detail: "Category with this name already exists"}
	if input.Name != nil && *input.Name != category.Name {
		existing, err := s.categoryRepo.FindByName(ctx, *input.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, conflict
		}
		category.Name = *input.Name
	}
	if input.Description != nil {
		category.Description = *input.Description
	}
	if input.ImageURL != nil {
		category.ImageURL = *input.ImageURL
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, translateDuplicate(err, conflict)
	}
	return category, nil
}

// SoftDelete marks a category inactive. It refuses when any product, active or
// not, still references the category, and reports how many do.
func (s *CategoryService) SoftDelete(ctx context.Context, id string) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return &NotFoundError{Resource: "Category"}
	}

	count, err := s.productRepo.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return &ConflictError{
			Detail:       fmt.Sprintf("Cannot delete category with %d products. Please remove or reassign products first.", count),
			ProductCount: count,
		}
	}

	category.IsActive = false
	return s.categoryRepo.Update(ctx, category)
}
