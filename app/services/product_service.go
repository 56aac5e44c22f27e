package services

import (
	"context"

	"github.com/partsbay/catalog-api/app/models"
	"github.com/partsbay/catalog-api/app/repositories"
	"github.com/shopspring/decimal"
)

type ProductService struct {
	productRepo repositories.ProductRepositoryImpl
}

func NewProductService(productRepo repositories.ProductRepositoryImpl) *ProductService {
	return &ProductService{productRepo: productRepo}
}

type CreateProductInput struct {
	CategoryID  string          `json:"category_id" validate:"required"`
	Name        string          `json:"name" validate:"required,max=255"`
	Description string          `json:"description"`
	Sku         string          `json:"sku" validate:"omitempty,max=100"`
	Brand       string          `json:"brand" validate:"omitempty,max=100"`
	PartNumber  string          `json:"part_number" validate:"omitempty,max=100"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock" validate:"gte=0"`
	IsFeatured  bool            `json:"is_featured"`
}

// UpdateProductInput applies only the fields present in the request body.
// Pointer fields keep "omitted" and "set to zero value" apart.
type UpdateProductInput struct {
	CategoryID  *string          `json:"category_id" validate:"omitempty,min=1"`
	Name        *string          `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string          `json:"description"`
	Sku         *string          `json:"sku" validate:"omitempty,max=100"`
	Brand       *string          `json:"brand" validate:"omitempty,max=100"`
	PartNumber  *string          `json:"part_number" validate:"omitempty,max=100"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock" validate:"omitempty,gte=0"`
	IsActive    *bool            `json:"is_active"`
	IsFeatured  *bool            `json:"is_featured"`
}

func (s *ProductService) List(ctx context.Context, filter repositories.ProductFilter, skip, limit int) ([]models.Product, int64, error) {
	return s.productRepo.GetPaginated(ctx, filter, limit, skip)
}

// GetByID only resolves active products; soft-deleted ones look absent to the
// public surface.
func (s *ProductService) GetByID(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.productRepo.GetActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, &NotFoundError{Resource: "Product"}
	}
	return product, nil
}

func (s *ProductService) ListByCategory(ctx context.Context, categoryID string, skip, limit int) ([]models.Product, int64, error) {
	return s.productRepo.GetByCategoryPaginated(ctx, categoryID, limit, skip)
}

func (s *ProductService) Search(ctx context.Context, q, brand string, skip, limit int) ([]models.Product, int64, error) {
	if q == "" {
		return nil, 0, &ValidationError{Detail: "q must have at least 1 character"}
	}
	return s.productRepo.SearchPaginated(ctx, q, brand, limit, skip)
}

func (s *ProductService) ListFeatured(ctx context.Context, limit int) ([]models.Product, error) {
	return s.productRepo.GetFeatured(ctx, limit)
}

func (s *ProductService) Create(ctx context.Context, input CreateProductInput) (*models.Product, error) {
	conflict := &ConflictError{Detail: "Product with this SKU already exists"}

	if input.Sku != "" {
		existing, err := s.productRepo.FindBySku(ctx, input.Sku)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, conflict
		}
	}

	product := &models.Product{
		CategoryID:  input.CategoryID,
		Name:        input.Name,
		Description: input.Description,
		Brand:       input.Brand,
		PartNumber:  input.PartNumber,
		Price:       input.Price,
		Stock:       input.Stock,
		IsActive:    true,
		IsFeatured:  input.IsFeatured,
	}
	if input.Sku != "" {
		sku := input.Sku
		product.Sku = &sku
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, translateDuplicate(err, conflict)
	}
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id string, input UpdateProductInput) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, &NotFoundError{Resource: "Product"}
	}

	conflict := &ConflictError{Detail: "Product with this SKU already exists"}
	if input.Sku != nil && *input.Sku != "" && *input.Sku != product.SkuValue() {
		existing, err := s.productRepo.FindBySku(ctx, *input.Sku)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, conflict
		}
	}

	if input.CategoryID != nil {
		product.CategoryID = *input.CategoryID
	}
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Sku != nil {
		if *input.Sku == "" {
			product.Sku = nil
		} else {
			sku := *input.Sku
			product.Sku = &sku
		}
	}
	if input.Brand != nil {
		product.Brand = *input.Brand
	}
	if input.PartNumber != nil {
		product.PartNumber = *input.PartNumber
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if input.IsFeatured != nil {
		product.IsFeatured = *input.IsFeatured
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, translateDuplicate(err, conflict)
	}
	return product, nil
}

// SoftDelete marks a product inactive. Products have no dependents, so there
// is no referential guard.
func (s *ProductService) SoftDelete(ctx context.Context, id string) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return &NotFoundError{Resource: "Product"}
	}

	product.IsActive = false
	return s.productRepo.Update(ctx, product)
}
