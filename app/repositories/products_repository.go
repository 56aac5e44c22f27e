package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/partsbay/catalog-api/app/models"
	"gorm.io/gorm"
)

const searchClause = "LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(sku) LIKE ? OR LOWER(brand) LIKE ? OR LOWER(part_number) LIKE ?"

// ProductFilter narrows the public product listing. Zero values mean
// "no filter".
type ProductFilter struct {
	CategoryID   string
	Search       string
	FeaturedOnly bool
}

type ProductRepositoryImpl interface {
	Create(ctx context.Context, product *models.Product) error
	GetPaginated(ctx context.Context, filter ProductFilter, limit, offset int) ([]models.Product, int64, error)
	GetActiveByID(ctx context.Context, id string) (*models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetByCategoryPaginated(ctx context.Context, categoryID string, limit, offset int) ([]models.Product, int64, error)
	SearchPaginated(ctx context.Context, keyword, brand string, limit, offset int) ([]models.Product, int64, error)
	GetFeatured(ctx context.Context, limit int) ([]models.Product, error)
	FindBySku(ctx context.Context, sku string) (*models.Product, error)
	CountByCategory(ctx context.Context, categoryID string) (int64, error)
	Update(ctx context.Context, product *models.Product) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

func (p *productRepository) Create(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Create(product).Error
}

func likePattern(keyword string) string {
	return "%" + strings.ToLower(keyword) + "%"
}

func (p *productRepository) activeQuery(ctx context.Context) *gorm.DB {
	return p.db.WithContext(ctx).Model(&models.Product{}).Where("is_active = ?", true)
}

func (p *productRepository) GetPaginated(ctx context.Context, filter ProductFilter, limit, offset int) ([]models.Product, int64, error) {
	query := p.activeQuery(ctx)

	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Search != "" {
		kw := likePattern(filter.Search)
		query = query.Where(searchClause, kw, kw, kw, kw, kw)
	}
	if filter.FeaturedOnly {
		query = query.Where("is_featured = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	var products []models.Product
	err := query.
		Preload("Category").
		Order("created_at DESC, id ASC").
		Limit(limit).
		Offset(offset).
		Find(&products).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get products: %w", err)
	}
	return products, total, nil
}

// GetActiveByID is the public lookup; soft-deleted products are invisible.
func (p *productRepository) GetActiveByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		Where("id = ? AND is_active = ?", id, true).
		First(&product).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product by id: %w", err)
	}
	return &product, nil
}

// GetByID is the admin lookup and ignores is_active.
func (p *productRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).Where("id = ?", id).First(&product).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product by id: %w", err)
	}
	return &product, nil
}

func (p *productRepository) GetByCategoryPaginated(ctx context.Context, categoryID string, limit, offset int) ([]models.Product, int64, error) {
	query := p.activeQuery(ctx).Where("category_id = ?", categoryID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products in category: %w", err)
	}

	var products []models.Product
	err := query.
		Order("created_at DESC, id ASC").
		Limit(limit).
		Offset(offset).
		Find(&products).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get products by category: %w", err)
	}
	return products, total, nil
}

func (p *productRepository) SearchPaginated(ctx context.Context, keyword, brand string, limit, offset int) ([]models.Product, int64, error) {
	kw := likePattern(keyword)
	query := p.activeQuery(ctx).Where(searchClause, kw, kw, kw, kw, kw)

	if brand != "" {
		query = query.Where("LOWER(brand) LIKE ?", likePattern(brand))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count search results: %w", err)
	}

	var products []models.Product
	err := query.
		Preload("Category").
		Order("created_at DESC, id ASC").
		Limit(limit).
		Offset(offset).
		Find(&products).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search products: %w", err)
	}
	return products, total, nil
}

func (p *productRepository) GetFeatured(ctx context.Context, limit int) ([]models.Product, error) {
	var products []models.Product
	err := p.activeQuery(ctx).
		Where("is_featured = ?", true).
		Preload("Category").
		Order("created_at DESC, id ASC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get featured products: %w", err)
	}
	return products, nil
}

// FindBySku matches against every row regardless of is_active. SKU uniqueness
// holds for the whole table.
func (p *productRepository) FindBySku(ctx context.Context, sku string) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).Where("sku = ?", sku).First(&product).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find product by sku: %w", err)
	}
	return &product, nil
}

// CountByCategory counts every referencing product, soft-deleted ones
// included. The category delete guard depends on that.
func (p *productRepository) CountByCategory(ctx context.Context, categoryID string) (int64, error) {
	var count int64
	err := p.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count products by category: %w", err)
	}
	return count, nil
}

func (p *productRepository) Update(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Save(product).Error
}
