package services

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/partsbay/catalog-api/app/models"
	"github.com/partsbay/catalog-api/app/models/migrations"
	"github.com/partsbay/catalog-api/app/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, migrations.AutoMigrate(db))
	return db
}

type testEnv struct {
	db           *gorm.DB
	categoryRepo repositories.CategoryRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
	categories   *CategoryService
	products     *ProductService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	categoryRepo := repositories.NewCategoryRepository(db)
	productRepo := repositories.NewProductRepository(db)

	return &testEnv{
		db:           db,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		categories:   NewCategoryService(categoryRepo, productRepo),
		products:     NewProductService(productRepo),
	}
}

func (e *testEnv) mustCreateCategory(t *testing.T, name string) *models.Category {
	t.Helper()
	category, err := e.categories.Create(context.Background(), CreateCategoryInput{Name: name})
	require.NoError(t, err)
	return category
}

func (e *testEnv) mustCreateProduct(t *testing.T, input CreateProductInput) *models.Product {
	t.Helper()
	if input.Price.IsZero() {
		input.Price = decimal.NewFromFloat(19.99)
	}
	product, err := e.products.Create(context.Background(), input)
	require.NoError(t, err)
	return product
}
