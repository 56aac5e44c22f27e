package fakers

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/google/uuid"
	"github.com/partsbay/catalog-api/app/models"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func AdminUserFaker() *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash admin password:", err)
	}

	return &models.User{
		ID:        uuid.New().String(),
		FirstName: "Admin",
		LastName:  "User",
		Email:     "admin@partsbay.local",
		Password:  string(hash),
		Role:      models.RoleAdmin,
	}
}

var sampleCategories = []models.Category{
	{Name: "Brakes", Description: "Pads, rotors, calipers and hydraulics"},
	{Name: "Filters", Description: "Oil, air, fuel and cabin filters"},
	{Name: "Suspension", Description: "Shocks, struts and control arms"},
	{Name: "Electrical", Description: "Batteries, alternators and starters"},
}

func CategoryFakers() []*models.Category {
	categories := make([]*models.Category, 0, len(sampleCategories))
	for _, c := range sampleCategories {
		category := c
		category.ID = uuid.New().String()
		category.IsActive = true
		categories = append(categories, &category)
	}
	return categories
}

var sampleBrands = []string{"Bosch", "Brembo", "Denso", "Mann", "Monroe"}

func ProductFaker(category *models.Category, n int) *models.Product {
	brand := sampleBrands[rand.Intn(len(sampleBrands))]
	sku := fmt.Sprintf("%s-%03d", category.Name[:3], n)

	return &models.Product{
		ID:          uuid.New().String(),
		CategoryID:  category.ID,
		Name:        fmt.Sprintf("%s %s %03d", brand, category.Name, n),
		Description: fmt.Sprintf("Replacement %s part by %s", category.Name, brand),
		Sku:         &sku,
		Brand:       brand,
		PartNumber:  fmt.Sprintf("PN-%06d", rand.Intn(1000000)),
		Price:       decimal.NewFromFloat(float64(rand.Intn(40000)+500) / 100),
		Stock:       rand.Intn(50),
		IsActive:    true,
		IsFeatured:  n%5 == 0,
	}
}
