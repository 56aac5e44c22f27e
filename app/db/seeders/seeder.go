package seeders

import (
	"log"

	"github.com/partsbay/catalog-api/app/db/fakers"
	"github.com/partsbay/catalog-api/app/utils/format"
	"gorm.io/gorm"
)

const productsPerCategory = 8

func DBSeed(db *gorm.DB) error {
	admin := fakers.AdminUserFaker()
	if err := db.FirstOrCreate(admin, "email = ?", admin.Email).Error; err != nil {
		return err
	}
	log.Printf("Seeded admin user %s", admin.Email)

	sku := 1
	for _, category := range fakers.CategoryFakers() {
		if err := db.FirstOrCreate(category, "name = ?", category.Name).Error; err != nil {
			return err
		}

		for i := 0; i < productsPerCategory; i++ {
			product := fakers.ProductFaker(category, sku)
			sku++
			if err := db.Create(product).Error; err != nil {
				return err
			}
			log.Printf("Seeded product %s (%s) at %s", product.Name, product.SkuValue(), format.Price(product.Price))
		}
	}
	return nil
}
