package routes

import (
	"github.com/gorilla/mux"
	"github.com/partsbay/catalog-api/app/handlers"
	"github.com/partsbay/catalog-api/app/middlewares"
	"github.com/partsbay/catalog-api/app/repositories"
	"github.com/partsbay/catalog-api/app/services"
	"github.com/partsbay/catalog-api/app/utils/renderer"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB) *mux.Router {
	rnd := renderer.New()

	categoryRepo := repositories.NewCategoryRepository(db)
	productRepo := repositories.NewProductRepository(db)
	userRepo := repositories.NewUserRepository(db)

	categorySvc := services.NewCategoryService(categoryRepo, productRepo)
	productSvc := services.NewProductService(productRepo)

	categoryHandler := handlers.NewCategoryHandler(categorySvc, rnd)
	productHandler := handlers.NewProductHandler(productSvc, rnd)
	healthHandler := handlers.NewHealthHandler(rnd)

	router := mux.NewRouter()
	router.Use(middlewares.LoggingMiddleware)

	router.HandleFunc("/", healthHandler.Root).Methods("GET")
	router.HandleFunc("/health", healthHandler.Health).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", healthHandler.Health).Methods("GET")
	api.HandleFunc("/status", healthHandler.Status).Methods("GET")

	// Public catalog reads. Fixed product paths must register before the
	// /products/{id} wildcard.
	api.HandleFunc("/categories", categoryHandler.List).Methods("GET")
	api.HandleFunc("/categories/{id}", categoryHandler.Get).Methods("GET")
	api.HandleFunc("/products", productHandler.List).Methods("GET")
	api.HandleFunc("/products/search", productHandler.Search).Methods("GET")
	api.HandleFunc("/products/featured", productHandler.Featured).Methods("GET")
	api.HandleFunc("/products/category/{id}", productHandler.ListByCategory).Methods("GET")
	api.HandleFunc("/products/{id}", productHandler.Get).Methods("GET")

	// Admin mutations, behind the gate.
	admin := router.PathPrefix("/api").Subrouter()
	admin.Use(middlewares.AdminAuthMiddleware(userRepo, rnd))
	admin.HandleFunc("/categories", categoryHandler.Create).Methods("POST")
	admin.HandleFunc("/categories/{id}", categoryHandler.Update).Methods("PUT")
	admin.HandleFunc("/categories/{id}", categoryHandler.Delete).Methods("DELETE")
	admin.HandleFunc("/products", productHandler.Create).Methods("POST")
	admin.HandleFunc("/products/{id}", productHandler.Update).Methods("PUT")
	admin.HandleFunc("/products/{id}", productHandler.Delete).Methods("DELETE")

	return router
}
