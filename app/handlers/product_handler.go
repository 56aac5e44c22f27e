package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/partsbay/catalog-api/app/helpers"
	"github.com/partsbay/catalog-api/app/models"
	"github.com/partsbay/catalog-api/app/repositories"
	"github.com/partsbay/catalog-api/app/services"
	"github.com/partsbay/catalog-api/app/utils/format"
	"github.com/unrolled/render"
)

type ProductHandler struct {
	svc    *services.ProductService
	render *render.Render
}

func NewProductHandler(svc *services.ProductService, r *render.Render) *ProductHandler {
	return &ProductHandler{svc: svc, render: r}
}

func withDisplayPrice(products []models.Product) []models.Product {
	for i := range products {
		products[i].PriceDisplay = format.Price(products[i].Price)
	}
	return products
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := paginationParams(r)
	if err != nil {
		writeServiceError(h.render, w, err)
		return
	}

	filter := repositories.ProductFilter{
		CategoryID:   r.URL.Query().Get("category_id"),
		Search:       r.URL.Query().Get("search"),
		FeaturedOnly: r.URL.Query().Get("featured_only") == "true",
	}

	products, _, err := h.svc.List(r.Context(), filter, skip, limit)
	if err != nil {
		writeServiceError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, withDisplayPrice(products))
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(h.render, w, err)
		return
	}
	product.PriceDisplay = format.Price(product.Price)
	_ = h.render.JSON(w, http.StatusOK, product)
}

func (h *ProductHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := mux.Vars(r)["id"]

	skip, limit, err := paginationParams(r)
	if err != nil {
		writeServiceError(h.render, w, err)
		return
	}

	products, _, err := h.svc.ListByCategory(r.Context(), categoryID, skip, limit)
	if err != nil {
		writeServiceError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, withDisplayPrice(products))
}

func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := paginationParams(r)
	if err != nil {
		writeServiceError(h.render, w, err)
		return
	}

	q := r.URL.Query().Get("q")
	brand := r.URL.Query().Get("brand")

	products, _, err := h.svc.Search(r.Context(), q, brand, skip, limit)
	if err != nil {
		writeServiceError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, withDisplayPrice(products))
}

func (h *ProductHandler) Featured(w http.ResponseWriter, r *http.Request) {
	limit, err := parseQueryInt(r, "limit", 10)
	if err != nil {
		writeServiceError(h.render, w, err)
		return
	}
	if limit < 1 || limit > 50 {
		writeValidationError(h.render, w, "limit must be between 1 and 50")
		return
	}

	products, err := h.svc.ListFeatured(r.Context(), limit)
	if err != nil {
		writeServiceError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, withDisplayPrice(products))
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.CreateProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeValidationError(h.render, w, "invalid request body")
		return
	}
	if err := helpers.ValidateStruct(input); err != nil {
		writeValidationError(h.render, w, err.Error())
		return
	}

	product, err := h.svc.Create(r.Context(), input)
	if err != nil {
		writeServiceError(h.render, w, err)
		return
	}
	product.PriceDisplay = format.Price(product.Price)
	_ = h.render.JSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var input services.UpdateProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeValidationError(h.render, w, "invalid request body")
		return
	}
	if err := helpers.ValidateStruct(input); err != nil {
		writeValidationError(h.render, w, err.Error())
		return
	}

	product, err := h.svc.Update(r.Context(), id, input)
	if err != nil {
		writeServiceError(h.render, w, err)
		return
	}
	product.PriceDisplay = format.Price(product.Price)
	_ = h.render.JSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.svc.SoftDelete(r.Context(), id); err != nil {
		writeServiceError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}
