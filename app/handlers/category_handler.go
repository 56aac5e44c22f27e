package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/partsbay/catalog-api/app/helpers"
	"github.com/partsbay/catalog-api/app/services"
	"github.com/unrolled/render"
)

type CategoryHandler struct {
	svc    *services.CategoryService
	render *render.Render
}

func NewCategoryHandler(svc *services.CategoryService, r *render.Render) *CategoryHandler {
	return &CategoryHandler{svc: svc, render: r}
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.ListActive(r.Context())
	if err != nil {
		writeServiceError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	category, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.CreateCategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeValidationError(h.render, w, "invalid request body")
		return
	}
	if err := helpers.ValidateStruct(input); err != nil {
		writeValidationError(h.render, w, err.Error())
		return
	}

	category, err := h.svc.Create(r.Context(), input)
	if err != nil {
		writeServiceError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var input services.UpdateCategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeValidationError(h.render, w, "invalid request body")
		return
	}
	if err := helpers.ValidateStruct(input); err != nil {
		writeValidationError(h.render, w, err.Error())
		return
	}

	category, err := h.svc.Update(r.Context(), id, input)
	if err != nil {
		writeServiceError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.svc.SoftDelete(r.Context(), id); err != nil {
		writeServiceError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"message": "Category deleted successfully"})
}
