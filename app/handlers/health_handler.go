package handlers

import (
	"net/http"

	"github.com/unrolled/render"
)

type HealthHandler struct {
	render *render.Render
}

func NewHealthHandler(r *render.Render) *HealthHandler {
	return &HealthHandler{render: r}
}

func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	_ = h.render.JSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to PartsBay Catalog API",
		"version": "1.0.0",
	})
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	_ = h.render.JSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"message": "API is running",
	})
}

func (h *HealthHandler) Status(w http.ResponseWriter, r *http.Request) {
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"status":  "online",
		"version": "1.0.0",
		"features": []string{
			"Category Management",
			"Product Management",
			"Product Search",
		},
	})
}
