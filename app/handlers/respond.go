package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/partsbay/catalog-api/app/services"
	"github.com/unrolled/render"
)

// writeServiceError maps the service error taxonomy onto HTTP statuses:
// NotFound -> 404, Conflict -> 400, Validation -> 422, anything else -> 500.
func writeServiceError(rnd *render.Render, w http.ResponseWriter, err error) {
	var notFound *services.NotFoundError
	var conflict *services.ConflictError
	var invalid *services.ValidationError

	switch {
	case errors.As(err, &notFound):
		_ = rnd.JSON(w, http.StatusNotFound, map[string]string{"detail": notFound.Error()})
	case errors.As(err, &conflict):
		_ = rnd.JSON(w, http.StatusBadRequest, map[string]string{"detail": conflict.Error()})
	case errors.As(err, &invalid):
		_ = rnd.JSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": invalid.Error()})
	default:
		log.Printf("handler: unexpected error: %v", err)
		_ = rnd.JSON(w, http.StatusInternalServerError, map[string]string{"detail": "Internal server error"})
	}
}

func writeValidationError(rnd *render.Render, w http.ResponseWriter, detail string) {
	_ = rnd.JSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": detail})
}

func parseQueryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &services.ValidationError{Detail: name + " must be an integer"}
	}
	return value, nil
}

// paginationParams reads skip/limit with the public listing bounds:
// skip >= 0, limit in [1,100], defaults 0/20.
func paginationParams(r *http.Request) (int, int, error) {
	skip, err := parseQueryInt(r, "skip", 0)
	if err != nil {
		return 0, 0, err
	}
	if skip < 0 {
		return 0, 0, &services.ValidationError{Detail: "skip must be greater than or equal to 0"}
	}

	limit, err := parseQueryInt(r, "limit", 20)
	if err != nil {
		return 0, 0, err
	}
	if limit < 1 || limit > 100 {
		return 0, 0, &services.ValidationError{Detail: "limit must be between 1 and 100"}
	}
	return skip, limit, nil
}
