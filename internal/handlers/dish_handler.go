package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/plateful/dish-api/internal/models"
	"github.com/plateful/dish-api/internal/repository"
	"github.com/plateful/dish-api/internal/service"
)

const (
	defaultListLimit = 100
	maxListLimit     = 100
)

// DishHandler handles dish-related HTTP requests
type DishHandler struct {
	service *service.DishService
	logger  *slog.Logger
}

// NewDishHandler creates a new dish handler
func NewDishHandler(service *service.DishService, logger *slog.Logger) *DishHandler {
	return &DishHandler{
		service: service,
		logger:  logger,
	}
}

// CreateDish handles POST /dishes/
// - 201: dish stored, id assigned when omitted
// - 400: supplied id already exists
// - 422: body fails dish validation
func (h *DishHandler) CreateDish(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var dish models.Dish
	if err := json.NewDecoder(r.Body).Decode(&dish); err != nil {
		h.logger.Warn("invalid dish payload", "error", err)
		writeError(w, http.StatusUnprocessableEntity, "Invalid request body", h.logger)
		return
	}

	created, err := h.service.CreateDish(ctx, dish)
	if err != nil {
		var verr *models.ValidationError
		switch {
		case errors.As(err, &verr):
			h.logger.Warn("dish validation failed", "error", err)
			writeValidationError(w, verr, h.logger)
		case errors.Is(err, repository.ErrDishExists):
			h.logger.Info("duplicate dish id", "dishId", dish.ID)
			writeError(w, http.StatusBadRequest,
				fmt.Sprintf("Dish with id %d already exists", dish.ID), h.logger)
		default:
			h.logger.Error("failed to create dish", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		}
		return
	}

	writeJSON(w, http.StatusCreated, created, h.logger)
}

// ListDishes handles GET /dishes/
// Pagination: skip >= 0 (default 0), limit in [1,100] (default 100).
// Malformed parameters are rejected with 422 and field detail.
func (h *DishHandler) ListDishes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	skip, limit, verr := parseListParams(r)
	if verr != nil {
		h.logger.Warn("invalid pagination parameters", "error", verr)
		writeValidationError(w, verr, h.logger)
		return
	}

	dishes, err := h.service.ListDishes(ctx, skip, limit)
	if err != nil {
		h.logger.Error("failed to list dishes", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, dishes, h.logger)
}

// GetDish handles GET /dishes/{dishID}
func (h *DishHandler) GetDish(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, verr := parseDishID(r)
	if verr != nil {
		h.logger.Warn("invalid dish id", "error", verr)
		writeValidationError(w, verr, h.logger)
		return
	}

	dish, err := h.service.GetDish(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDishNotFound) {
			h.logger.Info("dish not found", "dishId", id)
			writeError(w, http.StatusNotFound,
				fmt.Sprintf("Dish with id %d not found", id), h.logger)
			return
		}

		h.logger.Error("failed to get dish", "dishId", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, dish, h.logger)
}

// UpdateDish handles PUT /dishes/{dishID}
// The path id is enforced over any id carried in the body.
func (h *DishHandler) UpdateDish(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, verr := parseDishID(r)
	if verr != nil {
		h.logger.Warn("invalid dish id", "error", verr)
		writeValidationError(w, verr, h.logger)
		return
	}

	var dish models.Dish
	if err := json.NewDecoder(r.Body).Decode(&dish); err != nil {
		h.logger.Warn("invalid dish payload", "error", err)
		writeError(w, http.StatusUnprocessableEntity, "Invalid request body", h.logger)
		return
	}

	updated, err := h.service.ReplaceDish(ctx, id, dish)
	if err != nil {
		var validationErr *models.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("dish validation failed", "error", err)
			writeValidationError(w, validationErr, h.logger)
		case errors.Is(err, repository.ErrDishNotFound):
			h.logger.Info("dish not found", "dishId", id)
			writeError(w, http.StatusNotFound,
				fmt.Sprintf("Dish with id %d not found", id), h.logger)
		default:
			h.logger.Error("failed to update dish", "dishId", id, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		}
		return
	}

	writeJSON(w, http.StatusOK, updated, h.logger)
}

// PatchDish handles PATCH /dishes/{dishID}
// name and price may arrive as query parameters or as a JSON body; query
// parameters take precedence. Omitted fields are left untouched.
func (h *DishHandler) PatchDish(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, verr := parseDishID(r)
	if verr != nil {
		h.logger.Warn("invalid dish id", "error", verr)
		writeValidationError(w, verr, h.logger)
		return
	}

	patch, verr := parseDishPatch(r)
	if verr != nil {
		h.logger.Warn("invalid patch parameters", "error", verr)
		writeValidationError(w, verr, h.logger)
		return
	}

	patched, err := h.service.PatchDish(ctx, id, patch)
	if err != nil {
		var validationErr *models.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("patch validation failed", "error", err)
			writeValidationError(w, validationErr, h.logger)
		case errors.Is(err, repository.ErrDishNotFound):
			h.logger.Info("dish not found", "dishId", id)
			writeError(w, http.StatusNotFound,
				fmt.Sprintf("Dish with id %d not found", id), h.logger)
		default:
			h.logger.Error("failed to patch dish", "dishId", id, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		}
		return
	}

	writeJSON(w, http.StatusOK, patched, h.logger)
}

// DeleteDish handles DELETE /dishes/{dishID}
func (h *DishHandler) DeleteDish(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, verr := parseDishID(r)
	if verr != nil {
		h.logger.Warn("invalid dish id", "error", verr)
		writeValidationError(w, verr, h.logger)
		return
	}

	if err := h.service.DeleteDish(ctx, id); err != nil {
		if errors.Is(err, repository.ErrDishNotFound) {
			h.logger.Info("dish not found", "dishId", id)
			writeError(w, http.StatusNotFound,
				fmt.Sprintf("Dish with id %d not found", id), h.logger)
			return
		}

		h.logger.Error("failed to delete dish", "dishId", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseDishID extracts and validates the {dishID} path parameter
func parseDishID(r *http.Request) (int64, *models.ValidationError) {
	raw := chi.URLParam(r, "dishID")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &models.ValidationError{Errors: []models.FieldError{
			{Field: "dish_id", Message: "must be an integer"},
		}}
	}
	if id < 1 {
		return 0, &models.ValidationError{Errors: []models.FieldError{
			{Field: "dish_id", Message: "must be greater than or equal to 1"},
		}}
	}

	return id, nil
}

// parseListParams validates the skip/limit pagination query parameters
func parseListParams(r *http.Request) (skip, limit int, _ *models.ValidationError) {
	skip, limit = 0, defaultListLimit

	var fieldErrors []models.FieldError
	query := r.URL.Query()

	if raw := query.Get("skip"); raw != "" {
		v, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			fieldErrors = append(fieldErrors, models.FieldError{
				Field: "skip", Message: "must be an integer",
			})
		case v < 0:
			fieldErrors = append(fieldErrors, models.FieldError{
				Field: "skip", Message: "must be greater than or equal to 0",
			})
		default:
			skip = v
		}
	}

	if raw := query.Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			fieldErrors = append(fieldErrors, models.FieldError{
				Field: "limit", Message: "must be an integer",
			})
		case v < 1:
			fieldErrors = append(fieldErrors, models.FieldError{
				Field: "limit", Message: "must be greater than or equal to 1",
			})
		case v > maxListLimit:
			fieldErrors = append(fieldErrors, models.FieldError{
				Field: "limit", Message: fmt.Sprintf("must be less than or equal to %d", maxListLimit),
			})
		default:
			limit = v
		}
	}

	if len(fieldErrors) > 0 {
		return 0, 0, &models.ValidationError{Errors: fieldErrors}
	}
	return skip, limit, nil
}

// parseDishPatch builds a partial update from query parameters, falling back
// to a JSON body when no query parameter is present
func parseDishPatch(r *http.Request) (models.DishPatch, *models.ValidationError) {
	var patch models.DishPatch
	query := r.URL.Query()

	if query.Has("name") || query.Has("price") {
		if query.Has("name") {
			name := query.Get("name")
			patch.Name = &name
		}
		if query.Has("price") {
			price, err := strconv.ParseFloat(query.Get("price"), 64)
			if err != nil {
				return models.DishPatch{}, &models.ValidationError{Errors: []models.FieldError{
					{Field: "price", Message: "must be a number"},
				}}
			}
			patch.Price = &price
		}
		return patch, nil
	}

	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil && err != io.EOF {
		return models.DishPatch{}, &models.ValidationError{Errors: []models.FieldError{
			{Field: "body", Message: "must be a valid JSON object"},
		}}
	}
	return patch, nil
}
