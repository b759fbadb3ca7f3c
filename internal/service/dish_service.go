package service

import (
	"context"

	"github.com/plateful/dish-api/internal/models"
	"github.com/plateful/dish-api/internal/repository"
)

// DishService handles business logic for dishes
type DishService struct {
	repo repository.DishRepository
}

// NewDishService creates a new dish service
func NewDishService(repo repository.DishRepository) *DishService {
	return &DishService{
		repo: repo,
	}
}

// CreateDish validates and stores a new dish, assigning an id when none is
// supplied. Returns repository.ErrDishExists on a duplicate supplied id.
func (s *DishService) CreateDish(ctx context.Context, dish models.Dish) (models.Dish, error) {
	if err := dish.Validate(); err != nil {
		return models.Dish{}, err
	}
	return s.repo.Append(ctx, dish)
}

// ListDishes returns a window of dishes in insertion order
func (s *DishService) ListDishes(ctx context.Context, skip, limit int) ([]models.Dish, error) {
	return s.repo.List(ctx, skip, limit)
}

// GetDish returns a dish by id
func (s *DishService) GetDish(ctx context.Context, id int64) (*models.Dish, error) {
	return s.repo.GetByID(ctx, id)
}

// ReplaceDish fully replaces the dish with the given id. The path id always
// wins over any id carried in the body.
func (s *DishService) ReplaceDish(ctx context.Context, id int64, dish models.Dish) (models.Dish, error) {
	dish.ID = id
	if err := dish.Validate(); err != nil {
		return models.Dish{}, err
	}
	return s.repo.Replace(ctx, id, dish)
}

// PatchDish applies only the supplied fields to the dish with the given id
func (s *DishService) PatchDish(ctx context.Context, id int64, patch models.DishPatch) (models.Dish, error) {
	if err := patch.Validate(); err != nil {
		return models.Dish{}, err
	}
	return s.repo.Patch(ctx, id, patch)
}

// DeleteDish removes the dish with the given id
func (s *DishService) DeleteDish(ctx context.Context, id int64) error {
	return s.repo.Remove(ctx, id)
}
