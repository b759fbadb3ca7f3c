package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/plateful/dish-api/internal/models"
)

var (
	ErrDishNotFound = errors.New("dish not found")
	ErrDishExists   = errors.New("dish already exists")
)

// DishRepository defines the interface for dish data access
type DishRepository interface {
	Append(ctx context.Context, dish models.Dish) (models.Dish, error)
	List(ctx context.Context, skip, limit int) ([]models.Dish, error)
	GetByID(ctx context.Context, id int64) (*models.Dish, error)
	Replace(ctx context.Context, id int64, dish models.Dish) (models.Dish, error)
	Patch(ctx context.Context, id int64, patch models.DishPatch) (models.Dish, error)
	Remove(ctx context.Context, id int64) error
}

// InMemoryDishRepository implements DishRepository with an ordered in-memory
// sequence. The slice preserves insertion order; updates never reorder.
//
// A single mutex serializes all access. The store itself has no transactional
// semantics, so this keeps concurrent requests from chi's goroutine-per-request
// model equivalent to single-threaded processing.
type InMemoryDishRepository struct {
	mu     sync.Mutex
	dishes []models.Dish
}

// NewInMemoryDishRepository creates an empty in-memory dish repository
func NewInMemoryDishRepository() *InMemoryDishRepository {
	return &InMemoryDishRepository{
		dishes: make([]models.Dish, 0),
	}
}

// Append stores a new dish at the end of the sequence.
// When the dish carries no id (zero), one is assigned as len(store)+1.
// That mirrors the reference behavior and is known to collide with surviving
// ids after deletions; callers relying on uniqueness must supply ids.
// When an id is supplied, it must not already be present.
func (r *InMemoryDishRepository) Append(ctx context.Context, dish models.Dish) (models.Dish, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if dish.ID == 0 {
		dish.ID = int64(len(r.dishes)) + 1
	} else {
		for _, d := range r.dishes {
			if d.ID == dish.ID {
				return models.Dish{}, ErrDishExists
			}
		}
	}

	r.dishes = append(r.dishes, dish)
	return dish, nil
}

// List returns a contiguous window of the sequence in insertion order.
// Out-of-range skip/limit yields a possibly-empty slice, never an error.
func (r *InMemoryDishRepository) List(ctx context.Context, skip, limit int) ([]models.Dish, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if skip < 0 {
		skip = 0
	}
	if skip >= len(r.dishes) || limit <= 0 {
		return []models.Dish{}, nil
	}

	end := skip + limit
	if end > len(r.dishes) {
		end = len(r.dishes)
	}

	window := make([]models.Dish, end-skip)
	copy(window, r.dishes[skip:end])
	return window, nil
}

// GetByID returns the first dish with the given id
func (r *InMemoryDishRepository) GetByID(ctx context.Context, id int64) (*models.Dish, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, d := range r.dishes {
		if d.ID == id {
			dish := d
			return &dish, nil
		}
	}
	return nil, ErrDishNotFound
}

// Replace overwrites the dish with the given id in place, preserving its
// position. The stored id is always the given one, regardless of dish.ID.
func (r *InMemoryDishRepository) Replace(ctx context.Context, id int64, dish models.Dish) (models.Dish, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, d := range r.dishes {
		if d.ID == id {
			dish.ID = id
			r.dishes[i] = dish
			return dish, nil
		}
	}
	return models.Dish{}, ErrDishNotFound
}

// Patch overwrites only the supplied fields of the dish with the given id
func (r *InMemoryDishRepository) Patch(ctx context.Context, id int64, patch models.DishPatch) (models.Dish, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, d := range r.dishes {
		if d.ID == id {
			if patch.Name != nil {
				d.Name = *patch.Name
			}
			if patch.Price != nil {
				d.Price = *patch.Price
			}
			r.dishes[i] = d
			return d, nil
		}
	}
	return models.Dish{}, ErrDishNotFound
}

// Remove deletes the dish with the given id, preserving the order of the rest
func (r *InMemoryDishRepository) Remove(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, d := range r.dishes {
		if d.ID == id {
			r.dishes = append(r.dishes[:i], r.dishes[i+1:]...)
			return nil
		}
	}
	return ErrDishNotFound
}
