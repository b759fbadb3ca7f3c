package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/plateful/dish-api/internal/models"
)

func TestAppend_AssignsSequentialID(t *testing.T) {
	repo := NewInMemoryDishRepository()
	ctx := context.Background()

	first, err := repo.Append(ctx, models.Dish{Name: "Pizza", Price: 9.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.ID != 1 {
		t.Errorf("expected assigned id 1, got %d", first.ID)
	}

	second, err := repo.Append(ctx, models.Dish{Name: "Pasta", Price: 10.0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.ID != 2 {
		t.Errorf("expected assigned id 2, got %d", second.ID)
	}
}

func TestAppend_KeepsSuppliedID(t *testing.T) {
	repo := NewInMemoryDishRepository()
	ctx := context.Background()

	dish, err := repo.Append(ctx, models.Dish{ID: 42, Name: "Soup", Price: 4.0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dish.ID != 42 {
		t.Errorf("expected id 42 to be kept, got %d", dish.ID)
	}
}

func TestAppend_DuplicateIDLeavesStoreUnchanged(t *testing.T) {
	repo := NewInMemoryDishRepository()
	ctx := context.Background()

	if _, err := repo.Append(ctx, models.Dish{ID: 1, Name: "Pizza", Price: 9.5}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := repo.Append(ctx, models.Dish{ID: 1, Name: "Impostor", Price: 1.0})
	if !errors.Is(err, ErrDishExists) {
		t.Fatalf("expected ErrDishExists, got %v", err)
	}

	dishes, err := repo.List(ctx, 0, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dishes) != 1 {
		t.Errorf("expected store to hold 1 dish, got %d", len(dishes))
	}
	if dishes[0].Name != "Pizza" {
		t.Errorf("expected stored dish to be unchanged, got %s", dishes[0].Name)
	}
}

func TestAppend_IDReuseAfterDeletion(t *testing.T) {
	// The id is computed as len(store)+1, so deleting a dish frees up a slot
	// count and the next auto-assigned id can collide with a surviving dish.
	// Documented behavior inherited from the reference implementation.
	repo := NewInMemoryDishRepository()
	ctx := context.Background()

	if _, err := repo.Append(ctx, models.Dish{ID: 1, Name: "Pasta", Price: 10.0}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.Append(ctx, models.Dish{ID: 2, Name: "Soup", Price: 4.0}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Remove(ctx, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dish, err := repo.Append(ctx, models.Dish{Name: "Salad", Price: 6.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dish.ID != 2 {
		t.Errorf("expected colliding id 2, got %d", dish.ID)
	}

	dishes, _ := repo.List(ctx, 0, 100)
	if len(dishes) != 2 {
		t.Fatalf("expected 2 dishes, got %d", len(dishes))
	}
	if dishes[0].ID != 2 || dishes[1].ID != 2 {
		t.Errorf("expected both dishes to carry id 2, got %d and %d", dishes[0].ID, dishes[1].ID)
	}
}

func TestList_Windows(t *testing.T) {
	repo := NewInMemoryDishRepository()
	ctx := context.Background()

	names := []string{"Pizza", "Pasta", "Soup", "Salad", "Burger"}
	for _, name := range names {
		if _, err := repo.Append(ctx, models.Dish{Name: name, Price: 5.0}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	testCases := []struct {
		name      string
		skip      int
		limit     int
		wantNames []string
	}{
		{"full window", 0, 100, names},
		{"first two", 0, 2, []string{"Pizza", "Pasta"}},
		{"middle window", 1, 3, []string{"Pasta", "Soup", "Salad"}},
		{"skip beyond size", 10, 100, []string{}},
		{"limit beyond size", 3, 100, []string{"Salad", "Burger"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dishes, err := repo.List(ctx, tc.skip, tc.limit)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(dishes) != len(tc.wantNames) {
				t.Fatalf("expected %d dishes, got %d", len(tc.wantNames), len(dishes))
			}
			for i, want := range tc.wantNames {
				if dishes[i].Name != want {
					t.Errorf("position %d: expected %s, got %s", i, want, dishes[i].Name)
				}
			}
		})
	}
}

func TestGetByID(t *testing.T) {
	repo := NewInMemoryDishRepository()
	ctx := context.Background()

	if _, err := repo.Append(ctx, models.Dish{ID: 7, Name: "Pizza", Price: 9.5}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dish, err := repo.GetByID(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dish.Name != "Pizza" || dish.Price != 9.5 {
		t.Errorf("unexpected dish: %+v", dish)
	}

	if _, err := repo.GetByID(ctx, 99); !errors.Is(err, ErrDishNotFound) {
		t.Errorf("expected ErrDishNotFound, got %v", err)
	}
}

func TestReplace_PreservesPositionAndID(t *testing.T) {
	repo := NewInMemoryDishRepository()
	ctx := context.Background()

	for _, d := range []models.Dish{
		{ID: 1, Name: "Pizza", Price: 9.5},
		{ID: 2, Name: "Pasta", Price: 10.0},
		{ID: 3, Name: "Soup", Price: 4.0},
	} {
		if _, err := repo.Append(ctx, d); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	// Body carries a different id; the addressed id must win.
	replaced, err := repo.Replace(ctx, 2, models.Dish{ID: 99, Name: "Risotto", Price: 13.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if replaced.ID != 2 {
		t.Errorf("expected id 2 to be preserved, got %d", replaced.ID)
	}

	dishes, _ := repo.List(ctx, 0, 100)
	if dishes[1].Name != "Risotto" {
		t.Errorf("expected Risotto at position 1, got %s", dishes[1].Name)
	}

	if _, err := repo.Replace(ctx, 99, models.Dish{Name: "Ghost", Price: 1.0}); !errors.Is(err, ErrDishNotFound) {
		t.Errorf("expected ErrDishNotFound, got %v", err)
	}
}

func TestPatch_AppliesOnlySuppliedFields(t *testing.T) {
	repo := NewInMemoryDishRepository()
	ctx := context.Background()

	if _, err := repo.Append(ctx, models.Dish{ID: 1, Name: "Pizza", Price: 9.5}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	price := 11.0
	patched, err := repo.Patch(ctx, 1, models.DishPatch{Price: &price})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if patched.Name != "Pizza" {
		t.Errorf("expected name to be untouched, got %s", patched.Name)
	}
	if patched.Price != 11.0 {
		t.Errorf("expected price 11.0, got %f", patched.Price)
	}

	name := "Calzone"
	patched, err = repo.Patch(ctx, 1, models.DishPatch{Name: &name})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if patched.Name != "Calzone" || patched.Price != 11.0 {
		t.Errorf("unexpected dish after patch: %+v", patched)
	}

	if _, err := repo.Patch(ctx, 99, models.DishPatch{Name: &name}); !errors.Is(err, ErrDishNotFound) {
		t.Errorf("expected ErrDishNotFound, got %v", err)
	}
}

func TestRemove_PreservesOrder(t *testing.T) {
	repo := NewInMemoryDishRepository()
	ctx := context.Background()

	for _, d := range []models.Dish{
		{ID: 1, Name: "Pizza", Price: 9.5},
		{ID: 2, Name: "Pasta", Price: 10.0},
		{ID: 3, Name: "Soup", Price: 4.0},
	} {
		if _, err := repo.Append(ctx, d); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if err := repo.Remove(ctx, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dishes, _ := repo.List(ctx, 0, 100)
	if len(dishes) != 2 {
		t.Fatalf("expected 2 dishes, got %d", len(dishes))
	}
	if dishes[0].Name != "Pizza" || dishes[1].Name != "Soup" {
		t.Errorf("expected order Pizza, Soup; got %s, %s", dishes[0].Name, dishes[1].Name)
	}

	if err := repo.Remove(ctx, 2); !errors.Is(err, ErrDishNotFound) {
		t.Errorf("expected ErrDishNotFound, got %v", err)
	}
	if dishes, _ := repo.List(ctx, 0, 100); len(dishes) != 2 {
		t.Errorf("expected store unchanged after failed remove, got %d dishes", len(dishes))
	}
}
