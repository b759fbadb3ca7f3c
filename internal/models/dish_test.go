package models

import (
	"errors"
	"testing"
)

func TestDishValidate(t *testing.T) {
	testCases := []struct {
		name      string
		dish      Dish
		wantField string // empty means valid
	}{
		{"valid without id", Dish{Name: "Pizza", Price: 9.5}, ""},
		{"valid with id", Dish{ID: 1, Name: "Pasta Carbonara", Price: 12.99}, ""},
		{"missing name", Dish{Price: 9.5}, "name"},
		{"zero price", Dish{Name: "Pizza"}, "price"},
		{"negative price", Dish{Name: "Pizza", Price: -1}, "price"},
		{"negative id", Dish{ID: -1, Name: "Pizza", Price: 9.5}, "id"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.dish.Validate()

			if tc.wantField == "" {
				if err != nil {
					t.Fatalf("expected dish to be valid, got %v", err)
				}
				return
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if len(verr.Errors) == 0 {
				t.Fatal("expected field errors")
			}
			if verr.Errors[0].Field != tc.wantField {
				t.Errorf("expected error on field %q, got %q", tc.wantField, verr.Errors[0].Field)
			}
		})
	}
}

func TestDishPatchValidate(t *testing.T) {
	name := "Soup"
	empty := ""
	price := 4.0
	badPrice := -2.5

	testCases := []struct {
		name      string
		patch     DishPatch
		wantField string
	}{
		{"empty patch", DishPatch{}, ""},
		{"name only", DishPatch{Name: &name}, ""},
		{"price only", DishPatch{Price: &price}, ""},
		{"both fields", DishPatch{Name: &name, Price: &price}, ""},
		{"empty name", DishPatch{Name: &empty}, "name"},
		{"negative price", DishPatch{Price: &badPrice}, "price"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.patch.Validate()

			if tc.wantField == "" {
				if err != nil {
					t.Fatalf("expected patch to be valid, got %v", err)
				}
				return
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if verr.Errors[0].Field != tc.wantField {
				t.Errorf("expected error on field %q, got %q", tc.wantField, verr.Errors[0].Field)
			}
		})
	}
}
