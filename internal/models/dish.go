package models

// Dish represents a single menu entry managed by the API.
// ID is optional on input (zero means "assign one") and always set on output.
type Dish struct {
	ID    int64   `json:"id" validate:"omitempty,gte=1"`
	Name  string  `json:"name" validate:"required"`
	Price float64 `json:"price" validate:"required,gt=0"`
}

// DishPatch carries a partial update. Only non-nil fields are applied.
type DishPatch struct {
	Name  *string  `json:"name" validate:"omitempty,min=1"`
	Price *float64 `json:"price" validate:"omitempty,gt=0"`
}

// Validate checks the dish against the record model rules.
// Returns a *ValidationError with field-level detail on failure.
func (d Dish) Validate() error {
	if err := validate.Struct(d); err != nil {
		return newValidationError(err)
	}
	return nil
}

// Validate checks the patch fields that are present.
func (p DishPatch) Validate() error {
	if err := validate.Struct(p); err != nil {
		return newValidationError(err)
	}
	return nil
}
