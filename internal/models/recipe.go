package models

import (
	"time"
)

// MealType is one of the four fixed meal categories
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// MealTypes lists the meal slots in display order
var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

// IsValid reports whether the meal type is one of the four known categories
func (m MealType) IsValid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// Recipe is a persisted recipe owned by a user
type Recipe struct {
	ID           string    `json:"id"`
	UserID       int       `json:"user_id"`
	Name         string    `json:"name"`
	PrepTime     string    `json:"prep_time"`
	Meal         MealType  `json:"meal"`
	Servings     float64   `json:"servings"`
	Ingredients  []string  `json:"ingredients"`
	Instructions string    `json:"instructions"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ImportedRecipe is a validated recipe assembled from a raw import record.
// It has no identifier yet; one is assigned when it is persisted.
type ImportedRecipe struct {
	Name         string   `json:"name"`
	PrepTime     string   `json:"prep_time"`
	Meal         MealType `json:"meal"`
	Servings     float64  `json:"servings"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
}

// CreateRecipeRequest is the payload for creating or updating a recipe
type CreateRecipeRequest struct {
	Name         string   `json:"name"`
	PrepTime     string   `json:"prep_time"`
	Meal         MealType `json:"meal"`
	Servings     float64  `json:"servings"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
}

// ExportedRecipe is the wire shape of a recipe in an export payload.
// The key spelling matches what the import validator accepts, so an
// exported file re-imports cleanly.
type ExportedRecipe struct {
	Name         string   `json:"name"`
	PrepTime     string   `json:"prep_time"`
	Meal         MealType `json:"meal"`
	Servings     float64  `json:"servings"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
}

// ExportPayload is the top-level export document
type ExportPayload struct {
	Recipes []ExportedRecipe `json:"recipes"`
}

// ImportResult reports how many records in an import payload survived
// validation and merging
type ImportResult struct {
	Imported int `json:"imported"`
	Total    int `json:"total"`
}
