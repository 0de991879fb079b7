package services

import (
	"strings"

	"mealplan/internal/models"
)

// MergeRecipes folds an incoming batch into an existing collection, keyed
// by case-insensitive name. A name match replaces the existing record's
// content fields in place. The existing identifier, owner and creation
// time are kept, so references from the meal plan stay valid. Records with
// no match are appended in input order; existing records keep their
// relative order. The input slices are not mutated.
func MergeRecipes(existing []models.Recipe, incoming []models.Recipe) []models.Recipe {
	merged := make([]models.Recipe, len(existing))
	copy(merged, existing)

	index := make(map[string]int, len(merged))
	for i, r := range merged {
		index[strings.ToLower(r.Name)] = i
	}

	for _, in := range incoming {
		key := strings.ToLower(in.Name)
		if i, ok := index[key]; ok {
			current := merged[i]
			in.ID = current.ID
			in.UserID = current.UserID
			in.CreatedAt = current.CreatedAt
			merged[i] = in
			continue
		}
		index[key] = len(merged)
		merged = append(merged, in)
	}

	return merged
}
