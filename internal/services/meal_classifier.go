package services

import (
	"strings"

	"mealplan/internal/models"
)

// ClassifyMeal maps free-text meal/category wording to one of the four
// meal types. Matching is keyword based with a fixed precedence evaluated
// top to bottom; the ordering is a deliberate tie-break for messy input:
// text containing both "lunch" and "dinner" resolves to dinner, and
// dessert wording resolves to snack before the lunch/dinner rules run.
// Returns false when nothing matches.
func ClassifyMeal(text string) (models.MealType, bool) {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return "", false
	}

	switch {
	case strings.Contains(s, "breakfast"):
		return models.MealBreakfast, true
	case strings.Contains(s, "snack"):
		return models.MealSnack, true
	case strings.Contains(s, "dessert"), strings.Contains(s, "sweet"), strings.Contains(s, "treat"):
		return models.MealSnack, true
	case strings.Contains(s, "lunch") && !strings.Contains(s, "dinner"):
		return models.MealLunch, true
	case strings.Contains(s, "dinner"), strings.Contains(s, "supper"):
		return models.MealDinner, true
	}

	return "", false
}
