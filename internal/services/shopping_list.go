package services

import (
	"math"
	"sort"
	"strings"
	"time"
	"unicode"

	"mealplan/internal/models"
)

const dateLayout = "2006-01-02"

// BuildShoppingList merges every ingredient of every resolvable planned
// meal in the inclusive date range into one deduplicated list. Two
// occurrences merge only when both their lower-cased item text and their
// unit agree (a unitless entry counts as "each"). A parsed quantity of nil
// contributes 1. Slots whose recipe id no longer exists in the collection
// are skipped, so stale references left behind by deletion never error.
//
// Returns nil, not an empty slice, when the range contains no
// resolvable meals, including when end precedes start; callers gate the
// whole shopping/itinerary output on that nil.
func BuildShoppingList(plan models.PlanSnapshot, recipes []models.Recipe, start, end string) []models.ShoppingListItem {
	startDate, err := time.Parse(dateLayout, start)
	if err != nil {
		return nil
	}
	endDate, err := time.Parse(dateLayout, end)
	if err != nil {
		return nil
	}

	index := make(map[string]models.Recipe, len(recipes))
	for _, r := range recipes {
		index[r.ID] = r
	}

	parser := NewIngredientParser()
	totals := make(map[string]*models.ShoppingListItem)

	for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
		day, ok := plan[d.Format(dateLayout)]
		if !ok {
			continue
		}

		for _, meal := range models.MealTypes {
			recipeID := day[meal]
			if recipeID == "" {
				continue
			}

			recipe, ok := index[recipeID]
			if !ok {
				// Stale slot: the recipe was deleted after assignment
				continue
			}

			for _, line := range recipe.Ingredients {
				parsed := parser.Parse(line)

				qty := 1.0
				if parsed.Quantity != nil {
					qty = *parsed.Quantity
				}

				key := shoppingKey(parsed.Item, parsed.Unit)
				entry, ok := totals[key]
				if !ok {
					totals[key] = &models.ShoppingListItem{
						Ingredient: titleCase(parsed.Item),
						Quantity:   round2(qty),
						Unit:       parsed.Unit,
					}
					continue
				}

				// Rounding after every addition, not once at the end.
				// Long chains can drift from single-final rounding; the
				// accumulated value is the contract.
				entry.Quantity = round2(entry.Quantity + qty)
			}
		}
	}

	if len(totals) == 0 {
		return nil
	}

	items := make([]models.ShoppingListItem, 0, len(totals))
	for _, entry := range totals {
		items = append(items, *entry)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Ingredient < items[j].Ingredient
	})

	return items
}

// shoppingKey is the identity key deciding whether two ingredient
// occurrences merge into one row
func shoppingKey(item, unit string) string {
	if unit == "" {
		unit = "each"
	}
	return item + "__" + unit
}

// titleCase upper-cases the first letter of each space-separated word
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// round2 rounds to 2 decimal places
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
