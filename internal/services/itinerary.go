package services

import (
	"fmt"
	"strings"
	"time"

	"mealplan/internal/models"
)

// BuildItinerary renders a printable plain-text itinerary for the
// inclusive date range: one section per day that has at least one
// resolvable assigned meal, slots in breakfast/lunch/dinner/snack order.
// Returns "" when nothing resolves, matching the emptiness gate of the
// shopping list, so both outputs appear and disappear together.
func BuildItinerary(plan models.PlanSnapshot, recipes []models.Recipe, start, end string) string {
	startDate, err := time.Parse(dateLayout, start)
	if err != nil {
		return ""
	}
	endDate, err := time.Parse(dateLayout, end)
	if err != nil {
		return ""
	}

	index := make(map[string]models.Recipe, len(recipes))
	for _, r := range recipes {
		index[r.ID] = r
	}

	var b strings.Builder

	for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
		day, ok := plan[d.Format(dateLayout)]
		if !ok {
			continue
		}

		var lines []string
		for _, meal := range models.MealTypes {
			recipeID := day[meal]
			if recipeID == "" {
				continue
			}
			recipe, ok := index[recipeID]
			if !ok {
				continue
			}

			line := fmt.Sprintf("  %s: %s", titleCase(string(meal)), recipe.Name)
			if recipe.PrepTime != "" {
				line += fmt.Sprintf(" (%s)", recipe.PrepTime)
			}
			lines = append(lines, line)
		}

		if len(lines) == 0 {
			continue
		}

		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(d.Format("Monday, January 2, 2006"))
		b.WriteString("\n")
		b.WriteString(strings.Join(lines, "\n"))
		b.WriteString("\n")
	}

	return b.String()
}
