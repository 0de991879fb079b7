package database

import (
	"context"
	"time"

	"mealplan/internal/models"
)

// GetPlanRange returns the meal plan slots for an inclusive date range as
// an in-memory snapshot keyed by YYYY-MM-DD. The snapshot is what the
// shopping list and itinerary builders consume; they never touch the
// database themselves.
func (db *DB) GetPlanRange(ctx context.Context, userID int, start, end string) (models.PlanSnapshot, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT plan_date, meal_type, recipe_id
		FROM meal_plans
		WHERE user_id = $1 AND plan_date BETWEEN $2 AND $3
		ORDER BY plan_date ASC
	`, userID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snapshot := make(models.PlanSnapshot)
	for rows.Next() {
		var (
			date     time.Time
			mealType string
			recipeID string
		)
		if err := rows.Scan(&date, &mealType, &recipeID); err != nil {
			return nil, err
		}

		key := date.Format("2006-01-02")
		if snapshot[key] == nil {
			snapshot[key] = make(models.DayPlan)
		}
		snapshot[key][models.MealType(mealType)] = recipeID
	}

	return snapshot, rows.Err()
}

// AssignSlot sets the recipe for a (date, meal) slot, replacing any
// previous assignment
func (db *DB) AssignSlot(ctx context.Context, userID int, date string, meal models.MealType, recipeID string) error {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO meal_plans (user_id, plan_date, meal_type, recipe_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (user_id, plan_date, meal_type) DO UPDATE
		SET recipe_id = EXCLUDED.recipe_id, updated_at = NOW()
	`, userID, date, meal, recipeID)
	return err
}

// ClearSlot removes the assignment for a (date, meal) slot. Clearing an
// empty slot is not an error.
func (db *DB) ClearSlot(ctx context.Context, userID int, date string, meal models.MealType) error {
	_, err := db.Pool.Exec(ctx, `
		DELETE FROM meal_plans
		WHERE user_id = $1 AND plan_date = $2 AND meal_type = $3
	`, userID, date, meal)
	return err
}
