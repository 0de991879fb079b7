package models

// DayPlan maps a meal slot to the assigned recipe id. A missing or empty
// entry means the slot is unassigned.
type DayPlan map[MealType]string

// PlanSnapshot is an immutable view of the meal plan keyed by date
// (YYYY-MM-DD). Handed to the aggregator and itinerary builder as plain
// in-memory data.
type PlanSnapshot map[string]DayPlan

// AssignSlotRequest sets or clears a recipe on a (date, meal) slot.
// A null recipe_id clears the slot.
type AssignSlotRequest struct {
	RecipeID *string `json:"recipe_id"`
}
