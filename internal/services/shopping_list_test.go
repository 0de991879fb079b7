package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mealplan/internal/models"
)

func recipeWith(id, name string, ingredients ...string) models.Recipe {
	return models.Recipe{
		ID:          id,
		Name:        name,
		Meal:        models.MealDinner,
		Servings:    2,
		Ingredients: ingredients,
	}
}

func TestBuildShoppingListMergesByItemAndUnit(t *testing.T) {
	t.Parallel()

	recipes := []models.Recipe{
		recipeWith("r1", "Rice Bowl", "1 cup rice"),
		recipeWith("r2", "Fried Rice", "2 cup rice"),
	}
	plan := models.PlanSnapshot{
		"2026-03-02": {models.MealLunch: "r1", models.MealDinner: "r2"},
	}

	got := BuildShoppingList(plan, recipes, "2026-03-02", "2026-03-02")
	require.Len(t, got, 1)
	assert.Equal(t, models.ShoppingListItem{Ingredient: "Rice", Quantity: 3, Unit: "cup"}, got[0])
}

func TestBuildShoppingListUnitlessMergeAcrossDays(t *testing.T) {
	t.Parallel()

	recipes := []models.Recipe{
		recipeWith("r1", "Omelette", "2 eggs"),
		recipeWith("r2", "Scramble", "3 eggs"),
	}
	plan := models.PlanSnapshot{
		"2026-03-02": {models.MealBreakfast: "r1"},
		"2026-03-03": {models.MealBreakfast: "r2"},
	}

	got := BuildShoppingList(plan, recipes, "2026-03-01", "2026-03-07")
	require.Len(t, got, 1)
	assert.Equal(t, "Eggs", got[0].Ingredient)
	assert.Equal(t, 5.0, got[0].Quantity)
	assert.Empty(t, got[0].Unit)
}

func TestBuildShoppingListDistinctUnitsStayDistinct(t *testing.T) {
	t.Parallel()

	recipes := []models.Recipe{
		recipeWith("r1", "A", "1 cup milk", "200 ml milk", "milk"),
	}
	plan := models.PlanSnapshot{
		"2026-03-02": {models.MealBreakfast: "r1"},
	}

	// Same item text under cup, ml and no unit: three separate rows
	got := BuildShoppingList(plan, recipes, "2026-03-02", "2026-03-02")
	require.Len(t, got, 3)
	for _, item := range got {
		assert.Equal(t, "Milk", item.Ingredient)
	}
}

func TestBuildShoppingListNilQuantityCountsAsOne(t *testing.T) {
	t.Parallel()

	recipes := []models.Recipe{
		recipeWith("r1", "A", "lemon"),
		recipeWith("r2", "B", "2 lemon"),
	}
	plan := models.PlanSnapshot{
		"2026-03-02": {models.MealLunch: "r1", models.MealDinner: "r2"},
	}

	got := BuildShoppingList(plan, recipes, "2026-03-02", "2026-03-02")
	require.Len(t, got, 1)
	assert.Equal(t, 3.0, got[0].Quantity)
}

func TestBuildShoppingListPerStepRounding(t *testing.T) {
	t.Parallel()

	// 1/6 is not a table fraction, so it parses as 0.1666....
	// Rounding after each accumulation step gives 0.17 -> 0.34 -> 0.51,
	// where single final rounding of the raw sum would give 0.50. The
	// per-step value is the contract.
	recipes := []models.Recipe{
		recipeWith("r1", "A", "1/6 tsp nutmeg"),
		recipeWith("r2", "B", "1/6 tsp nutmeg"),
		recipeWith("r3", "C", "1/6 tsp nutmeg"),
	}
	plan := models.PlanSnapshot{
		"2026-03-02": {
			models.MealBreakfast: "r1",
			models.MealLunch:     "r2",
			models.MealDinner:    "r3",
		},
	}

	got := BuildShoppingList(plan, recipes, "2026-03-02", "2026-03-02")
	require.Len(t, got, 1)
	assert.Equal(t, 0.51, got[0].Quantity)
}

func TestBuildShoppingListSkipsStaleReferences(t *testing.T) {
	t.Parallel()

	recipes := []models.Recipe{
		recipeWith("r1", "Kept", "1 cup rice"),
	}
	plan := models.PlanSnapshot{
		"2026-03-02": {
			models.MealLunch:  "r1",
			models.MealDinner: "deleted-recipe-id",
		},
	}

	got := BuildShoppingList(plan, recipes, "2026-03-02", "2026-03-02")
	require.Len(t, got, 1)
	assert.Equal(t, "Rice", got[0].Ingredient)
}

func TestBuildShoppingListSortedByTitleCasedName(t *testing.T) {
	t.Parallel()

	recipes := []models.Recipe{
		recipeWith("r1", "A", "1 cup zucchini", "2 eggs", "1 bunch basil"),
	}
	plan := models.PlanSnapshot{
		"2026-03-02": {models.MealDinner: "r1"},
	}

	got := BuildShoppingList(plan, recipes, "2026-03-02", "2026-03-02")
	require.Len(t, got, 3)
	assert.Equal(t, "Basil", got[0].Ingredient)
	assert.Equal(t, "Eggs", got[1].Ingredient)
	assert.Equal(t, "Zucchini", got[2].Ingredient)
}

func TestBuildShoppingListEmptyResults(t *testing.T) {
	t.Parallel()

	recipes := []models.Recipe{recipeWith("r1", "A", "1 cup rice")}
	plan := models.PlanSnapshot{
		"2026-03-02": {models.MealDinner: "r1"},
	}

	t.Run("no assignments in range", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, BuildShoppingList(plan, recipes, "2026-04-01", "2026-04-07"))
	})

	t.Run("end before start", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, BuildShoppingList(plan, recipes, "2026-03-05", "2026-03-01"))
	})

	t.Run("only stale references", func(t *testing.T) {
		t.Parallel()
		stale := models.PlanSnapshot{"2026-03-02": {models.MealDinner: "gone"}}
		assert.Nil(t, BuildShoppingList(stale, recipes, "2026-03-01", "2026-03-07"))
	})

	t.Run("unparseable dates", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, BuildShoppingList(plan, recipes, "yesterday", "2026-03-02"))
	})
}

func TestTitleCase(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Brown Rice", titleCase("brown rice"))
	assert.Equal(t, "Eggs", titleCase("eggs"))
	assert.Equal(t, "", titleCase(""))
}

func TestRound2(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.33, round2(1.0/3.0))
	assert.Equal(t, 4.0, round2(4.005)) // 4.005 sits just below the half in binary
	assert.Equal(t, 2.68, round2(2.675000001))
}
