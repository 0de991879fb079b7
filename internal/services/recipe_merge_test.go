package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mealplan/internal/models"
)

func TestMergeRecipes(t *testing.T) {
	t.Parallel()

	existing := []models.Recipe{
		{ID: "a", UserID: 7, Name: "Pancakes", PrepTime: "15 min", Servings: 4},
		{ID: "b", UserID: 7, Name: "Beef Stew", PrepTime: "1 hour", Servings: 6},
	}

	t.Run("name match overwrites fields but keeps identity", func(t *testing.T) {
		t.Parallel()
		incoming := []models.Recipe{
			{ID: "new-id", Name: "PANCAKES", PrepTime: "10 min", Servings: 2},
		}

		merged := MergeRecipes(existing, incoming)
		require.Len(t, merged, 2)

		assert.Equal(t, "a", merged[0].ID)
		assert.Equal(t, 7, merged[0].UserID)
		assert.Equal(t, "PANCAKES", merged[0].Name)
		assert.Equal(t, "10 min", merged[0].PrepTime)
		assert.Equal(t, 2.0, merged[0].Servings)

		// Untouched record is unchanged
		assert.Equal(t, existing[1], merged[1])
	})

	t.Run("new names append in input order", func(t *testing.T) {
		t.Parallel()
		incoming := []models.Recipe{
			{ID: "c", Name: "Salad"},
			{ID: "d", Name: "Soup"},
		}

		merged := MergeRecipes(existing, incoming)
		require.Len(t, merged, 4)
		assert.Equal(t, "Pancakes", merged[0].Name)
		assert.Equal(t, "Beef Stew", merged[1].Name)
		assert.Equal(t, "Salad", merged[2].Name)
		assert.Equal(t, "Soup", merged[3].Name)
	})

	t.Run("idempotent when applied twice", func(t *testing.T) {
		t.Parallel()
		incoming := []models.Recipe{
			{ID: "x", Name: "pancakes", PrepTime: "12 min"},
			{ID: "y", Name: "Salad", PrepTime: "5 min"},
		}

		once := MergeRecipes(existing, incoming)
		twice := MergeRecipes(once, incoming)
		assert.Equal(t, once, twice)
	})

	t.Run("duplicate within incoming batch collapses", func(t *testing.T) {
		t.Parallel()
		incoming := []models.Recipe{
			{ID: "c", Name: "Salad", PrepTime: "5 min"},
			{ID: "d", Name: "salad", PrepTime: "8 min"},
		}

		merged := MergeRecipes(existing, incoming)
		require.Len(t, merged, 3)
		// Second occurrence overwrote the first, keeping its slot and id
		assert.Equal(t, "c", merged[2].ID)
		assert.Equal(t, "8 min", merged[2].PrepTime)
	})

	t.Run("inputs are not mutated", func(t *testing.T) {
		t.Parallel()
		incoming := []models.Recipe{{ID: "z", Name: "Pancakes", PrepTime: "1 min"}}

		MergeRecipes(existing, incoming)
		assert.Equal(t, "15 min", existing[0].PrepTime)
		assert.Equal(t, "z", incoming[0].ID)
	})

	t.Run("empty inputs", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, existing, MergeRecipes(existing, nil))
		assert.Len(t, MergeRecipes(nil, nil), 0)
	})
}
