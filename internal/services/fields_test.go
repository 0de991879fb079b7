package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeFieldKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key  string
		want string
	}{
		{"prep_time", "preptime"},
		{"Prep Time", "preptime"},
		{"prepTime", "preptime"},
		{"PREP-TIME", "preptime"},
		{"meal_type", "mealtype"},
		{"  spaced  out  ", "spacedout"},
		{"plain", "plain"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, normalizeFieldKey(tc.key), tc.key)
	}
}

func TestNewFieldLookupFirstOccurrenceWins(t *testing.T) {
	t.Parallel()

	// "Prep_Time" and "prep time" normalize to the same key; the one
	// earlier in the document supplies the value.
	raw := json.RawMessage(`{"Prep_Time": "10 min", "prep time": "20 min", "name": "Toast"}`)
	lookup := newFieldLookup(raw)

	assert.Equal(t, "10 min", lookup.pickString("prep_time"))
	assert.Equal(t, "Toast", lookup.pickString("name"))
}

func TestNewFieldLookupNonObject(t *testing.T) {
	t.Parallel()

	assert.Empty(t, newFieldLookup(json.RawMessage(`[1,2,3]`)))
	assert.Empty(t, newFieldLookup(json.RawMessage(`"just a string"`)))
	assert.Empty(t, newFieldLookup(json.RawMessage(`{broken`)))
}

func TestPickString(t *testing.T) {
	t.Parallel()

	lookup := newFieldLookup(json.RawMessage(`{
		"directions": "bake it",
		"instructions": "   ",
		"servings": 4
	}`))

	// Candidate order wins, but empty strings are skipped
	assert.Equal(t, "bake it", lookup.pickString("instructions", "instruction", "directions", "method"))

	// Non-string values never resolve
	assert.Equal(t, "", lookup.pickString("servings"))

	// Missing keys resolve to empty
	assert.Equal(t, "", lookup.pickString("missing"))
}

func TestFieldLookupValue(t *testing.T) {
	t.Parallel()

	lookup := newFieldLookup(json.RawMessage(`{"Servings": "4", "Ingredient List": ["a", "b"]}`))

	assert.Equal(t, "4", lookup.value("servings"))
	assert.Equal(t, []any{"a", "b"}, lookup.value("ingredient_list"))
	assert.Nil(t, lookup.value("absent"))
}
