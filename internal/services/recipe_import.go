package services

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"mealplan/internal/models"
)

// ingredientSplitPattern breaks a single free-text ingredient blob on
// newlines or common list separators
var ingredientSplitPattern = regexp.MustCompile("[\r\n,;•]")

// bulletPrefixPattern strips a leading bullet or dash marker from a segment
var bulletPrefixPattern = regexp.MustCompile(`^[-–•*]+\s*`)

// ValidateImport decodes an import payload and returns the records that
// pass every required-field check. The payload may be {"recipes": [...]}
// or a bare array of records; anything else counts as zero recipes.
// Invalid records are dropped silently; the caller only learns how many
// survived, never which ones failed or why.
func ValidateImport(payload []byte) []models.ImportedRecipe {
	var validated []models.ImportedRecipe
	for _, raw := range extractRecords(payload) {
		recipe, ok := validateRecord(raw)
		if !ok {
			continue
		}
		validated = append(validated, recipe)
	}
	return validated
}

// extractRecords accepts {"recipes": [...]} or a bare array, returning the
// raw records in document order. Malformed payloads yield nil.
func extractRecords(payload []byte) []json.RawMessage {
	var envelope struct {
		Recipes []json.RawMessage `json:"recipes"`
	}
	if err := json.Unmarshal(payload, &envelope); err == nil && envelope.Recipes != nil {
		return envelope.Recipes
	}

	var bare []json.RawMessage
	if err := json.Unmarshal(payload, &bare); err == nil {
		return bare
	}

	return nil
}

// validateRecord assembles one ImportedRecipe from a raw record, or
// reports failure if any required field is missing or unusable. No partial
// records are ever produced.
func validateRecord(raw json.RawMessage) (models.ImportedRecipe, bool) {
	lookup := newFieldLookup(raw)

	name := lookup.pickString("name")
	prepTime := lookup.pickString("prep_time")
	instructions := lookup.pickString("instructions", "instruction", "directions", "method")
	if name == "" || prepTime == "" || instructions == "" {
		return models.ImportedRecipe{}, false
	}

	meal, ok := ClassifyMeal(lookup.pickString("meal", "meal_type", "course", "category"))
	if !ok {
		return models.ImportedRecipe{}, false
	}

	ingredients := NormalizeIngredients(lookup.value("ingredients"))
	if len(ingredients) == 0 {
		return models.ImportedRecipe{}, false
	}

	servings := NormalizeServings(lookup.value("servings"))
	if servings == nil {
		return models.ImportedRecipe{}, false
	}

	return models.ImportedRecipe{
		Name:         name,
		PrepTime:     prepTime,
		Meal:         meal,
		Servings:     *servings,
		Ingredients:  ingredients,
		Instructions: instructions,
	}, true
}

// NormalizeServings coerces a raw servings value of unknown type into a
// positive number rounded to 2 decimals. Unusable values yield nil.
func NormalizeServings(value any) *float64 {
	switch v := value.(type) {
	case float64:
		return positiveServings(v)
	case int:
		return positiveServings(float64(v))
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return nil
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil
		}
		return positiveServings(parsed)
	}
	return nil
}

func positiveServings(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return nil
	}
	rounded := round2(v)
	return &rounded
}

// NormalizeIngredients coerces a raw ingredients value of unknown shape
// into an ordered list of non-empty lines. Arrays keep their string
// elements; a single string is split on newlines or list separators with
// bullet markers stripped. A non-empty string that yields no usable
// segments survives as a one-element list rather than being discarded.
func NormalizeIngredients(value any) []string {
	switch v := value.(type) {
	case []any:
		var out []string
		for _, elem := range v {
			s, ok := elem.(string)
			if !ok {
				continue
			}
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out

	case []string:
		var out []string
		for _, s := range v {
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out

	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return nil
		}
		var out []string
		for _, segment := range ingredientSplitPattern.Split(trimmed, -1) {
			segment = bulletPrefixPattern.ReplaceAllString(strings.TrimSpace(segment), "")
			segment = strings.TrimSpace(segment)
			if segment != "" {
				out = append(out, segment)
			}
		}
		if len(out) == 0 {
			return []string{trimmed}
		}
		return out
	}

	return nil
}

// BuildExportPayload serializes a recipe collection into the export
// document shape. The key spelling matches what the import validator
// accepts, so an exported file re-imports cleanly (ids are not exported).
func BuildExportPayload(recipes []models.Recipe) models.ExportPayload {
	payload := models.ExportPayload{Recipes: []models.ExportedRecipe{}}
	for _, r := range recipes {
		payload.Recipes = append(payload.Recipes, models.ExportedRecipe{
			Name:         r.Name,
			PrepTime:     r.PrepTime,
			Meal:         r.Meal,
			Servings:     r.Servings,
			Ingredients:  r.Ingredients,
			Instructions: r.Instructions,
		})
	}
	return payload
}
