package models

// ParsedIngredient is the structured form of one free-text ingredient line.
// Quantity is nil when no leading numeric token was recognized; callers
// treat nil as "1, unitless" when aggregating, never as zero. Constructed
// on demand and never persisted.
type ParsedIngredient struct {
	Raw      string   `json:"raw"`
	Quantity *float64 `json:"quantity"`
	Unit     string   `json:"unit,omitempty"`
	Item     string   `json:"item"`
}

// ShoppingListItem is one merged row of the aggregated shopping list
type ShoppingListItem struct {
	Ingredient string  `json:"ingredient"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit,omitempty"`
}
