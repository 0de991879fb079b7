package services

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"mealplan/internal/models"
)

// IngredientParser parses free-text ingredient lines into structured
// quantity/unit/item triples
type IngredientParser struct {
	intPattern      *regexp.Regexp
	fractionPattern *regexp.Regexp
	decimalPattern  *regexp.Regexp
	parenStripper   *strings.Replacer
}

// fractionLiterals maps common fraction tokens to their conventional
// rounded values. Table entries win over computed division, so 1/3 parses
// as 0.333 rather than 0.3333333....
var fractionLiterals = map[string]float64{
	"1/2": 0.5,
	"1/3": 0.333,
	"2/3": 0.666,
	"1/4": 0.25,
	"3/4": 0.75,
	"1/8": 0.125,
}

// knownUnits is the set of measurement tokens recognized after the
// quantity. Matching is case-insensitive but exact-token: only the plural
// forms listed here are accepted.
var knownUnits = map[string]bool{
	// Metric mass
	"g": true, "kg": true, "mg": true,

	// Imperial mass
	"oz": true, "lb": true, "lbs": true,

	// Volume
	"ml": true, "l": true,
	"cup": true, "cups": true,
	"tsp": true, "tbsp": true,

	// Count-ish
	"clove": true, "cloves": true,
	"slice": true, "slices": true,
	"piece": true, "pieces": true,
	"can": true, "cans": true,
	"packet": true, "packets": true,
	"bunch": true, "bunches": true,
}

// NewIngredientParser creates a new parser instance
func NewIngredientParser() *IngredientParser {
	return &IngredientParser{
		// Match whole number: 2, 12
		intPattern: regexp.MustCompile(`^\d+$`),

		// Match ASCII fraction: 1/2, 3/4
		fractionPattern: regexp.MustCompile(`^(\d+)/(\d+)$`),

		// Match decimal: 1.5, 0.25
		decimalPattern: regexp.MustCompile(`^\d+\.\d+$`),

		parenStripper: strings.NewReplacer("(", "", ")", ""),
	}
}

// Parse turns one free-text ingredient line into its structured form.
// A nil quantity means no leading numeric token was recognized; the item
// text is always non-empty for a non-blank line.
func (p *IngredientParser) Parse(line string) models.ParsedIngredient {
	raw := strings.TrimSpace(line)
	tokens := strings.Fields(raw)

	var quantity *float64
	idx := 0

	// Step 1: leading quantity token (integer, fraction or decimal)
	if len(tokens) > 0 {
		first := p.parenStripper.Replace(tokens[0])
		switch {
		case p.intPattern.MatchString(first):
			v, _ := strconv.ParseFloat(first, 64)
			quantity = &v
			idx++
		case p.fractionPattern.MatchString(first):
			// Token is consumed even when the fraction is unusable
			// (zero denominator); the quantity just stays nil.
			quantity = p.parseFraction(first)
			idx++
		case p.decimalPattern.MatchString(first):
			v, _ := strconv.ParseFloat(first, 64)
			quantity = &v
			idx++
		}
	}

	// Step 2: optional unit token
	unit := ""
	if idx < len(tokens) {
		if candidate := strings.ToLower(tokens[idx]); knownUnits[candidate] {
			unit = candidate
			idx++
		}
	}

	// Step 3: everything left is the item text
	item := strings.ToLower(strings.Join(tokens[idx:], " "))
	if item == "" {
		// Degenerate line (e.g. a bare quantity): fall back to the whole
		// line so the item is never empty.
		item = strings.ToLower(raw)
	}

	return models.ParsedIngredient{
		Raw:      raw,
		Quantity: quantity,
		Unit:     unit,
		Item:     item,
	}
}

// parseFraction resolves a digits/digits token, preferring the literal
// table over computed division. Returns nil for zero or non-finite results.
func (p *IngredientParser) parseFraction(token string) *float64 {
	if v, ok := fractionLiterals[token]; ok {
		return &v
	}

	matches := p.fractionPattern.FindStringSubmatch(token)
	if len(matches) != 3 {
		return nil
	}

	num, _ := strconv.ParseFloat(matches[1], 64)
	denom, _ := strconv.ParseFloat(matches[2], 64)
	if denom == 0 {
		return nil
	}

	v := num / denom
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
