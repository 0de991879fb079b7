package services

import (
	"bytes"
	"encoding/json"
	"strings"
)

// fieldLookup resolves canonical fields from a raw import record whose key
// spelling is unpredictable ("prep_time", "Prep Time", "prepTime", ...).
// Keys are normalized once at build time; the first occurrence of a
// normalized key in the document wins and later duplicates are ignored.
type fieldLookup map[string]any

// normalizeFieldKey lower-cases a key and strips spaces, underscores and
// hyphens so alias spellings collapse to one lookup key
func normalizeFieldKey(key string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-':
			return -1
		}
		return r
	}, strings.ToLower(key))
}

// newFieldLookup walks the top-level keys of a raw JSON object in document
// order. Order matters: when two spellings normalize to the same key, the
// first one seen supplies the value. A non-object record yields an empty
// lookup, which fails every required-field check downstream.
func newFieldLookup(raw json.RawMessage) fieldLookup {
	lookup := make(fieldLookup)

	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return lookup
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return lookup
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return lookup
		}
		key, ok := keyTok.(string)
		if !ok {
			return lookup
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return lookup
		}

		normalized := normalizeFieldKey(key)
		if _, seen := lookup[normalized]; !seen {
			lookup[normalized] = value
		}
	}

	return lookup
}

// pickString returns the first candidate key that resolves to a non-empty
// trimmed string, or "" if none does. Candidate order decides which alias
// wins when a record carries several distinct fields.
func (f fieldLookup) pickString(candidates ...string) string {
	for _, candidate := range candidates {
		value, ok := f[normalizeFieldKey(candidate)]
		if !ok {
			continue
		}
		if s, ok := value.(string); ok {
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				return trimmed
			}
		}
	}
	return ""
}

// value returns the raw value stored under a candidate key, or nil
func (f fieldLookup) value(key string) any {
	return f[normalizeFieldKey(key)]
}
