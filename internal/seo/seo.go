// Package seo builds JSON-LD structured-data strings for embedding in page
// markup. Every generator is a pure function from a typed record to a JSON
// string; optional fields appear in the output only when set. Inputs are
// developer-authored, so values are serialized as-is without validation.
package seo

import "encoding/json"

// BaseURL is the canonical site origin used in self-referencing schema URLs.
const BaseURL = "https://toolhaven.io"

const schemaContext = "https://schema.org"

// encode marshals a schema map. The maps built here contain only strings,
// numbers, bools, nested maps and slices, so marshaling cannot fail.
func encode(m map[string]any) string {
	b, _ := json.Marshal(m)
	return string(b)
}
