package seo

// Crumb is one entry of a breadcrumb trail.
type Crumb struct {
	Name string
	URL  string
}

// BreadcrumbSnippet renders a schema.org BreadcrumbList with 1-based positions.
func BreadcrumbSnippet(crumbs []Crumb) string {
	elements := make([]any, 0, len(crumbs))
	for i, crumb := range crumbs {
		elements = append(elements, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     crumb.Name,
			"item":     crumb.URL,
		})
	}
	return encode(map[string]any{
		"@context":        schemaContext,
		"@type":           "BreadcrumbList",
		"itemListElement": elements,
	})
}

// FAQ is one question/answer pair.
type FAQ struct {
	Question string
	Answer   string
}

// FAQSnippet renders a schema.org FAQPage.
func FAQSnippet(faqs []FAQ) string {
	entities := make([]any, 0, len(faqs))
	for _, faq := range faqs {
		entities = append(entities, map[string]any{
			"@type": "Question",
			"name":  faq.Question,
			"acceptedAnswer": map[string]any{
				"@type": "Answer",
				"text":  faq.Answer,
			},
		})
	}
	return encode(map[string]any{
		"@context":   schemaContext,
		"@type":      "FAQPage",
		"mainEntity": entities,
	})
}

// ListEntry is one entry of a ranked item list.
type ListEntry struct {
	Name string
	URL  string
}

// ItemListSnippet renders a schema.org ItemList, used for "best of" roundups.
func ItemListSnippet(name string, entries []ListEntry) string {
	elements := make([]any, 0, len(entries))
	for i, entry := range entries {
		elements = append(elements, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     entry.Name,
			"url":      entry.URL,
		})
	}
	return encode(map[string]any{
		"@context":        schemaContext,
		"@type":           "ItemList",
		"name":            name,
		"itemListElement": elements,
	})
}

// CollectionPageSnippet renders a schema.org CollectionPage for category hubs.
func CollectionPageSnippet(name, description, url string) string {
	return encode(map[string]any{
		"@context":    schemaContext,
		"@type":       "CollectionPage",
		"name":        name,
		"description": description,
		"url":         url,
		"isPartOf": map[string]any{
			"@type": "WebSite",
			"url":   BaseURL,
		},
	})
}
