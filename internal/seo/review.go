package seo

// ReviewedItem names the thing a review or rating is about.
type ReviewedItem struct {
	Name string
	Type string // e.g. "SoftwareApplication", "Product"
}

// Review is the input for ReviewSnippet.
type Review struct {
	ItemReviewed  ReviewedItem
	ReviewBody    string
	Author        string
	Rating        float64
	BestRating    float64 // optional
	WorstRating   float64 // optional
	DatePublished string  // optional, ISO 8601
	Verified      bool    // optional
}

// ReviewSnippet renders a schema.org Review.
func ReviewSnippet(in Review) string {
	rating := map[string]any{
		"@type":       "Rating",
		"ratingValue": in.Rating,
	}
	if in.BestRating != 0 {
		rating["bestRating"] = in.BestRating
	}
	if in.WorstRating != 0 {
		rating["worstRating"] = in.WorstRating
	}

	m := map[string]any{
		"@context": schemaContext,
		"@type":    "Review",
		"itemReviewed": map[string]any{
			"@type": in.ItemReviewed.Type,
			"name":  in.ItemReviewed.Name,
		},
		"reviewBody": in.ReviewBody,
		"author": map[string]any{
			"@type": "Person",
			"name":  in.Author,
		},
		"reviewRating": rating,
	}
	if in.DatePublished != "" {
		m["datePublished"] = in.DatePublished
	}
	if in.Verified {
		m["positiveNotes"] = map[string]any{
			"@type":           "ItemList",
			"itemListElement": []any{"Verified purchase"},
		}
	}
	return encode(m)
}

// AggregateRating is the input for AggregateRatingSnippet.
type AggregateRating struct {
	ItemReviewed ReviewedItem
	RatingValue  float64
	ReviewCount  int
	BestRating   float64 // optional
	WorstRating  float64 // optional
}

// AggregateRatingSnippet renders a schema.org AggregateRating.
func AggregateRatingSnippet(in AggregateRating) string {
	m := map[string]any{
		"@context": schemaContext,
		"@type":    "AggregateRating",
		"itemReviewed": map[string]any{
			"@type": in.ItemReviewed.Type,
			"name":  in.ItemReviewed.Name,
		},
		"ratingValue": in.RatingValue,
		"reviewCount": in.ReviewCount,
	}
	if in.BestRating != 0 {
		m["bestRating"] = in.BestRating
	}
	if in.WorstRating != 0 {
		m["worstRating"] = in.WorstRating
	}
	return encode(m)
}
