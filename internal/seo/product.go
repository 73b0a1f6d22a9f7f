package seo

// Product is the input for ProductSnippet.
type Product struct {
	Name          string
	Image         string
	Description   string
	Price         string
	PriceCurrency string
	URL           string  // optional
	RatingValue   float64 // optional, paired with ReviewCount
	ReviewCount   int     // optional
}

// ProductSnippet renders a schema.org Product with an Offer.
func ProductSnippet(in Product) string {
	m := map[string]any{
		"@context":    schemaContext,
		"@type":       "Product",
		"name":        in.Name,
		"image":       in.Image,
		"description": in.Description,
		"offers": map[string]any{
			"@type":         "Offer",
			"price":         in.Price,
			"priceCurrency": in.PriceCurrency,
			"availability":  "https://schema.org/InStock",
		},
	}
	if in.URL != "" {
		m["url"] = in.URL
	}
	if in.ReviewCount > 0 {
		m["aggregateRating"] = map[string]any{
			"@type":       "AggregateRating",
			"ratingValue": in.RatingValue,
			"reviewCount": in.ReviewCount,
		}
	}
	return encode(m)
}

// SoftwareApp is the input for SoftwareAppSnippet, used on tool detail pages.
type SoftwareApp struct {
	Name                string
	Description         string
	ApplicationCategory string
	Price               string
	PriceCurrency       string
	URL                 string  // optional
	RatingValue         float64 // optional, paired with ReviewCount
	ReviewCount         int     // optional
}

// SoftwareAppSnippet renders a schema.org SoftwareApplication.
func SoftwareAppSnippet(in SoftwareApp) string {
	m := map[string]any{
		"@context":            schemaContext,
		"@type":               "SoftwareApplication",
		"name":                in.Name,
		"description":         in.Description,
		"applicationCategory": in.ApplicationCategory,
		"operatingSystem":     "Web",
		"offers": map[string]any{
			"@type":         "Offer",
			"price":         in.Price,
			"priceCurrency": in.PriceCurrency,
		},
	}
	if in.URL != "" {
		m["url"] = in.URL
	}
	if in.ReviewCount > 0 {
		m["aggregateRating"] = map[string]any{
			"@type":       "AggregateRating",
			"ratingValue": in.RatingValue,
			"reviewCount": in.ReviewCount,
		}
	}
	return encode(m)
}

// HowToStep is one step of a how-to guide.
type HowToStep struct {
	Name string
	Text string
}

// HowTo is the input for HowToSnippet.
type HowTo struct {
	Name        string
	Description string
	TotalTime   string // optional, ISO 8601 duration
	Steps       []HowToStep
}

// HowToSnippet renders a schema.org HowTo.
func HowToSnippet(in HowTo) string {
	steps := make([]any, 0, len(in.Steps))
	for i, step := range in.Steps {
		steps = append(steps, map[string]any{
			"@type":    "HowToStep",
			"position": i + 1,
			"name":     step.Name,
			"text":     step.Text,
		})
	}
	m := map[string]any{
		"@context":    schemaContext,
		"@type":       "HowTo",
		"name":        in.Name,
		"description": in.Description,
		"step":        steps,
	}
	if in.TotalTime != "" {
		m["totalTime"] = in.TotalTime
	}
	return encode(m)
}

// Video is the input for VideoSnippet.
type Video struct {
	Name         string
	Description  string
	ThumbnailURL string
	UploadDate   string
	Duration     string // optional, ISO 8601 duration
	ContentURL   string // optional
	EmbedURL     string // optional
}

// VideoSnippet renders a schema.org VideoObject.
func VideoSnippet(in Video) string {
	m := map[string]any{
		"@context":     schemaContext,
		"@type":        "VideoObject",
		"name":         in.Name,
		"description":  in.Description,
		"thumbnailUrl": in.ThumbnailURL,
		"uploadDate":   in.UploadDate,
	}
	if in.Duration != "" {
		m["duration"] = in.Duration
	}
	if in.ContentURL != "" {
		m["contentUrl"] = in.ContentURL
	}
	if in.EmbedURL != "" {
		m["embedUrl"] = in.EmbedURL
	}
	return encode(m)
}
