package seo

// Article is the input for ArticleSnippet. All fields are required.
type Article struct {
	Headline      string
	Description   string
	Image         string
	Author        string
	DatePublished string
	DateModified  string
	PublisherName string
	PublisherLogo string
}

// ArticleSnippet renders a schema.org Article.
func ArticleSnippet(in Article) string {
	return encode(map[string]any{
		"@context":    schemaContext,
		"@type":       "Article",
		"headline":    in.Headline,
		"description": in.Description,
		"image":       in.Image,
		"author": map[string]any{
			"@type": "Person",
			"name":  in.Author,
		},
		"datePublished": in.DatePublished,
		"dateModified":  in.DateModified,
		"publisher": map[string]any{
			"@type": "Organization",
			"name":  in.PublisherName,
			"logo": map[string]any{
				"@type": "ImageObject",
				"url":   in.PublisherLogo,
			},
		},
	})
}

// Author is the input for AuthorSnippet. Name, JobTitle and Bio are required;
// the rest surface expertise signals when available.
type Author struct {
	Name            string
	JobTitle        string
	Bio             string
	Image           string   // optional
	Certifications  []string // optional
	SocialLinks     []string // optional
	YearsExperience int      // optional
}

// AuthorSnippet renders a schema.org Person with E-E-A-T attributes.
func AuthorSnippet(in Author) string {
	m := map[string]any{
		"@context":    schemaContext,
		"@type":       "Person",
		"name":        in.Name,
		"jobTitle":    in.JobTitle,
		"description": in.Bio,
	}
	if in.Image != "" {
		m["image"] = in.Image
	}
	if len(in.Certifications) > 0 {
		m["hasCredential"] = in.Certifications
	}
	if len(in.SocialLinks) > 0 {
		m["sameAs"] = in.SocialLinks
	}
	if in.YearsExperience > 0 {
		m["knowsAbout"] = map[string]any{
			"@type": "Thing",
			"name":  "AI tools",
		}
		m["yearsOfExperience"] = in.YearsExperience
	}
	return encode(m)
}

// OrganizationSnippet renders the site publisher as a schema.org Organization.
func OrganizationSnippet(name, logo string, sameAs []string) string {
	m := map[string]any{
		"@context": schemaContext,
		"@type":    "Organization",
		"name":     name,
		"url":      BaseURL,
		"logo":     logo,
	}
	if len(sameAs) > 0 {
		m["sameAs"] = sameAs
	}
	return encode(m)
}

// WebSiteSnippet renders a schema.org WebSite with a SearchAction target.
func WebSiteSnippet(name string) string {
	return encode(map[string]any{
		"@context": schemaContext,
		"@type":    "WebSite",
		"name":     name,
		"url":      BaseURL,
		"potentialAction": map[string]any{
			"@type":       "SearchAction",
			"target":      BaseURL + "/search?q={search_term_string}",
			"query-input": "required name=search_term_string",
		},
	})
}
