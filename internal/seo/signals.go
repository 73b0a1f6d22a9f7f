package seo

// TrustFlags are the content-quality attributes a page can carry.
type TrustFlags struct {
	AuthorBio           bool
	Citations           bool
	RecentUpdate        bool
	ExpertReview        bool
	OriginalScreenshots bool
	AffiliateDisclosure bool
}

// TrustSignal is one scored quality attribute.
type TrustSignal struct {
	Label  string `json:"label"`
	Points int    `json:"points"`
}

// TrustReport is the scored summary of a page's trust signals.
type TrustReport struct {
	Signals    []TrustSignal `json:"signals"`
	TotalScore int           `json:"total_score"`
	Level      string        `json:"level"`
}

// TrustSignals scores the given flags. Each present flag contributes a fixed
// point value; the level depends on how many signals are present, not on the
// point total.
func TrustSignals(flags TrustFlags) TrustReport {
	checks := []struct {
		present bool
		label   string
		points  int
	}{
		{flags.AuthorBio, "Author bio present", 20},
		{flags.Citations, "Cites primary sources", 25},
		{flags.RecentUpdate, "Recently updated", 20},
		{flags.ExpertReview, "Reviewed by an expert", 15},
		{flags.OriginalScreenshots, "Original screenshots", 10},
		{flags.AffiliateDisclosure, "Affiliate disclosure", 10},
	}

	report := TrustReport{Signals: []TrustSignal{}}
	for _, check := range checks {
		if !check.present {
			continue
		}
		report.Signals = append(report.Signals, TrustSignal{Label: check.label, Points: check.points})
		report.TotalScore += check.points
	}

	switch {
	case len(report.Signals) >= 4:
		report.Level = "high"
	case len(report.Signals) >= 2:
		report.Level = "medium"
	default:
		report.Level = "low"
	}
	return report
}

// Seniority is the author's experience tier.
type Seniority string

const (
	SeniorityJunior    Seniority = "junior"
	SeniorityMid       Seniority = "mid"
	SenioritySenior    Seniority = "senior"
	SeniorityPrincipal Seniority = "principal"
)

// ContentShape describes structural depth markers of an article.
type ContentShape struct {
	HasCodeExamples     bool
	HasDataTables       bool
	HasCaseStudies      bool
	HasMethodology      bool
	CitesPrimarySources bool
	AuthorSeniority     Seniority
}

// ExpertiseLevel scores the content shape with fixed weights and thresholds
// into one of four ordinal labels.
func ExpertiseLevel(content ContentShape) string {
	score := 0
	for _, present := range []bool{
		content.HasCodeExamples,
		content.HasDataTables,
		content.HasCaseStudies,
		content.HasMethodology,
		content.CitesPrimarySources,
	} {
		if present {
			score += 15
		}
	}

	switch content.AuthorSeniority {
	case SeniorityPrincipal:
		score += 30
	case SenioritySenior:
		score += 20
	case SeniorityMid:
		score += 10
	}

	switch {
	case score >= 80:
		return "advanced"
	case score >= 55:
		return "expert"
	case score >= 30:
		return "intermediate"
	default:
		return "beginner"
	}
}
