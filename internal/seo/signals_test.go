package seo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func flagsFromMask(mask int) TrustFlags {
	return TrustFlags{
		AuthorBio:           mask&1 != 0,
		Citations:           mask&2 != 0,
		RecentUpdate:        mask&4 != 0,
		ExpertReview:        mask&8 != 0,
		OriginalScreenshots: mask&16 != 0,
		AffiliateDisclosure: mask&32 != 0,
	}
}

func TestTrustSignals_PointValuesAndLevels(t *testing.T) {
	none := TrustSignals(TrustFlags{})
	assert.Equal(t, 0, none.TotalScore)
	assert.Equal(t, "low", none.Level)
	assert.Empty(t, none.Signals)

	all := TrustSignals(flagsFromMask(63))
	assert.Equal(t, 100, all.TotalScore)
	assert.Equal(t, "high", all.Level)
	assert.Len(t, all.Signals, 6)

	two := TrustSignals(TrustFlags{AuthorBio: true, Citations: true})
	assert.Equal(t, 45, two.TotalScore)
	assert.Equal(t, "medium", two.Level)

	one := TrustSignals(TrustFlags{Citations: true})
	assert.Equal(t, 25, one.TotalScore)
	assert.Equal(t, "low", one.Level)

	four := TrustSignals(TrustFlags{AuthorBio: true, Citations: true, RecentUpdate: true, ExpertReview: true})
	assert.Equal(t, 80, four.TotalScore)
	assert.Equal(t, "high", four.Level)
}

// Adding a flag can never lower the score: exhaustively check every pair of
// flag sets where one is a subset of the other.
func TestTrustSignals_Monotonic(t *testing.T) {
	scores := make([]int, 64)
	for mask := 0; mask < 64; mask++ {
		scores[mask] = TrustSignals(flagsFromMask(mask)).TotalScore
	}

	for a := 0; a < 64; a++ {
		for b := 0; b < 64; b++ {
			if a&b == a { // a is a subset of b
				assert.LessOrEqual(t, scores[a], scores[b], "subset %06b of %06b", a, b)
			}
		}
	}
}

func TestExpertiseLevel_Thresholds(t *testing.T) {
	assert.Equal(t, "beginner", ExpertiseLevel(ContentShape{}))
	assert.Equal(t, "beginner", ExpertiseLevel(ContentShape{HasCodeExamples: true}))
	assert.Equal(t, "intermediate", ExpertiseLevel(ContentShape{HasCodeExamples: true, HasDataTables: true}))
	assert.Equal(t, "intermediate", ExpertiseLevel(ContentShape{HasCodeExamples: true, AuthorSeniority: SenioritySenior}))
	assert.Equal(t, "expert", ExpertiseLevel(ContentShape{
		HasCodeExamples: true,
		HasDataTables:   true,
		HasCaseStudies:  true,
		AuthorSeniority: SeniorityMid,
	}))
	assert.Equal(t, "advanced", ExpertiseLevel(ContentShape{
		HasCodeExamples:     true,
		HasDataTables:       true,
		HasCaseStudies:      true,
		HasMethodology:      true,
		CitesPrimarySources: true,
		AuthorSeniority:     SeniorityPrincipal,
	}))
	assert.Equal(t, "advanced", ExpertiseLevel(ContentShape{
		HasCodeExamples: true,
		HasDataTables:   true,
		HasCaseStudies:  true,
		HasMethodology:  true,
		AuthorSeniority: SenioritySenior,
	}))
}
