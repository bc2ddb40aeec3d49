package leads

import (
	"context"
	"log"

	"github.com/bilalahmed15/sales-navigator/internal/ai"
)

// DefaultRubric describes the target client profile scored against when
// the caller supplies no rubric of their own.
const DefaultRubric = `We are looking for professionals or companies involved in anti-corrosion protection,
especially those in shipbuilding, railway, tram, and automotive underbody coatings,
high-temperature press shops, forging machinery, outdoor equipment like windmills (esp. splash zones),
pipe coatings (for water, oil, underground metal pipes), LSR sealants, glass-to-metal bonding,
grease dispensing in machines, electric insulators, barrels, drums, and related industrial environments.`

// Scorer applies the external scoring oracle to a lead. Any oracle
// failure collapses to a fixed non-match result; scoring never aborts
// the pipeline.
type Scorer struct {
	client ai.Client
}

func NewScorer(client ai.Client) *Scorer {
	return &Scorer{client: client}
}

// Score returns the record with Match, Reason and RelevanceScore
// populated.
func (s *Scorer) Score(ctx context.Context, rec LeadRecord, rubric string) LeadRecord {
	if rubric == "" {
		rubric = DefaultRubric
	}

	decision, err := s.client.Score(ctx, rec.Headline, rec.About, rubric)
	if err != nil {
		log.Printf("❌ AI error for %s: %v", rec.Identifier, err)
		rec.Match = MatchNo
		rec.Reason = "AI analysis failed"
		rec.RelevanceScore = 0.0
		return rec
	}

	rec.Match = MatchNo
	if decision.Match == string(MatchYes) {
		rec.Match = MatchYes
	}
	rec.Reason = decision.Reason
	rec.RelevanceScore = clamp01(decision.Score)
	return rec
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
