package leads

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	aipkg "github.com/bilalahmed15/sales-navigator/internal/ai"
)

type stubOracle struct {
	decision   *aipkg.Decision
	err        error
	lastRubric string
}

func (s *stubOracle) Score(ctx context.Context, headline, about, rubric string) (*aipkg.Decision, error) {
	s.lastRubric = rubric
	if s.err != nil {
		return nil, s.err
	}
	return s.decision, nil
}

func TestScorerPopulatesRelevanceFields(t *testing.T) {
	oracle := &stubOracle{decision: &aipkg.Decision{Match: "YES", Reason: "shipyard owner", Score: 0.9}}
	scorer := NewScorer(oracle)

	rec := scorer.Score(context.Background(), LeadRecord{Identifier: "https://example.com/lead/a"}, "custom rubric")

	assert.Equal(t, MatchYes, rec.Match)
	assert.Equal(t, "shipyard owner", rec.Reason)
	assert.Equal(t, 0.9, rec.RelevanceScore)
	assert.Equal(t, "custom rubric", oracle.lastRubric)
}

func TestScorerOracleFailureCollapsesToNoMatch(t *testing.T) {
	oracle := &stubOracle{err: errors.New("transport failed")}
	scorer := NewScorer(oracle)

	rec := scorer.Score(context.Background(), LeadRecord{
		Identifier:     "https://example.com/lead/a",
		Match:          MatchYes,
		Reason:         "stale",
		RelevanceScore: 0.7,
	}, "")

	assert.Equal(t, MatchNo, rec.Match)
	assert.Equal(t, "AI analysis failed", rec.Reason)
	assert.Zero(t, rec.RelevanceScore)
}

func TestScorerDefaultsRubric(t *testing.T) {
	oracle := &stubOracle{decision: &aipkg.Decision{Match: "NO", Reason: "barista", Score: 0.1}}
	scorer := NewScorer(oracle)

	scorer.Score(context.Background(), LeadRecord{}, "")
	assert.Equal(t, DefaultRubric, oracle.lastRubric)
}

func TestScorerClampsScore(t *testing.T) {
	tests := []struct {
		name     string
		score    float64
		expected float64
	}{
		{"above one", 1.7, 1},
		{"below zero", -0.3, 0},
		{"in range", 0.42, 0.42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oracle := &stubOracle{decision: &aipkg.Decision{Match: "YES", Score: tt.score}}
			rec := NewScorer(oracle).Score(context.Background(), LeadRecord{}, "")
			assert.Equal(t, tt.expected, rec.RelevanceScore)
		})
	}
}
