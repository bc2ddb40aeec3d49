package leads

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"
)

// LeadCollector produces the deduplicated identifier set for a run.
type LeadCollector interface {
	Collect(ctx context.Context, req ExtractionRequest) ([]string, error)
}

// ProfileExtractor fetches a lead's biographical fields. It never fails;
// missing fields degrade to empty values.
type ProfileExtractor interface {
	Extract(identifier string) LeadRecord
}

// LeadScorer populates the relevance fields of a record.
type LeadScorer interface {
	Score(ctx context.Context, rec LeadRecord, rubric string) LeadRecord
}

// LeadStore persists the final record sequence. scored declares whether
// the relevance columns are part of this export's schema.
type LeadStore interface {
	Write(records []LeadRecord, scored bool) (string, error)
}

// Result is the pipeline's only outcome shape: either a successful
// export or a human-readable error. No internal failure escapes Run in
// any other form.
type Result struct {
	Success  bool   `json:"success"`
	Filename string `json:"filename,omitempty"`
	Count    int    `json:"count"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Pipeline composes collection, field extraction, scoring, ranking and
// export. Everything runs strictly sequentially: the browser session has
// a single page context.
type Pipeline struct {
	collector     LeadCollector
	extractor     ProfileExtractor
	scorer        LeadScorer
	store         LeadStore
	cooldown      time.Duration
	defaultTarget int
}

func NewPipeline(collector LeadCollector, extractor ProfileExtractor, scorer LeadScorer, store LeadStore, cooldown time.Duration, defaultTarget int) *Pipeline {
	if defaultTarget <= 0 {
		defaultTarget = 30
	}
	return &Pipeline{
		collector:     collector,
		extractor:     extractor,
		scorer:        scorer,
		store:         store,
		cooldown:      cooldown,
		defaultTarget: defaultTarget,
	}
}

// Run executes one extraction end to end and writes the export file.
func (p *Pipeline) Run(ctx context.Context, req ExtractionRequest) Result {
	if req.TargetCount <= 0 {
		req.TargetCount = p.defaultTarget
	}

	identifiers, err := p.collector.Collect(ctx, req)
	if err != nil {
		return failure(fmt.Errorf("error during lead extraction: %w", err))
	}
	log.Printf("📦 Collected %d leads", len(identifiers))

	var records []LeadRecord
	if req.ExtractFieldData {
		log.Printf("📊 Extracting profile data for %d leads...", len(identifiers))
		for i, id := range identifiers {
			log.Printf("🔍 Extracting profile %d/%d: %s", i+1, len(identifiers), id)
			records = append(records, p.extractor.Extract(id))
			// Throttle visits to the upstream source.
			time.Sleep(p.cooldown)
		}
	} else {
		// Identifier-only records. Scoring requested alongside this is a
		// tolerated no-op: the defaults stand and the oracle never runs.
		log.Printf("📋 Creating basic records for %d leads...", len(identifiers))
		for _, id := range identifiers {
			records = append(records, LeadRecord{Identifier: id, Match: MatchNo})
		}
	}

	if req.UseRelevanceFiltering && req.ExtractFieldData {
		log.Printf("🤖 Scoring %d leads against rubric...", len(records))
		for i := range records {
			records[i] = p.scorer.Score(ctx, records[i], req.Rubric)
		}
	}

	if req.UseRelevanceFiltering {
		// Rank by relevance, keep matches only. Stable sort keeps
		// collection order for ties.
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].RelevanceScore > records[j].RelevanceScore
		})
		matched := records[:0]
		for _, rec := range records {
			if rec.Match == MatchYes {
				matched = append(matched, rec)
			}
		}
		records = matched
		log.Printf("🎯 %d leads matched the rubric", len(records))
	}

	filename, err := p.store.Write(records, req.UseRelevanceFiltering)
	if err != nil {
		return failure(fmt.Errorf("failed to save leads: %w", err))
	}

	log.Printf("✅ Finished. Saved %d leads to %s", len(records), filename)
	return Result{
		Success:  true,
		Filename: filename,
		Count:    len(records),
		Message:  fmt.Sprintf("Successfully extracted %d leads", len(records)),
	}
}

func failure(err error) Result {
	log.Printf("❌ %v", err)
	return Result{Success: false, Error: err.Error()}
}
