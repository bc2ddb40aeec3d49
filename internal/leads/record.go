package leads

// MatchVerdict is the oracle's YES/NO decision for a lead.
type MatchVerdict string

const (
	MatchYes MatchVerdict = "YES"
	MatchNo  MatchVerdict = "NO"
)

// LeadRecord is one collected lead. Identifier is the profile URL and is
// the only field guaranteed to be populated; everything else degrades to
// its zero value when extraction or scoring is skipped or fails.
type LeadRecord struct {
	Identifier     string
	FirstName      string
	LastName       string
	Headline       string
	About          string
	Match          MatchVerdict
	Reason         string
	RelevanceScore float64
}

// FilterKind identifies which search filter panel an attribute filter
// targets.
type FilterKind string

const (
	FilterGeography    FilterKind = "geography"
	FilterCurrentTitle FilterKind = "current_title"
)

// AttributeFilter is one include/exclude refinement applied to the search
// before pagination starts.
type AttributeFilter struct {
	Kind    FilterKind
	Value   string
	Exclude bool
}

// ExtractionRequest carries the caller-supplied parameters for one
// pipeline run.
type ExtractionRequest struct {
	TargetCount           int
	SearchTerm            string
	Filters               []AttributeFilter
	ExtractFieldData      bool
	UseRelevanceFiltering bool
	Rubric                string
	SeedURL               string
}
