package leads

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/playwright-community/playwright-go"
)

// searchPage abstracts the browser interactions the collection loop
// depends on, keeping the pagination logic testable without a live page.
type searchPage interface {
	// Open navigates to the search surface entry point.
	Open(url string) error
	// SubmitTerm types the query into the keyword input and submits it.
	SubmitTerm(term string) error
	// ApplyFilter engages one include/exclude attribute filter.
	ApplyFilter(f AttributeFilter) error
	// WaitReady blocks until the results container has rendered.
	WaitReady() error
	// Links returns the raw profile hrefs on the current results page.
	Links() ([]string, error)
	// Advance moves to the next results page, reporting false when the
	// source is exhausted.
	Advance() bool
}

// Collector drives paginated traversal of the search results view and
// accumulates unique profile identifiers until the target count is
// reached or the results are exhausted.
type Collector struct {
	surface   searchPage
	searchURL string
}

func NewCollector(page playwright.Page, searchURL string) *Collector {
	return &Collector{surface: &salesNavPage{page: page}, searchURL: searchURL}
}

func newCollectorWithSurface(surface searchPage, searchURL string) *Collector {
	return &Collector{surface: surface, searchURL: searchURL}
}

// Collect returns at most req.TargetCount identifiers in collection
// order. Exhausting the source early is normal termination, not an
// error; the only failure is an initial results view that never renders.
func (c *Collector) Collect(ctx context.Context, req ExtractionRequest) ([]string, error) {
	entry := c.searchURL
	if req.SeedURL != "" {
		entry = req.SeedURL
	}

	log.Printf("🔍 Navigating to search URL...")
	if err := c.surface.Open(entry); err != nil {
		return nil, fmt.Errorf("failed to open search surface: %w", err)
	}

	// Seed URLs carry their own query; term and filters only apply to
	// the default search surface.
	if req.SeedURL == "" {
		c.submitTerm(req.SearchTerm)
		c.applyFilters(req.Filters)
	}

	// Initial render barrier. If this cannot be satisfied even after a
	// retry the source is unreachable and the whole run fails.
	if err := c.surface.WaitReady(); err != nil {
		log.Printf("⚠️ Results container not found, retrying once: %v", err)
		if err := c.surface.WaitReady(); err != nil {
			return nil, fmt.Errorf("search results unreachable: %w", err)
		}
	}

	set := newLeadSet()
	retried := false

	for set.Len() < req.TargetCount {
		added, err := c.scanPage(set, req.TargetCount)
		if err != nil {
			// Transient page error: retry the same page once, then
			// keep what's gathered.
			if !retried {
				retried = true
				log.Printf("⚠️ Page error: %v. Retrying current page...", err)
				continue
			}
			log.Printf("⚠️ Page error persisted, stopping with %d leads", set.Len())
			break
		}
		retried = false
		log.Printf("✅ Collected %d total leads (added %d from this page)", set.Len(), added)

		if set.Len() >= req.TargetCount {
			log.Printf("🎯 Target count reached: %d leads", set.Len())
			break
		}

		if !c.surface.Advance() {
			log.Printf("🔚 Reached end of results with %d leads", set.Len())
			break
		}
	}

	return set.Take(req.TargetCount), nil
}

// submitTerm submits the search term with one retry. A term that still
// cannot be submitted degrades to collecting from the unsearched
// surface rather than aborting the run.
func (c *Collector) submitTerm(term string) {
	if term == "" {
		return
	}
	if err := c.surface.SubmitTerm(term); err != nil {
		log.Printf("⚠️ Failed to submit search term, retrying: %v", err)
		if err := c.surface.SubmitTerm(term); err != nil {
			log.Printf("⚠️ Search term could not be submitted: %v. Collecting unsearched results.", err)
		}
	}
}

// applyFilters engages each attribute filter in order before pagination
// starts. Filters are cumulative; a single filter's failure is logged
// and skipped so it never aborts the run.
func (c *Collector) applyFilters(filters []AttributeFilter) {
	for _, f := range filters {
		if err := c.surface.ApplyFilter(f); err != nil {
			log.Printf("⚠️ Failed to apply %s filter %q: %v. Skipping.", f.Kind, f.Value, err)
			continue
		}
		log.Printf("✅ Applied %s filter: %q (exclude=%v)", f.Kind, f.Value, f.Exclude)
	}
}

// scanPage extracts identifiers from the current results page into the
// set, stopping early once the target is reached.
func (c *Collector) scanPage(set *leadSet, target int) (int, error) {
	if err := c.surface.WaitReady(); err != nil {
		return 0, err
	}

	links, err := c.surface.Links()
	if err != nil {
		return 0, err
	}

	added := 0
	for _, href := range links {
		if set.Len() >= target {
			break
		}
		if href == "" {
			continue
		}
		if set.Add(normalizeProfileURL(href)) {
			added++
		}
	}
	return added, nil
}

// normalizeProfileURL resolves relative hrefs and strips tracking query
// params so the same profile never counts twice.
func normalizeProfileURL(href string) string {
	full := href
	if !strings.HasPrefix(href, "http") {
		full = "https://www.linkedin.com" + href
	}
	if i := strings.IndexByte(full, '?'); i >= 0 {
		full = full[:i]
	}
	return full
}
