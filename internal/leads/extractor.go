package leads

import (
	"log"
	"strings"
	"unicode"

	"github.com/playwright-community/playwright-go"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/bilalahmed15/sales-navigator/internal/browser"
)

// FieldExtractor visits a profile page and pulls its biographical fields.
// Every field degrades independently to an empty string; Extract never
// fails.
type FieldExtractor struct {
	page playwright.Page
}

func NewFieldExtractor(page playwright.Page) *FieldExtractor {
	return &FieldExtractor{page: page}
}

// Extract navigates to the identifier as a URL and extracts name,
// headline and about text on a best-effort basis.
func (e *FieldExtractor) Extract(identifier string) LeadRecord {
	rec := LeadRecord{Identifier: identifier, Match: MatchNo}

	if _, err := e.page.Goto(identifier, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(30000),
	}); err != nil {
		log.Printf("❌ Error loading profile %s: %v", identifier, err)
		return rec
	}

	// Render barrier for the top card; a miss only degrades the fields.
	if _, err := e.page.WaitForSelector(selProfileTopCard, playwright.PageWaitForSelectorOptions{
		Timeout: playwright.Float(10000),
	}); err != nil {
		log.Printf("⚠️ Profile top card not found for %s", identifier)
	}

	// Idle sessions get flagged; nudge the cursor while reading.
	if err := browser.MouseJiggle(e.page); err != nil {
		log.Printf("⚠️ Mouse move failed: %v", err)
	}

	// name
	if name, err := e.innerText(selProfileName); err != nil {
		log.Printf("⚠️ Name not found for %s: %v", identifier, err)
	} else {
		rec.FirstName, rec.LastName = SplitName(name)
	}

	// headline
	if headline, err := e.innerText(selProfileHead); err != nil {
		log.Printf("⚠️ Headline not found for %s: %v", identifier, err)
	} else {
		rec.Headline = headline
	}

	// expand about section; best effort, it may already be expanded or absent
	expand := e.page.Locator(selAboutExpand).First()
	if visible, _ := expand.IsVisible(); visible {
		_ = expand.Click(playwright.LocatorClickOptions{
			Timeout: playwright.Float(3000),
		})
		browser.RandomDelay(500, 1000)
	}

	// about
	if about, err := e.innerText(selAboutText); err != nil {
		log.Printf("⚠️ About section not found for %s: %v", identifier, err)
	} else {
		rec.About = about
	}

	return rec
}

func (e *FieldExtractor) innerText(selector string) (string, error) {
	text, err := e.page.Locator(selector).First().InnerText(playwright.LocatorInnerTextOptions{
		Timeout: playwright.Float(5000),
	})
	if err != nil {
		return "", err
	}
	return cleanText(text), nil
}

// SplitName splits a full name on whitespace: first token becomes the
// first name, last token the last name. A single-token name yields an
// empty last name.
func SplitName(full string) (first, last string) {
	fields := strings.Fields(full)
	switch len(fields) {
	case 0:
		return "", ""
	case 1:
		return fields[0], ""
	default:
		return fields[0], fields[len(fields)-1]
	}
}

var textCleaner = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Cf)), norm.NFC)

// cleanText normalizes scraped text: LinkedIn pages carry zero-width and
// other format characters that corrupt CSV cells and name splitting.
func cleanText(s string) string {
	cleaned, _, err := transform.String(textCleaner, s)
	if err != nil {
		cleaned = s
	}
	return strings.Join(strings.Fields(cleaned), " ")
}
