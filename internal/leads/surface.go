package leads

import (
	"fmt"
	"log"

	"github.com/playwright-community/playwright-go"

	"github.com/bilalahmed15/sales-navigator/internal/browser"
)

// salesNavPage is the live playwright implementation of searchPage,
// bound to the Sales Navigator people-search markup.
type salesNavPage struct {
	page playwright.Page
}

func (p *salesNavPage) Open(url string) error {
	if err := p.goTo(url); err != nil {
		log.Printf("⚠️ Navigation failed, retrying once: %v", err)
		if err := p.goTo(url); err != nil {
			return err
		}
	}
	// Settle on the page like a human reader before touching it.
	if err := browser.HumanScroll(p.page); err != nil {
		log.Printf("⚠️ Scroll failed: %v", err)
	}
	return nil
}

func (p *salesNavPage) goTo(url string) error {
	_, err := p.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(30000),
	})
	return err
}

func (p *salesNavPage) SubmitTerm(term string) error {
	input := p.page.Locator(selSearchInput).First()
	if err := input.Fill(term, playwright.LocatorFillOptions{
		Timeout: playwright.Float(10000),
	}); err != nil {
		return fmt.Errorf("cannot fill search input: %w", err)
	}
	if err := input.Press("Enter", playwright.LocatorPressOptions{
		Timeout: playwright.Float(5000),
	}); err != nil {
		return fmt.Errorf("cannot submit search: %w", err)
	}
	browser.RandomDelay(1000, 2000)
	return nil
}

func (p *salesNavPage) ApplyFilter(f AttributeFilter) error {
	fieldset, err := filterFieldset(f.Kind)
	if err != nil {
		return err
	}
	panel := p.page.Locator(fieldset).First()

	// Open the panel if it is collapsed.
	expand := panel.Locator(selFilterExpand).First()
	if visible, _ := expand.IsVisible(); visible {
		if err := expand.Click(playwright.LocatorClickOptions{
			Timeout: playwright.Float(5000),
		}); err != nil {
			return fmt.Errorf("cannot open filter panel: %w", err)
		}
	}

	input := panel.Locator(selFilterInput).First()
	if err := input.Fill(f.Value, playwright.LocatorFillOptions{
		Timeout: playwright.Float(5000),
	}); err != nil {
		return fmt.Errorf("cannot fill filter value: %w", err)
	}

	// The typeahead needs a moment before suggestions carry the
	// include/exclude actions.
	browser.RandomDelay(1000, 2000)

	action := selFilterInclude
	if f.Exclude {
		action = selFilterExclude
	}
	if err := panel.Locator(action).First().Click(playwright.LocatorClickOptions{
		Timeout: playwright.Float(5000),
	}); err != nil {
		return fmt.Errorf("cannot engage filter action: %w", err)
	}
	browser.RandomDelay(1000, 2000)
	return nil
}

func (p *salesNavPage) WaitReady() error {
	if _, err := p.page.WaitForSelector(selResultsContainer, playwright.PageWaitForSelectorOptions{
		Timeout: playwright.Float(15000),
	}); err != nil {
		return fmt.Errorf("results container not rendered: %w", err)
	}
	return nil
}

func (p *salesNavPage) Links() ([]string, error) {
	titles, err := p.page.Locator(selResultsContainer).First().Locator(selResultTitle).All()
	if err != nil {
		return nil, fmt.Errorf("cannot list result cards: %w", err)
	}

	var links []string
	for _, title := range titles {
		href, err := title.Locator("a").First().GetAttribute("href")
		if err != nil || href == "" {
			// Card without a profile link, skip it.
			continue
		}
		links = append(links, href)
	}
	return links, nil
}

func (p *salesNavPage) Advance() bool {
	next := p.page.Locator(selNextButton).First()

	visible, err := next.IsVisible()
	if err != nil || !visible {
		return false
	}
	disabled, err := next.IsDisabled()
	if err != nil || disabled {
		return false
	}

	if err := next.Click(playwright.LocatorClickOptions{
		Timeout: playwright.Float(5000),
	}); err != nil {
		log.Printf("⚠️ Next button click failed: %v", err)
		return false
	}
	browser.RandomDelay(2000, 4000)
	return true
}

func filterFieldset(kind FilterKind) (string, error) {
	switch kind {
	case FilterGeography:
		return selGeographyFieldset, nil
	case FilterCurrentTitle:
		return selCurrentTitleFieldset, nil
	default:
		return "", fmt.Errorf("unknown filter kind %q", kind)
	}
}
