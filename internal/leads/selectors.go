package leads

// Sales Navigator selectors.
// These WILL break when LinkedIn changes their markup.
// Inspect https://www.linkedin.com/sales/search/people in Chrome DevTools
// to verify/update.
const (
	// Search results container. Presence gates every page scan.
	selResultsContainer = `._border-search-results_1igybl, #search-results-container`

	// One result card's title block; the profile link lives inside it.
	selResultTitle = `.artdeco-entity-lockup__title`

	// Pagination next button.
	selNextButton = `button.artdeco-pagination__button--next`

	// Keyword search input on the search surface.
	selSearchInput = `input[id='global-typeahead-search-input'], input.global-typeahead__input`

	// Filter panels, keyed by data attribute per filter kind.
	selGeographyFieldset    = `fieldset[data-x-search-filter='GEOGRAPHY']`
	selCurrentTitleFieldset = `fieldset[data-x-search-filter='CURRENT_TITLE']`

	// Inside an expanded filter panel.
	selFilterExpand  = `button[aria-expanded='false']`
	selFilterInput   = `input[type='text']`
	selFilterInclude = `button[aria-label*='Include']`
	selFilterExclude = `button[aria-label*='Exclude']`

	// Profile page.
	selProfileTopCard = `section[data-x--lead--topcard], .profile-topcard`
	selProfileName    = `h1[data-anonymize='person-name'], .profile-topcard-person-entity__name`
	selProfileHead    = `span[data-anonymize='headline'], .profile-topcard__summary-position`
	selAboutExpand    = `button.button-text, .inline-show-more-text__button`
	selAboutText      = `._content-width_1dtbsb, span[data-anonymize='person-blurb']`
)
