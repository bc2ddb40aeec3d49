package browser

import (
	"fmt"
	"log"

	"github.com/playwright-community/playwright-go"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

// Session owns the playwright runtime and the single authenticated page.
// The underlying browser has exactly one page context, so a Session must
// never be shared between concurrent operations.
type Session struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	ctx     playwright.BrowserContext
	page    playwright.Page
}

// NewSession launches a Chromium instance and opens its single page.
func NewSession(headless bool) (*Session, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	b, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(headless),
		Args: []string{
			"--disable-blink-features=AutomationControlled",
		},
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	ctx, err := b.NewContext(playwright.BrowserNewContextOptions{
		UserAgent: playwright.String(userAgent),
	})
	if err != nil {
		b.Close()
		pw.Stop()
		return nil, fmt.Errorf("failed to create browser context: %w", err)
	}

	page, err := ctx.NewPage()
	if err != nil {
		ctx.Close()
		b.Close()
		pw.Stop()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	return &Session{pw: pw, browser: b, ctx: ctx, page: page}, nil
}

// Page returns the session's single page context.
func (s *Session) Page() playwright.Page {
	return s.page
}

// RestoreCookies loads a previously saved cookie jar into the context.
// A missing jar is not an error; the caller simply logs in again.
func (s *Session) RestoreCookies(path string) error {
	cookies, err := LoadCookies(path)
	if err != nil {
		return err
	}
	if err := s.ctx.AddCookies(cookies); err != nil {
		return fmt.Errorf("failed to add cookies to context: %w", err)
	}
	log.Printf("🍪 Restored %d cookies from %s", len(cookies), path)
	return nil
}

// SaveCookies persists the context's cookie jar so the authenticated
// session survives a process restart.
func (s *Session) SaveCookies(path string) error {
	cookies, err := s.ctx.Cookies()
	if err != nil {
		return fmt.Errorf("failed to read context cookies: %w", err)
	}
	return WriteCookies(path, cookies)
}

// Close releases the page, context, browser and playwright runtime.
func (s *Session) Close() error {
	if s.page != nil {
		s.page.Close()
	}
	if s.ctx != nil {
		s.ctx.Close()
	}
	if s.browser != nil {
		s.browser.Close()
	}
	if s.pw != nil {
		return s.pw.Stop()
	}
	return nil
}
