package auth

import (
	"fmt"
	"log"

	"github.com/playwright-community/playwright-go"

	"github.com/bilalahmed15/sales-navigator/internal/browser"
	"github.com/bilalahmed15/sales-navigator/utils"
)

// Status is the closed set of login outcomes.
type Status string

const (
	StatusAuthenticated     Status = "AUTHENTICATED"
	StatusChallengeRequired Status = "CHALLENGE_REQUIRED"
	StatusFailed            Status = "FAILED"
)

// Result is the tagged outcome of a login or challenge submission.
type Result struct {
	Status  Status `json:"status"`
	Message string `json:"message"`
}

const (
	loginURL = "https://www.linkedin.com/login"

	selUsername     = `#username`
	selPassword     = `#password`
	selLoginButton  = `.btn__primary--large, button[type='submit']`
	selSalesNavMail = `input[type='email']`
	selSalesNavPass = `input[type='password']`
	selChallengePin = `input[name='pin'], #input__email_verification_pin`
	selGlobalNav    = `#global-nav, .global-nav`
)

// Authenticator drives the credential flow on the session's page: the
// main login form, the optional second Sales Navigator form, and the
// two-factor challenge when LinkedIn raises one.
type Authenticator struct {
	page       playwright.Page
	screenshot *utils.ScreenShotDebugger
}

// NewAuthenticator takes the directory where failure screenshots land.
func NewAuthenticator(page playwright.Page, screenshotDir string) *Authenticator {
	return &Authenticator{
		page:       page,
		screenshot: utils.NewScreenShotDebugger(screenshotDir),
	}
}

// Login submits the credentials and reports one of the three outcomes.
// CHALLENGE_REQUIRED means the caller must follow up with SubmitChallenge.
func (a *Authenticator) Login(email, password string) Result {
	log.Printf("🔐 Navigating to LinkedIn login...")
	if _, err := a.page.Goto(loginURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(30000),
	}); err != nil {
		return failed(fmt.Errorf("failed to load login page: %w", err))
	}

	if err := a.fill(selUsername, email); err != nil {
		return failed(fmt.Errorf("login form not found: %w", err))
	}
	if err := a.fill(selPassword, password); err != nil {
		return failed(fmt.Errorf("password field not found: %w", err))
	}
	if err := a.page.Locator(selLoginButton).First().Click(playwright.LocatorClickOptions{
		Timeout: playwright.Float(10000),
	}); err != nil {
		return failed(fmt.Errorf("cannot submit login form: %w", err))
	}

	browser.RandomDelay(3000, 5000)

	// Two-factor challenge interrupts the flow here.
	if visible, _ := a.page.Locator(selChallengePin).First().IsVisible(); visible {
		log.Printf("🔑 Verification challenge detected")
		return Result{Status: StatusChallengeRequired, Message: "Verification code required"}
	}

	// Sales Navigator sometimes asks for the credentials a second time.
	if visible, _ := a.page.Locator(selSalesNavMail).First().IsVisible(); visible {
		log.Printf("🔁 Sales Navigator asks for credentials again...")
		if err := a.secondLogin(email, password); err != nil {
			log.Printf("⚠️ Sales Navigator login step failed: %v", err)
		}
	}

	return a.verifyLanding()
}

// SubmitChallenge enters the emailed verification code.
func (a *Authenticator) SubmitChallenge(code string) Result {
	pin := a.page.Locator(selChallengePin).First()
	if err := pin.Fill(code, playwright.LocatorFillOptions{
		Timeout: playwright.Float(10000),
	}); err != nil {
		return failed(fmt.Errorf("challenge input not found: %w", err))
	}
	if err := a.page.Locator(`button[type='submit']`).First().Click(playwright.LocatorClickOptions{
		Timeout: playwright.Float(10000),
	}); err != nil {
		return failed(fmt.Errorf("cannot submit challenge code: %w", err))
	}

	browser.RandomDelay(3000, 5000)
	return a.verifyLanding()
}

func (a *Authenticator) secondLogin(email, password string) error {
	if err := a.fill(selSalesNavMail, email); err != nil {
		return err
	}
	if err := a.fill(selSalesNavPass, password); err != nil {
		return err
	}
	if err := a.page.Locator(`button[type='submit']`).First().Click(playwright.LocatorClickOptions{
		Timeout: playwright.Float(10000),
	}); err != nil {
		return err
	}
	browser.RandomDelay(3000, 5000)
	return nil
}

// verifyLanding confirms the authenticated shell rendered.
func (a *Authenticator) verifyLanding() Result {
	if _, err := a.page.WaitForSelector(selGlobalNav, playwright.PageWaitForSelectorOptions{
		Timeout: playwright.Float(15000),
	}); err != nil {
		a.screenshot.CaptureAndLog(a.page, "login-failed", "🚨 Login verification failed")
		return failed(fmt.Errorf("login verification failed - navigation bar not found"))
	}
	log.Printf("✅ Login confirmed")
	return Result{Status: StatusAuthenticated, Message: "Successfully logged in"}
}

func (a *Authenticator) fill(selector, value string) error {
	return a.page.Locator(selector).First().Fill(value, playwright.LocatorFillOptions{
		Timeout: playwright.Float(10000),
	})
}

func failed(err error) Result {
	log.Printf("❌ Login error: %v", err)
	return Result{Status: StatusFailed, Message: err.Error()}
}
