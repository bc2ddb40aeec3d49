package outreach

import (
	"context"
	"log"
	"strings"

	"github.com/playwright-community/playwright-go"

	"github.com/bilalahmed15/sales-navigator/internal/browser"
	"github.com/bilalahmed15/sales-navigator/internal/leads"
)

const (
	selMessageButton = `button[data-anchor-send-inmail], button.message-anywhere-button`
	selMessageBody   = `textarea[name='message'], .compose-form__message-field`
	selMessageSend   = `button[type='submit'].compose-form__send-button, button[data-control-name='send']`
)

// Messenger sends a templated message to each lead, one profile at a
// time on the shared page. Per-lead failures are logged and skipped.
type Messenger struct {
	page playwright.Page
}

func NewMessenger(page playwright.Page) *Messenger {
	return &Messenger{page: page}
}

// SendToLeads visits every lead and sends the rendered template.
// Returns how many sends succeeded and how many failed.
func (m *Messenger) SendToLeads(ctx context.Context, records []leads.LeadRecord, template string) (sent, failed int) {
	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			log.Printf("⚠️ Messaging stopped: %v", err)
			break
		}
		log.Printf("✉️ Messaging lead %d/%d: %s", i+1, len(records), rec.Identifier)
		if err := m.sendOne(rec, template); err != nil {
			log.Printf("⚠️ Failed to message %s: %v", rec.Identifier, err)
			failed++
			continue
		}
		sent++
		browser.RandomDelay(3000, 6000)
	}
	return sent, failed
}

func (m *Messenger) sendOne(rec leads.LeadRecord, template string) error {
	if _, err := m.page.Goto(rec.Identifier, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(30000),
	}); err != nil {
		return err
	}

	if err := m.page.Locator(selMessageButton).First().Click(playwright.LocatorClickOptions{
		Timeout: playwright.Float(10000),
	}); err != nil {
		return err
	}

	body := RenderTemplate(template, rec)
	if err := m.page.Locator(selMessageBody).First().Fill(body, playwright.LocatorFillOptions{
		Timeout: playwright.Float(10000),
	}); err != nil {
		return err
	}

	return m.page.Locator(selMessageSend).First().Click(playwright.LocatorClickOptions{
		Timeout: playwright.Float(10000),
	})
}

// RenderTemplate substitutes lead fields into the message template.
func RenderTemplate(template string, rec leads.LeadRecord) string {
	replacer := strings.NewReplacer(
		"{first_name}", rec.FirstName,
		"{last_name}", rec.LastName,
		"{headline}", rec.Headline,
	)
	return replacer.Replace(template)
}
