package utils

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/playwright-community/playwright-go"
)

// ScreenShotDebugger captures full-page screenshots of browser flows
// that fail somewhere unexpected, so selector breakage can be diagnosed
// after the fact.
type ScreenShotDebugger struct {
	outputDir string
}

// NewScreenShotDebugger stores screenshots under dir, falling back to
// logs/screenshots when dir is empty.
func NewScreenShotDebugger(dir string) *ScreenShotDebugger {
	if dir == "" {
		dir = filepath.Join("logs", "screenshots")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Printf("⚠️ Cannot create screenshot directory %s: %v", dir, err)
	}
	return &ScreenShotDebugger{outputDir: dir}
}

func (s *ScreenShotDebugger) CaptureAndLog(page playwright.Page, name, message string) error {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	target := filepath.Join(s.outputDir, fmt.Sprintf("%s_%s.png", name, timestamp))
	log.Printf("📸 %s", message)

	if _, err := page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(target),
		FullPage: playwright.Bool(true),
	}); err != nil {
		log.Printf("⚠️ Failed to capture screenshot: %v", err)
		return err
	}

	log.Printf("   Screenshot saved: %s", target)
	return nil
}
