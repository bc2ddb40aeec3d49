package browser

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/playwright-community/playwright-go"
)

// Cookie represents a browser cookie persisted as JSON.
type Cookie struct {
	Name     string  `json:"name"`
	Value    string  `json:"value"`
	Domain   string  `json:"domain"`
	Path     string  `json:"path"`
	Expires  float64 `json:"expires"`
	HTTPOnly bool    `json:"httpOnly"`
	Secure   bool    `json:"secure"`
	SameSite string  `json:"sameSite"`
}

func LoadCookies(path string) ([]playwright.OptionalCookie, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cookies []Cookie
	if err := json.Unmarshal(data, &cookies); err != nil {
		return nil, err
	}

	pwCookies := make([]playwright.OptionalCookie, len(cookies))
	for i, c := range cookies {
		pwCookies[i] = c.ToPlaywright()
	}
	return pwCookies, nil
}

// WriteCookies saves the live cookie jar back to disk in the same JSON
// shape LoadCookies reads.
func WriteCookies(path string, pwCookies []playwright.Cookie) error {
	cookies := make([]Cookie, len(pwCookies))
	for i, c := range pwCookies {
		sameSite := ""
		if c.SameSite != nil {
			sameSite = string(*c.SameSite)
		}
		cookies[i] = Cookie{
			Name:     c.Name,
			Value:    c.Value,
			Domain:   c.Domain,
			Path:     c.Path,
			Expires:  c.Expires,
			HTTPOnly: c.HttpOnly,
			Secure:   c.Secure,
			SameSite: sameSite,
		}
	}

	data, err := json.MarshalIndent(cookies, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c Cookie) ToPlaywright() playwright.OptionalCookie {
	pwCookie := playwright.OptionalCookie{
		Name:   c.Name,
		Value:  c.Value,
		Domain: playwright.String(c.Domain),
		Path:   playwright.String(c.Path),
	}

	if c.Expires > 0 {
		pwCookie.Expires = playwright.Float(c.Expires)
	}

	if c.HTTPOnly {
		pwCookie.HttpOnly = playwright.Bool(true)
	}

	if c.Secure {
		pwCookie.Secure = playwright.Bool(true)
	}

	switch c.SameSite {
	case "Lax":
		pwCookie.SameSite = playwright.SameSiteAttributeLax
	case "Strict":
		pwCookie.SameSite = playwright.SameSiteAttributeStrict
	case "None":
		pwCookie.SameSite = playwright.SameSiteAttributeNone
	}

	return pwCookie
}
