// Package flash carries a one-shot user notice across a redirect via a
// short-lived cookie.
package flash

import (
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const cookieName = "flash"

type Message struct {
	Category string // success, error, info
	Text     string
}

// Set stores a notice to be shown on the next rendered page.
func Set(c *fiber.Ctx, category, text string) {
	c.Cookie(&fiber.Cookie{
		Name:     cookieName,
		Value:    url.QueryEscape(category + "|" + text),
		Expires:  time.Now().Add(5 * time.Minute),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

// Get returns the pending notice, if any, and clears it.
func Get(c *fiber.Ctx) *Message {
	raw := c.Cookies(cookieName)
	if raw == "" {
		return nil
	}
	c.Cookie(&fiber.Cookie{
		Name:     cookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return nil
	}
	category, text, found := strings.Cut(decoded, "|")
	if !found {
		return nil
	}
	return &Message{Category: category, Text: text}
}
