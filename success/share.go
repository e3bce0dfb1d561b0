// Package success holds what the success page offers once a registration is
// paid: links to share the event and a calendar entry for it.
package success

import (
	"net/url"
	"strings"
)

const (
	facebookShareText = "I just registered for Divine Encounter 2026! Join me for this life-changing spiritual experience. Where Heaven Meets Earth - March 15-17, 2026"
	twitterShareText  = "I just registered for Divine Encounter 2026! Join me for this transformative spiritual gathering. #DivineEncounter2026"
	whatsAppShareText = "I just registered for Divine Encounter 2026! 🙏\n\nJoin me for this life-changing spiritual experience.\n\n📅 March 15-17, 2026\n📍 Grace Convention Center, Lagos\n\nWhere Heaven Meets Earth ✨\n\nRegister here:"
)

type Links struct {
	Facebook string `json:"facebook"`
	Twitter  string `json:"twitter"`
	WhatsApp string `json:"whatsapp"`
}

// ShareLinks builds the social share URLs pointing people at origin, the
// public address of the signup site.
func ShareLinks(origin string) Links {
	u := encodeURIComponent(origin)

	return Links{
		Facebook: "https://www.facebook.com/sharer/sharer.php?u=" + u + "&quote=" + encodeURIComponent(facebookShareText),
		Twitter:  "https://twitter.com/intent/tweet?url=" + u + "&text=" + encodeURIComponent(twitterShareText),
		WhatsApp: "https://wa.me/?text=" + encodeURIComponent(whatsAppShareText) + "%20" + u,
	}
}

// Share targets expect browser-style component escaping: spaces as %20 and
// !'()* left as they are.
var componentUnescapes = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func encodeURIComponent(s string) string {
	return componentUnescapes.Replace(url.QueryEscape(s))
}
