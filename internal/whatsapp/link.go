package whatsapp

import (
	"net/url"
	"strings"
)

// Link builds the deep link that opens WhatsApp pre-filled with message.
// Mobile clients go through api.whatsapp.com, desktop through wa.me; number is
// the destination in international format without spaces or a plus sign.
// Opening the link is the caller's concern, no response is awaited.
func Link(number, message string, mobile bool) string {
	encoded := encodeComponent(message)
	if mobile {
		return "https://api.whatsapp.com/send?phone=" + number + "&text=" + encoded
	}
	return "https://wa.me/" + number + "?text=" + encoded
}

// encodeComponent percent-encodes like encodeURIComponent: spaces become %20,
// not plus signs.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
