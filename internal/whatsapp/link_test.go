package whatsapp

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkDesktopForm(t *testing.T) {
	link := Link("919876543210", "Hi! Is SAR001 available?", false)

	assert.True(t, strings.HasPrefix(link, "https://wa.me/919876543210?text="))
	assert.NotContains(t, link, "+")

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "Hi! Is SAR001 available?", parsed.Query().Get("text"))
}

func TestLinkMobileForm(t *testing.T) {
	link := Link("919876543210", "Hello", true)

	assert.True(t, strings.HasPrefix(link, "https://api.whatsapp.com/send?phone=919876543210&text="))
}

func TestLinkRoundTripsMultilineMessage(t *testing.T) {
	message := testComposer().ProductInquiry("SAR001", "Silk Chanderi Saree", "₹3,500 - ₹4,200")

	parsed, err := url.Parse(Link("919876543210", message, false))
	require.NoError(t, err)
	assert.Equal(t, message, parsed.Query().Get("text"))
}
