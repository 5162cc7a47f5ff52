package whatsapp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testComposer() *Composer {
	return NewComposer(BusinessInfo{
		Name:      "Curated Threads",
		Tagline:   "Where Tradition Meets Contemporary Grace",
		Instagram: "@curatedthreads",
		Website:   "www.curatedthreads.com",
	})
}

func TestProductInquiryFixedLines(t *testing.T) {
	msg := testComposer().ProductInquiry("SAR001", "Silk Chanderi Saree", "₹3,500 - ₹4,200")

	lines := strings.Split(msg, "\n")
	require.Contains(t, lines, "📦 Product: Silk Chanderi Saree")
	require.Contains(t, lines, "🔢 Code: SAR001")
	require.Contains(t, lines, "💰 Price Range: ₹3,500 - ₹4,200")

	// checklist order is fixed
	joined := strings.Join(lines, "\n")
	availability := strings.Index(joined, "✓ Availability")
	pricing := strings.Index(joined, "✓ Exact pricing")
	sizes := strings.Index(joined, "✓ Size options")
	delivery := strings.Index(joined, "✓ Delivery time")
	offers := strings.Index(joined, "✓ Any current offers")
	assert.True(t, availability < pricing && pricing < sizes && sizes < delivery && delivery < offers)

	assert.True(t, strings.HasPrefix(msg, "Hi Curated Threads! 👋"))
	assert.True(t, strings.HasSuffix(msg, "Thank you! 😊"))
}

func TestProductInquiryOmitsBlankPriceLine(t *testing.T) {
	msg := testComposer().ProductInquiry("SAR001", "Silk Chanderi Saree", "")

	assert.NotContains(t, msg, "Price Range")
	assert.NotContains(t, msg, "\n\n\n")
	assert.Contains(t, msg, "📦 Product: Silk Chanderi Saree\n🔢 Code: SAR001\n\nCould you please share:")
}

func TestComposerPurity(t *testing.T) {
	c := testComposer()

	lead := Lead{Name: "Priya", Size: "M", Budget: "2000-5000"}
	first := c.LeadMessage(lead)
	second := c.LeadMessage(lead)
	assert.Equal(t, first, second)

	assert.Equal(t, c.GeneralInquiry(), c.GeneralInquiry())
	assert.Equal(t,
		c.ProductInquiry("KUR001", "Cotton Straight Kurti", "₹1,200 - ₹1,800"),
		c.ProductInquiry("KUR001", "Cotton Straight Kurti", "₹1,200 - ₹1,800"),
	)
}

func TestLeadMessageFieldOrderAndOmission(t *testing.T) {
	c := testComposer()

	full := c.LeadMessage(Lead{
		Name:     "Priya",
		Phone:    "9876543210",
		Size:     "M",
		Budget:   "2000-5000",
		Occasion: "festive",
		Style:    "traditional",
		Notes:    "prefer handloom",
	})
	expectedOrder := []string{
		"👤 Name: Priya",
		"📱 Phone: 9876543210",
		"📏 Size: M",
		"💰 Budget: 2000-5000",
		"🎉 Occasion: festive",
		"✨ Style Preference: traditional",
		"📝 Notes: prefer handloom",
	}
	last := -1
	for _, line := range expectedOrder {
		idx := strings.Index(full, line)
		require.Greater(t, idx, last, "line %q out of order", line)
		last = idx
	}

	minimal := c.LeadMessage(Lead{Name: "Priya"})
	assert.Contains(t, minimal, "👤 Name: Priya")
	for _, label := range []string{"Phone:", "Size:", "Budget:", "Occasion:", "Style Preference:", "Notes:"} {
		assert.NotContains(t, minimal, label)
	}
}

func TestCollectionInquiryCountOnlyWhenPositive(t *testing.T) {
	c := testComposer()

	withCount := c.CollectionInquiry("Festive Sarees", 24)
	assert.Contains(t, withCount, `"Festive Sarees" collection (24 pieces).`)

	withoutCount := c.CollectionInquiry("Festive Sarees", 0)
	assert.Contains(t, withoutCount, `"Festive Sarees" collection.`)
	assert.NotContains(t, withoutCount, "pieces")
}

func TestBulkInquiryNumbersProducts(t *testing.T) {
	msg := testComposer().BulkInquiry([]ProductRef{
		{Code: "SAR001", Title: "Silk Chanderi Saree"},
		{Code: "KUR002", Title: "Printed Anarkali Set"},
	})

	assert.Contains(t, msg, "1. Silk Chanderi Saree (SAR001)\n2. Printed Anarkali Set (KUR002)\n")
}

func TestOrderMessageVariants(t *testing.T) {
	c := testComposer()

	full := c.OrderMessage(Order{
		ProductCode:  "SAR002",
		ProductTitle: "Banarasi Silk Saree",
		Size:         "Free Size",
		Quantity:     2,
		Name:         "Priya",
		Phone:        "9876543210",
		Address:      "12 MG Road, Bengaluru",
		Pincode:      "560001",
		Notes:        "gift wrap please",
	})
	assert.Contains(t, full, "• Quantity: 2\n")
	assert.Contains(t, full, "📍 Delivery Information:\n• Name: Priya\n• Phone: 9876543210\n• Address: 12 MG Road, Bengaluru\n• Pincode: 560001\n")
	assert.Contains(t, full, "📝 Notes: gift wrap please")

	// without delivery data the whole block disappears, quantity defaults to 1
	bare := c.OrderMessage(Order{
		ProductCode:  "SAR002",
		ProductTitle: "Banarasi Silk Saree",
		Size:         "Free Size",
	})
	assert.NotContains(t, bare, "Delivery Information")
	assert.Contains(t, bare, "• Quantity: 1\n")
	assert.Contains(t, bare, "Please confirm:\n✓ Availability\n✓ Total cost (including delivery)\n✓ Estimated delivery time\n✓ Payment options")
}

func TestStylingRequestBudgetSentenceOptional(t *testing.T) {
	c := testComposer()

	assert.Contains(t, c.StylingRequest("a wedding", "₹5,000"), "My budget is ₹5,000.")
	assert.NotContains(t, c.StylingRequest("a wedding", ""), "My budget")
}

func TestServiceVariants(t *testing.T) {
	c := testComposer()

	assert.Contains(t, c.OrderStatusInquiry("ORD123"), "📦 Order Code: ORD123")
	assert.Contains(t, c.ReturnRequest("ORD123", "wrong size"), "📝 Reason: wrong size")
	assert.Contains(t, c.SizingHelp("KUR001"), "sizing for product KUR001")
	assert.Contains(t, c.CareInstructions("SAR001"), "care instructions for product SAR001")
	assert.Contains(t, c.GiftWrappingInquiry("SAR002"), "order SAR002 as a gift")
	assert.Contains(t, c.BulkOrderInquiry(15, "a corporate event"), "bulk order for 15 pieces for a corporate event")
	assert.Contains(t, c.CustomMeasurementRequest("KUR003", "Anarkali Gown"), "Anarkali Gown (Code: KUR003)")
	assert.Contains(t, c.CatalogRequest("Office Kurtis"), "latest catalog for Office Kurtis?")
	assert.Contains(t, c.CatalogRequest(""), "latest catalog?")
	assert.Contains(t, c.PreferencesInquiry("M", "under2000"), "size M within under2000 budget")
	assert.Contains(t, c.QuickInquiry("KUR001", "Cotton Straight Kurti"), "Cotton Straight Kurti (Code: KUR001)")
	assert.Contains(t, c.StoreVisitInquiry(), "• Store address")
}

func TestMessagesArePlainText(t *testing.T) {
	c := testComposer()
	for name, msg := range map[string]string{
		"general": c.GeneralInquiry(),
		"product": c.ProductInquiry("SAR001", "Silk Chanderi Saree", "₹3,500 - ₹4,200"),
		"lead":    c.LeadMessage(Lead{Name: "Priya"}),
		"order":   c.OrderMessage(Order{ProductCode: "X", ProductTitle: "Y", Size: "M"}),
	} {
		assert.NotContains(t, msg, "<b>", name)
		assert.NotContains(t, msg, "</", name)
	}
}
