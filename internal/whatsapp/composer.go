package whatsapp

import (
	"fmt"
	"strings"
)

// BusinessInfo identifies the shop in outbound messages.
type BusinessInfo struct {
	Name      string
	Tagline   string
	Instagram string
	Website   string
}

// Composer renders pre-filled WhatsApp messages. Every method is a pure
// formatter: present payload fields contribute exactly one labeled line,
// blank fields are omitted entirely, and line order is fixed per variant.
type Composer struct {
	business BusinessInfo
}

// NewComposer constructs a Composer for the given business.
func NewComposer(business BusinessInfo) *Composer {
	return &Composer{business: business}
}

// ProductRef is the minimal product identification used in bulk inquiries.
type ProductRef struct {
	Code  string
	Title string
}

// ProductInquiry is the detailed product interest message.
func (c *Composer) ProductInquiry(code, title, priceRange string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s! 👋\n\n", c.business.Name)
	b.WriteString("I'm interested in this product:\n\n")
	fmt.Fprintf(&b, "📦 Product: %s\n", title)
	fmt.Fprintf(&b, "🔢 Code: %s\n", code)
	if priceRange != "" {
		fmt.Fprintf(&b, "💰 Price Range: %s\n", priceRange)
	}
	b.WriteString("\nCould you please share:\n")
	b.WriteString("✓ Availability\n")
	b.WriteString("✓ Exact pricing\n")
	b.WriteString("✓ Size options\n")
	b.WriteString("✓ Delivery time\n")
	b.WriteString("✓ Any current offers\n\n")
	b.WriteString("Thank you! 😊")
	return b.String()
}

// QuickInquiry is the one-line product interest message.
func (c *Composer) QuickInquiry(code, title string) string {
	return fmt.Sprintf("Hi! I'm interested in %s (Code: %s). Is this available?", title, code)
}

// BulkInquiry lists several products in one message.
func (c *Composer) BulkInquiry(products []ProductRef) string {
	var b strings.Builder
	b.WriteString("Hi! I'm interested in these products:\n\n")
	for i, p := range products {
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, p.Title, p.Code)
	}
	b.WriteString("\nCan you share availability and total pricing?\n\nThank you!")
	return b.String()
}

// CollectionInquiry asks about one collection; itemCount appears only when positive.
func (c *Composer) CollectionInquiry(name string, itemCount int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi! I'm browsing your %q collection", name)
	if itemCount > 0 {
		fmt.Fprintf(&b, " (%d pieces)", itemCount)
	}
	b.WriteString(".\n\n")
	b.WriteString("Could you share:\n")
	b.WriteString("• Latest arrivals\n")
	b.WriteString("• Price range\n")
	b.WriteString("• Any special offers\n")
	b.WriteString("• Best sellers from this collection\n\n")
	b.WriteString("Thank you! 😊")
	return b.String()
}

// Lead is a personalization request payload. Only Name is expected to be set;
// validation is the form's responsibility, blank fields are simply omitted.
type Lead struct {
	Name     string
	Phone    string
	Size     string
	Budget   string
	Occasion string
	Style    string
	Notes    string
}

// LeadMessage is the personalized-recommendations request.
func (c *Composer) LeadMessage(lead Lead) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s! 👋\n\n", c.business.Name)
	b.WriteString("I'd love to get personalized recommendations.\n\n")
	b.WriteString("📋 My Details:\n")
	fmt.Fprintf(&b, "👤 Name: %s\n", lead.Name)
	if lead.Phone != "" {
		fmt.Fprintf(&b, "📱 Phone: %s\n", lead.Phone)
	}
	if lead.Size != "" {
		fmt.Fprintf(&b, "📏 Size: %s\n", lead.Size)
	}
	if lead.Budget != "" {
		fmt.Fprintf(&b, "💰 Budget: %s\n", lead.Budget)
	}
	if lead.Occasion != "" {
		fmt.Fprintf(&b, "🎉 Occasion: %s\n", lead.Occasion)
	}
	if lead.Style != "" {
		fmt.Fprintf(&b, "✨ Style Preference: %s\n", lead.Style)
	}
	if lead.Notes != "" {
		fmt.Fprintf(&b, "📝 Notes: %s\n", lead.Notes)
	}
	b.WriteString("\nLooking forward to your suggestions! 😊")
	return b.String()
}

// PreferencesInquiry is the short size-and-budget question.
func (c *Composer) PreferencesInquiry(size, budget string) string {
	return fmt.Sprintf("Hi! I'm looking for pieces in size %s within %s budget. What would you recommend?", size, budget)
}

// GeneralInquiry is the hero CTA / floating button message.
func (c *Composer) GeneralInquiry() string {
	return fmt.Sprintf("Hi %s! 👋\n\nI came across your beautiful collection and would love to know more.\n\nCan you help me with some information?\n\nThank you! 😊", c.business.Name)
}

// StoreVisitInquiry asks for visiting details.
func (c *Composer) StoreVisitInquiry() string {
	return "Hi! I'd like to visit your store. Could you share:\n• Store address\n• Opening hours\n• Appointment needed?\n\nThank you!"
}

// CatalogRequest asks for the latest catalog, optionally for one collection.
func (c *Composer) CatalogRequest(collectionName string) string {
	var b strings.Builder
	b.WriteString("Hi! Could you share your latest catalog")
	if collectionName != "" {
		fmt.Fprintf(&b, " for %s", collectionName)
	}
	b.WriteString("?\n\nThank you!")
	return b.String()
}

// Order is a purchase request payload.
type Order struct {
	ProductCode  string
	ProductTitle string
	Size         string
	Quantity     int
	Name         string
	Phone        string
	Address      string
	Pincode      string
	Notes        string
}

// OrderMessage is the order placement request. The delivery block appears only
// when a name or address was given; quantity defaults to one.
func (c *Composer) OrderMessage(order Order) string {
	quantity := order.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	var b strings.Builder
	b.WriteString("🛍️ ORDER REQUEST\n\n")
	b.WriteString("📦 Product Details:\n")
	fmt.Fprintf(&b, "• Product: %s\n", order.ProductTitle)
	fmt.Fprintf(&b, "• Code: %s\n", order.ProductCode)
	fmt.Fprintf(&b, "• Size: %s\n", order.Size)
	fmt.Fprintf(&b, "• Quantity: %d\n\n", quantity)

	if order.Name != "" || order.Address != "" {
		b.WriteString("📍 Delivery Information:\n")
		if order.Name != "" {
			fmt.Fprintf(&b, "• Name: %s\n", order.Name)
		}
		if order.Phone != "" {
			fmt.Fprintf(&b, "• Phone: %s\n", order.Phone)
		}
		if order.Address != "" {
			fmt.Fprintf(&b, "• Address: %s\n", order.Address)
		}
		if order.Pincode != "" {
			fmt.Fprintf(&b, "• Pincode: %s\n", order.Pincode)
		}
		b.WriteString("\n")
	}

	if order.Notes != "" {
		fmt.Fprintf(&b, "📝 Notes: %s\n\n", order.Notes)
	}

	b.WriteString("Please confirm:\n")
	b.WriteString("✓ Availability\n")
	b.WriteString("✓ Total cost (including delivery)\n")
	b.WriteString("✓ Estimated delivery time\n")
	b.WriteString("✓ Payment options\n\n")
	b.WriteString("Thank you! 😊")
	return b.String()
}

// CustomMeasurementRequest asks about custom sizing for one product.
func (c *Composer) CustomMeasurementRequest(code, title string) string {
	return fmt.Sprintf("Hi! I'm interested in %s (Code: %s).\n\nI'd like to know:\n• Is custom sizing available?\n• Additional charges?\n• Measurement guide\n\nThank you!", title, code)
}

// OrderStatusInquiry asks for an update on a placed order.
func (c *Composer) OrderStatusInquiry(orderCode string) string {
	return fmt.Sprintf("Hi! I'd like to check the status of my order.\n\n📦 Order Code: %s\n\nCould you provide an update?\n\nThank you!", orderCode)
}

// ReturnRequest starts a return or exchange.
func (c *Composer) ReturnRequest(orderCode, reason string) string {
	return fmt.Sprintf("Hi! I need assistance with a return/exchange.\n\n📦 Order Code: %s\n📝 Reason: %s\n\nCould you guide me through the process?\n\nThank you!", orderCode, reason)
}

// SizingHelp asks for fit guidance on one product.
func (c *Composer) SizingHelp(code string) string {
	return fmt.Sprintf("Hi! I need help with sizing for product %s.\n\nCould you share:\n• Size chart\n• Fit guide\n• Your recommendation\n\nThank you!", code)
}

// CareInstructions asks for detailed care guidance.
func (c *Composer) CareInstructions(code string) string {
	return fmt.Sprintf("Hi! Could you share detailed care instructions for product %s?\n\nThank you!", code)
}

// StylingRequest asks for styling advice; the budget sentence appears only
// when a budget was given.
func (c *Composer) StylingRequest(occasion, budget string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi! I need styling advice for %s.", occasion)
	if budget != "" {
		fmt.Fprintf(&b, " My budget is %s.", budget)
	}
	b.WriteString("\n\nCould you suggest some looks?\n\nThank you! 😊")
	return b.String()
}

// BulkOrderInquiry opens a bulk purchase conversation.
func (c *Composer) BulkOrderInquiry(itemCount int, occasion string) string {
	return fmt.Sprintf("Hi! I'm looking to place a bulk order for %d pieces for %s.\n\nCould we discuss:\n• Bulk pricing\n• Customization options\n• Delivery timeline\n\nThank you!", itemCount, occasion)
}

// GiftWrappingInquiry asks about gifting options for one product.
func (c *Composer) GiftWrappingInquiry(code string) string {
	return fmt.Sprintf("Hi! I'd like to order %s as a gift.\n\nDo you offer:\n• Gift wrapping\n• Gift message card\n• Additional charges\n\nThank you!", code)
}
