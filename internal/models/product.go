package models

import "github.com/lib/pq"

// Product is a lookbook catalog record. Code is the short human-assigned
// identifier shown on cards and used as a case-sensitive search key.
// CollectionName is a plain string reference: renaming a collection does not
// cascade into its products.
type Product struct {
	BaseModel
	Code           string         `gorm:"uniqueIndex" json:"code"`
	Title          string         `json:"title"`
	CollectionName string         `gorm:"index" json:"collection"`

	// PriceRange is the display text, e.g. "₹3,500 - ₹4,200". MinPrice and
	// MaxPrice are derived from it at ingestion; zero means unknown and the
	// filter engine falls back to scraping the text.
	PriceRange string `json:"price_range"`
	MinPrice   int    `json:"min_price"`
	MaxPrice   int    `json:"max_price"`

	Sizes    pq.StringArray `gorm:"type:text[]" json:"sizes"`
	Occasion string         `json:"occasion"`
	Style    string         `json:"style"`

	Image  string         `json:"image"`
	Images pq.StringArray `gorm:"type:text[]" json:"images"`

	Fabric      string `json:"fabric"`
	Fit         string `json:"fit"`
	Care        string `json:"care"`
	Stock       string `json:"stock"`
	Description string `json:"description"`
}

// DisplayImages returns the gallery for display, falling back to the primary
// image when no gallery was uploaded.
func (p Product) DisplayImages() []string {
	if len(p.Images) > 0 {
		return p.Images
	}
	if p.Image != "" {
		return []string{p.Image}
	}
	return nil
}
