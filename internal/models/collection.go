package models

// Collection is a named grouping of products. Count is entered manually by the
// admin and is never reconciled against actual product membership; see
// DESIGN.md for the open inconsistency.
type Collection struct {
	BaseModel
	Name    string `gorm:"uniqueIndex" json:"name"`
	Tagline string `json:"tagline"`
	Image   string `json:"image"`
	Count   int    `json:"count"`
}
