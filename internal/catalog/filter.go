package catalog

import (
	"reflect"

	"github.com/rs/zerolog/log"

	"github.com/example/lookbook/internal/models"
)

// Occasion is the occasion facet value.
type Occasion string

const (
	OccasionAll     Occasion = "all"
	OccasionFestive Occasion = "festive"
	OccasionCasual  Occasion = "casual"
)

// Style is the style facet value.
type Style string

const (
	StyleAll          Style = "all"
	StyleTraditional  Style = "traditional"
	StyleContemporary Style = "contemporary"
)

// Size is the size facet value. SizeAll is the wildcard; the rest are the
// fixed label set products draw from.
type Size string

const (
	SizeAll  Size = "all"
	SizeS    Size = "S"
	SizeM    Size = "M"
	SizeL    Size = "L"
	SizeXL   Size = "XL"
	SizeXXL  Size = "XXL"
	SizeFree Size = "Free Size"
)

// Budget is a named price bucket, not a numeric range.
type Budget string

const (
	BudgetAll        Budget = "all"
	BudgetUnder2000  Budget = "under2000"
	Budget2000To5000 Budget = "2000-5000"
	BudgetAbove5000  Budget = "above5000"
)

// matches reports whether a product's minimum price falls in the bucket.
func (b Budget) matches(minPrice int) bool {
	switch b {
	case BudgetUnder2000:
		return minPrice < 2000
	case Budget2000To5000:
		return minPrice >= 2000 && minPrice <= 5000
	case BudgetAbove5000:
		return minPrice > 5000
	}
	return true
}

// Selection is one immutable set of facet choices. Replace it on each user
// event instead of mutating it in place.
type Selection struct {
	Occasion Occasion
	Style    Style
	Size     Size
	Budget   Budget
}

// NewSelection returns a selection with every facet at its wildcard.
func NewSelection() Selection {
	return Selection{
		Occasion: OccasionAll,
		Style:    StyleAll,
		Size:     SizeAll,
		Budget:   BudgetAll,
	}
}

// SelectionFromValues builds a selection from raw query values. Empty strings
// mean the wildcard; anything else passes through to the predicate chain.
func SelectionFromValues(occasion, style, size, budget string) Selection {
	sel := NewSelection()
	if occasion != "" {
		sel.Occasion = Occasion(occasion)
	}
	if style != "" {
		sel.Style = Style(style)
	}
	if size != "" {
		sel.Size = Size(size)
	}
	if budget != "" {
		sel.Budget = Budget(budget)
	}
	return sel
}

// Visible narrows catalog to the products matching the collection selector and
// every active facet. Predicates apply in a fixed order, each on the output of
// the previous one, and the relative order of survivors matches the input.
// An empty collection means no collection scoping.
//
// Products whose price text yields no number are excluded from budget-filtered
// results and logged; they stay visible while the budget facet is "all".
func Visible(catalog []models.Product, collection string, sel Selection) []models.Product {
	filtered := catalog

	if collection != "" {
		filtered = retain(filtered, func(p models.Product) bool {
			return p.CollectionName == collection
		})
	}

	if sel.Occasion != OccasionAll {
		filtered = retain(filtered, func(p models.Product) bool {
			return Occasion(p.Occasion) == sel.Occasion
		})
	}

	if sel.Style != StyleAll {
		filtered = retain(filtered, func(p models.Product) bool {
			return Style(p.Style) == sel.Style
		})
	}

	if sel.Size != SizeAll {
		filtered = retain(filtered, func(p models.Product) bool {
			for _, s := range p.Sizes {
				if Size(s) == sel.Size {
					return true
				}
			}
			return false
		})
	}

	if sel.Budget != BudgetAll {
		filtered = retain(filtered, func(p models.Product) bool {
			minPrice := p.MinPrice
			if minPrice == 0 {
				parsed, err := MinPriceFromRange(p.PriceRange)
				if err != nil {
					log.Warn().
						Str("code", p.Code).
						Str("price_range", p.PriceRange).
						Msg("excluding product with unparseable price range from budget filter")
					return false
				}
				minPrice = parsed
			}
			return sel.Budget.matches(minPrice)
		})
	}

	return filtered
}

func retain(products []models.Product, keep func(models.Product) bool) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// Equal compares two visible subsets structurally. Callers use it to skip
// downstream work when a recompute produced the same result.
func Equal(a, b []models.Product) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !reflect.DeepEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}
