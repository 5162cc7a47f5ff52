package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/lookbook/internal/models"
)

func testCatalog() []models.Product {
	return []models.Product{
		{
			Code:           "SAR001",
			Title:          "Silk Chanderi Saree",
			CollectionName: "Festive Sarees",
			PriceRange:     "₹3,500 - ₹4,200",
			Sizes:          []string{"Free Size"},
			Occasion:       "festive",
			Style:          "traditional",
		},
		{
			Code:           "KUR001",
			Title:          "Cotton Straight Kurti",
			CollectionName: "Office Kurtis",
			PriceRange:     "₹1,200 - ₹1,800",
			Sizes:          []string{"S", "M", "L", "XL"},
			Occasion:       "casual",
			Style:          "contemporary",
		},
		{
			Code:           "KUR002",
			Title:          "Printed Anarkali Set",
			CollectionName: "Daily Wear",
			PriceRange:     "₹2,500 - ₹3,000",
			Sizes:          []string{"M", "L", "XL"},
			Occasion:       "casual",
			Style:          "contemporary",
		},
		{
			Code:           "SAR002",
			Title:          "Banarasi Silk Saree",
			CollectionName: "Festive Sarees",
			PriceRange:     "₹8,500 - ₹10,000",
			Sizes:          []string{"Free Size"},
			Occasion:       "festive",
			Style:          "traditional",
		},
	}
}

func codes(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Code)
	}
	return out
}

func TestVisibleIdentity(t *testing.T) {
	source := testCatalog()

	visible := Visible(source, "", NewSelection())

	require.Len(t, visible, len(source))
	assert.Equal(t, codes(source), codes(visible))
}

func TestVisiblePreservesSourceOrder(t *testing.T) {
	visible := Visible(testCatalog(), "", Selection{
		Occasion: OccasionAll,
		Style:    StyleContemporary,
		Size:     SizeAll,
		Budget:   BudgetAll,
	})

	assert.Equal(t, []string{"KUR001", "KUR002"}, codes(visible))
}

func TestVisibleIsSubsequence(t *testing.T) {
	source := testCatalog()

	selections := []Selection{
		NewSelection(),
		{Occasion: OccasionFestive, Style: StyleAll, Size: SizeAll, Budget: BudgetAll},
		{Occasion: OccasionAll, Style: StyleAll, Size: SizeM, Budget: BudgetAll},
		{Occasion: OccasionAll, Style: StyleAll, Size: SizeAll, Budget: Budget2000To5000},
		{Occasion: OccasionCasual, Style: StyleContemporary, Size: SizeL, Budget: BudgetUnder2000},
	}

	for _, sel := range selections {
		visible := Visible(source, "", sel)
		require.LessOrEqual(t, len(visible), len(source))

		// every survivor appears in the source, in source order
		cursor := 0
		for _, p := range visible {
			found := false
			for ; cursor < len(source); cursor++ {
				if source[cursor].Code == p.Code {
					found = true
					cursor++
					break
				}
			}
			require.True(t, found, "product %s out of order for selection %+v", p.Code, sel)
		}
	}
}

func TestVisibleConjunctiveComposition(t *testing.T) {
	source := testCatalog()

	occasionOnly := Visible(source, "", Selection{
		Occasion: OccasionCasual, Style: StyleAll, Size: SizeAll, Budget: BudgetAll,
	})
	sizeOnly := Visible(source, "", Selection{
		Occasion: OccasionAll, Style: StyleAll, Size: SizeM, Budget: BudgetAll,
	})
	both := Visible(source, "", Selection{
		Occasion: OccasionCasual, Style: StyleAll, Size: SizeM, Budget: BudgetAll,
	})

	var intersection []string
	for _, p := range occasionOnly {
		for _, q := range sizeOnly {
			if p.Code == q.Code {
				intersection = append(intersection, p.Code)
			}
		}
	}

	assert.Equal(t, intersection, codes(both))
}

func TestVisibleSizeMembershipNotEquality(t *testing.T) {
	visible := Visible(testCatalog(), "", Selection{
		Occasion: OccasionAll, Style: StyleAll, Size: SizeM, Budget: BudgetAll,
	})

	assert.Equal(t, []string{"KUR001", "KUR002"}, codes(visible))
}

func TestVisibleBudgetBucketBoundaries(t *testing.T) {
	boundary := []models.Product{{
		Code:       "BND001",
		PriceRange: "₹2,000 - ₹5,000",
		Sizes:      []string{"M"},
		Occasion:   "casual",
		Style:      "contemporary",
	}}

	cases := []struct {
		budget  Budget
		matches bool
	}{
		{BudgetUnder2000, false},
		{Budget2000To5000, true},
		{BudgetAbove5000, false},
	}

	for _, tc := range cases {
		sel := NewSelection()
		sel.Budget = tc.budget
		visible := Visible(boundary, "", sel)
		if tc.matches {
			assert.Len(t, visible, 1, "bucket %s", tc.budget)
		} else {
			assert.Empty(t, visible, "bucket %s", tc.budget)
		}
	}
}

func TestVisiblePrefersStoredMinPrice(t *testing.T) {
	// Stored bounds win over what the display text would parse to.
	products := []models.Product{{
		Code:       "STR001",
		PriceRange: "₹9,000 - ₹9,500",
		MinPrice:   1500,
		Sizes:      []string{"M"},
	}}

	sel := NewSelection()
	sel.Budget = BudgetUnder2000

	assert.Len(t, Visible(products, "", sel), 1)
}

func TestVisibleExcludesUnparseablePriceOnlyUnderBudget(t *testing.T) {
	products := []models.Product{{
		Code:       "BAD001",
		PriceRange: "price on request",
		Sizes:      []string{"M"},
		Occasion:   "casual",
		Style:      "contemporary",
	}}

	assert.Len(t, Visible(products, "", NewSelection()), 1)

	sel := NewSelection()
	sel.Budget = BudgetUnder2000
	assert.Empty(t, Visible(products, "", sel))
}

func TestVisibleCollectionScopePrecedesFacets(t *testing.T) {
	// No office kurti is festive: scoping then filtering yields empty, not an error.
	sel := NewSelection()
	sel.Occasion = OccasionFestive

	visible := Visible(testCatalog(), "Office Kurtis", sel)

	assert.Empty(t, visible)
}

func TestVisibleCollectionMatchIsExact(t *testing.T) {
	assert.Empty(t, Visible(testCatalog(), "office kurtis", NewSelection()))
	assert.Empty(t, Visible(testCatalog(), "Office", NewSelection()))
	assert.Len(t, Visible(testCatalog(), "Office Kurtis", NewSelection()), 1)
}

func TestVisibleIsReferentiallyTransparent(t *testing.T) {
	source := testCatalog()
	sel := Selection{Occasion: OccasionCasual, Style: StyleAll, Size: SizeAll, Budget: Budget2000To5000}

	first := Visible(source, "", sel)
	second := Visible(source, "", sel)

	assert.True(t, Equal(first, second))
	// the source catalog is untouched
	assert.Equal(t, []string{"SAR001", "KUR001", "KUR002", "SAR002"}, codes(source))
}

func TestEqualComparesStructurally(t *testing.T) {
	a := testCatalog()
	b := testCatalog()

	assert.True(t, Equal(a, b))

	b[0].Title = "Renamed"
	assert.False(t, Equal(a, b))

	assert.False(t, Equal(a, a[:2]))
	assert.True(t, Equal(nil, []models.Product{}))
}

func TestSelectionFromValues(t *testing.T) {
	assert.Equal(t, NewSelection(), SelectionFromValues("", "", "", ""))
	assert.Equal(t, NewSelection(), SelectionFromValues("all", "all", "all", "all"))

	sel := SelectionFromValues("festive", "traditional", "Free Size", "above5000")
	assert.Equal(t, OccasionFestive, sel.Occasion)
	assert.Equal(t, StyleTraditional, sel.Style)
	assert.Equal(t, SizeFree, sel.Size)
	assert.Equal(t, BudgetAbove5000, sel.Budget)
}
