package catalog

import "errors"

// ErrNoPrice is returned when a price range text contains no number.
var ErrNoPrice = errors.New("price range contains no number")

// PriceBounds extracts the minimum and maximum integer prices from display
// text such as "₹3,500 - ₹4,200". The first number found is the minimum and
// the last is the maximum; a single number serves as both. Commas between
// digits are thousands separators and do not split a number. Currency symbols
// are ignored, no normalization is performed.
func PriceBounds(rangeText string) (minPrice, maxPrice int, err error) {
	numbers := extractNumbers(rangeText)
	if len(numbers) == 0 {
		return 0, 0, ErrNoPrice
	}
	return numbers[0], numbers[len(numbers)-1], nil
}

// MinPriceFromRange extracts just the minimum price. This is the legacy
// fallback for rows ingested before structured bounds were stored.
func MinPriceFromRange(rangeText string) (int, error) {
	minPrice, _, err := PriceBounds(rangeText)
	return minPrice, err
}

func extractNumbers(s string) []int {
	var numbers []int
	current := 0
	inNumber := false

	runes := []rune(s)
	for i, r := range runes {
		switch {
		case r >= '0' && r <= '9':
			current = current*10 + int(r-'0')
			inNumber = true
		case r == ',' && inNumber && i+1 < len(runes) && runes[i+1] >= '0' && runes[i+1] <= '9':
			// thousands separator inside a number
		default:
			if inNumber {
				numbers = append(numbers, current)
				current = 0
				inNumber = false
			}
		}
	}
	if inNumber {
		numbers = append(numbers, current)
	}
	return numbers
}
