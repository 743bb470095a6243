// internal/pkg/currency/currency.go
package currency

import "strconv"

// Format renders an integer rupee amount as a display string, e.g.
// Format(55500) == "Rs. 55,500". Prices carry no fractional minor
// units, so there is nothing to round.
func Format(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)

	// Insert a comma every three digits from the right.
	var grouped []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, d)
	}

	out := "Rs. " + string(grouped)
	if negative {
		out = "Rs. -" + string(grouped)
	}
	return out
}
