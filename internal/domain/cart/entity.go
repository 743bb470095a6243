// internal/domain/cart/entity.go
package cart

import (
	"errors"
	"strconv"
)

// ErrEmptyCart is returned by Checkout and Clear when the mapping has
// no entries. It is reported to the user as a blocking notice, never a
// crash.
var ErrEmptyCart = errors.New("cart is empty")

// Record is the persisted cart state: product id (as a string key, the
// way it is JSON-encoded) mapped to a positive quantity. Entries are
// deleted rather than stored at zero.
type Record map[string]int

// Line is one derived cart line; it is never stored directly
type Line struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// LineView is a rendered cart line with product details resolved
type LineView struct {
	ProductID      int    `json:"product_id"`
	Name           string `json:"name"`
	ImageRef       string `json:"image_ref"`
	Quantity       int    `json:"quantity"`
	LineTotal      int64  `json:"line_total"`
	LineTotalLabel string `json:"line_total_label"`
}

// View is the full rendering of the cart record. It is recomputed from
// scratch after every mutation; there is no diffing.
type View struct {
	Items      []LineView `json:"items"`
	Count      int        `json:"count"`
	Total      int64      `json:"total"`
	TotalLabel string     `json:"total_label"`
	Empty      bool       `json:"empty"`
	Message    string     `json:"message,omitempty"`
	AriaHidden bool       `json:"aria_hidden"`
}

// CheckoutResult reports the outcome of the simulated checkout flow
type CheckoutResult struct {
	Confirmed  bool   `json:"confirmed"`
	Total      int64  `json:"total"`
	TotalLabel string `json:"total_label"`
	Message    string `json:"message"`
}

// Lines converts the record into derived lines ordered by product id
func (r Record) Lines() []Line {
	lines := make([]Line, 0, len(r))
	for key, qty := range r {
		id, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		lines = append(lines, Line{ProductID: id, Quantity: qty})
	}
	sortLines(lines)
	return lines
}

// Count returns the sum of quantities
func (r Record) Count() int {
	count := 0
	for _, qty := range r {
		count += qty
	}
	return count
}

func sortLines(lines []Line) {
	// Insertion sort; carts hold a handful of lines.
	for i := 1; i < len(lines); i++ {
		for j := i; j > 0 && lines[j-1].ProductID > lines[j].ProductID; j-- {
			lines[j-1], lines[j] = lines[j], lines[j-1]
		}
	}
}
