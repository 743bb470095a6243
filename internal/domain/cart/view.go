// internal/domain/cart/view.go
package cart

import (
	"context"

	"github.com/your-org/storefront/internal/pkg/currency"
)

const emptyCartMessage = "Your cart is empty."

func formatTotal(total int64) string {
	return currency.Format(total)
}

// Render produces the full cart view for a session: every line with its
// resolved product details and total, plus the grand total. The view is
// a pure function of the record and the catalog, re-invoked after every
// mutation and on initial load.
func (s *Service) Render(ctx context.Context, sessionID string) (*View, error) {
	record, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.render(record), nil
}

func (s *Service) render(record Record) *View {
	if len(record) == 0 {
		return &View{
			Items:      []LineView{},
			Total:      0,
			TotalLabel: formatTotal(0),
			Empty:      true,
			Message:    emptyCartMessage,
			AriaHidden: true,
		}
	}

	lines := record.Lines()
	items := make([]LineView, 0, len(lines))
	var total int64
	count := 0

	for _, line := range lines {
		count += line.Quantity

		p, ok := s.catalog.Get(line.ProductID)
		if !ok {
			continue
		}

		lineTotal := p.Price * int64(line.Quantity)
		total += lineTotal
		items = append(items, LineView{
			ProductID:      p.ID,
			Name:           p.Name,
			ImageRef:       p.ImageRef,
			Quantity:       line.Quantity,
			LineTotal:      lineTotal,
			LineTotalLabel: formatTotal(lineTotal),
		})
	}

	return &View{
		Items:      items,
		Count:      count,
		Total:      total,
		TotalLabel: formatTotal(total),
		Empty:      false,
		AriaHidden: false,
	}
}
