// internal/domain/cart/service.go
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/infrastructure/storage"
)

// Service owns the cart mapping for every session. Each mutation loads
// the record, applies the change and writes the whole mapping back
// synchronously; there is no batching or async boundary.
type Service struct {
	store   storage.Store
	catalog *catalog.Service
	logger  *logrus.Logger
}

// NewService creates a new cart service
func NewService(store storage.Store, cat *catalog.Service, logger *logrus.Logger) *Service {
	return &Service{
		store:   store,
		catalog: cat,
		logger:  logger,
	}
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("storefront:cart:%s", sessionID)
}

// Get loads the cart record for a session. A missing record yields an
// empty mapping. Malformed persisted JSON also resets to empty: the
// reference behavior left this unhandled, and empty-state fallback is
// the chosen recovery policy.
func (s *Service) Get(ctx context.Context, sessionID string) (Record, error) {
	data, err := s.store.Get(ctx, cartKey(sessionID))
	if errors.Is(err, storage.ErrNotFound) {
		return Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		s.logger.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Warn("Corrupt cart record, resetting to empty")
		return Record{}, nil
	}
	if record == nil {
		record = Record{}
	}

	return record, nil
}

func (s *Service) save(ctx context.Context, sessionID string, record Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := s.store.Set(ctx, cartKey(sessionID), data); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}

// Increment adds one unit of a product to the cart. Unknown product
// ids are a guarded no-op.
func (s *Service) Increment(ctx context.Context, sessionID string, productID int) (Record, error) {
	if _, ok := s.catalog.Get(productID); !ok {
		return s.Get(ctx, sessionID)
	}

	record, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	key := strconv.Itoa(productID)
	record[key] = record[key] + 1

	if err := s.save(ctx, sessionID, record); err != nil {
		return nil, err
	}
	return record, nil
}

// Decrement removes one unit; a quantity-1 entry is deleted outright so
// zero quantities never persist. Missing entries are a no-op.
func (s *Service) Decrement(ctx context.Context, sessionID string, productID int) (Record, error) {
	record, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	key := strconv.Itoa(productID)
	qty, ok := record[key]
	if !ok {
		return record, nil
	}

	if qty > 1 {
		record[key] = qty - 1
	} else {
		delete(record, key)
	}

	if err := s.save(ctx, sessionID, record); err != nil {
		return nil, err
	}
	return record, nil
}

// Remove deletes the entry unconditionally
func (s *Service) Remove(ctx context.Context, sessionID string, productID int) (Record, error) {
	record, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	delete(record, strconv.Itoa(productID))

	if err := s.save(ctx, sessionID, record); err != nil {
		return nil, err
	}
	return record, nil
}

// Clear empties the mapping. Clearing an already-empty cart returns
// ErrEmptyCart so the caller can show the notice instead.
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	record, err := s.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if len(record) == 0 {
		return ErrEmptyCart
	}
	return s.save(ctx, sessionID, Record{})
}

// Total returns the sum of price*quantity over all entries. Entries
// whose product id no longer resolves contribute nothing; a reloaded
// record is kept verbatim (last-saved-state wins) but only resolvable
// lines are priced.
func (s *Service) Total(ctx context.Context, sessionID string) (int64, error) {
	record, err := s.Get(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return s.total(record), nil
}

func (s *Service) total(record Record) int64 {
	var total int64
	for _, line := range record.Lines() {
		if p, ok := s.catalog.Get(line.ProductID); ok {
			total += p.Price * int64(line.Quantity)
		}
	}
	return total
}

// Count returns the sum of quantities, for badge-style displays
func (s *Service) Count(ctx context.Context, sessionID string) (int, error) {
	record, err := s.Get(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return record.Count(), nil
}

// Checkout runs the simulated checkout. An empty cart fails with
// ErrEmptyCart. Without confirmation it only reports the total to
// confirm; with confirmation it clears the cart and thanks the user.
// No payment or order system is contacted.
func (s *Service) Checkout(ctx context.Context, sessionID string, confirm bool) (*CheckoutResult, error) {
	record, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(record) == 0 {
		return nil, ErrEmptyCart
	}

	total := s.total(record)

	if !confirm {
		return &CheckoutResult{
			Confirmed:  false,
			Total:      total,
			TotalLabel: formatTotal(total),
			Message:    fmt.Sprintf("Confirm purchase for %s?", formatTotal(total)),
		}, nil
	}

	if err := s.save(ctx, sessionID, Record{}); err != nil {
		return nil, err
	}

	return &CheckoutResult{
		Confirmed:  true,
		Total:      total,
		TotalLabel: formatTotal(total),
		Message:    "Thank you! Your order has been received. Our team will contact you.",
	}, nil
}
