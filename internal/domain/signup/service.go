// internal/domain/signup/service.go
package signup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/infrastructure/storage"
)

const signupListKey = "storefront:signups"

// emailPattern: local part, @, domain with at least one dot, no
// whitespace anywhere.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Service handles signup registration. It is independent of the cart;
// the only shared state is the storage backend.
type Service struct {
	store  storage.Store
	logger *logrus.Logger
	now    func() time.Time
}

// NewService creates a new signup service
func NewService(store storage.Store, logger *logrus.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// RegisterRequest represents signup form data
type RegisterRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Password       string `json:"password"`
	MembershipPlan string `json:"membership_plan"`
	AcceptedTerms  bool   `json:"accepted_terms"`
}

// RegisterResponse carries the name back for the welcome message; the
// caller is responsible for clearing the input form.
type RegisterResponse struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// Register validates the submission and appends a record to the signup
// list. Validation runs in order and stops at the first failure.
// Duplicate emails are permitted and no password policy is enforced;
// that is the intended minimal-validation contract.
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*RegisterResponse, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" || !req.AcceptedTerms {
		return nil, &ValidationError{Reason: "missing required field or terms not accepted"}
	}

	if !emailPattern.MatchString(req.Email) {
		return nil, &ValidationError{Reason: "invalid email format"}
	}

	records, err := s.list(ctx)
	if err != nil {
		return nil, err
	}

	joined := s.now().UTC()
	id := joined.UnixMilli()
	// Two submissions inside one millisecond would collide; bump past
	// the newest stored id.
	if n := len(records); n > 0 && id <= records[n-1].ID {
		id = records[n-1].ID + 1
	}

	records = append(records, Record{
		ID:             id,
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		MembershipPlan: req.MembershipPlan,
		JoinedAt:       joined,
	})

	if err := s.save(ctx, records); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"signup_id": id,
		"plan":      req.MembershipPlan,
	}).Info("Signup recorded")

	return &RegisterResponse{
		Name:    req.Name,
		Message: fmt.Sprintf("Welcome %s! Signup successful.", req.Name),
	}, nil
}

// List returns every stored signup record in submission order
func (s *Service) List(ctx context.Context) ([]Record, error) {
	return s.list(ctx)
}

func (s *Service) list(ctx context.Context) ([]Record, error) {
	data, err := s.store.Get(ctx, signupListKey)
	if errors.Is(err, storage.ErrNotFound) {
		return []Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load signup list: %w", err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.WithField("error", err.Error()).Warn("Corrupt signup list, resetting to empty")
		return []Record{}, nil
	}
	return records, nil
}

func (s *Service) save(ctx context.Context, records []Record) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode signup list: %w", err)
	}
	if err := s.store.Set(ctx, signupListKey, data); err != nil {
		return fmt.Errorf("failed to persist signup list: %w", err)
	}
	return nil
}
