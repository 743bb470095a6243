// internal/domain/signup/service_test.go
package signup

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/infrastructure/storage"
)

func newTestService() (*Service, storage.Store) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	store := storage.NewMemoryStore()
	return NewService(store, logger), store
}

func validRequest() *RegisterRequest {
	return &RegisterRequest{
		Name:           "Ali",
		Email:          "ali@example.com",
		Phone:          "+92-300-1234567",
		Password:       "secret",
		MembershipPlan: "gold",
		AcceptedTerms:  true,
	}
}

func TestRegisterSuccess(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	resp, err := svc.Register(ctx, validRequest())
	require.NoError(t, err)
	assert.Equal(t, "Ali", resp.Name)
	assert.Equal(t, "Welcome Ali! Signup successful.", resp.Message)

	records, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "ali@example.com", records[0].Email)
	assert.Equal(t, "gold", records[0].MembershipPlan)
	assert.Positive(t, records[0].ID)
}

func TestRegisterValidationOrder(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*RegisterRequest)
		reason string
	}{
		{"missing name", func(r *RegisterRequest) { r.Name = "" }, "missing required field or terms not accepted"},
		{"missing email", func(r *RegisterRequest) { r.Email = "" }, "missing required field or terms not accepted"},
		{"missing password", func(r *RegisterRequest) { r.Password = "" }, "missing required field or terms not accepted"},
		{"terms not accepted", func(r *RegisterRequest) { r.AcceptedTerms = false }, "missing required field or terms not accepted"},
		{"email without dot", func(r *RegisterRequest) { r.Email = "a@b" }, "invalid email format"},
		{"email with space", func(r *RegisterRequest) { r.Email = "a b@c.com" }, "invalid email format"},
		{"email without at", func(r *RegisterRequest) { r.Email = "abc.com" }, "invalid email format"},
		// A blank email fails the presence check before the format check.
		{"blank email reason", func(r *RegisterRequest) { r.Email = "" }, "missing required field or terms not accepted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := svc.Register(ctx, req)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.reason, verr.Reason)
		})
	}

	// No failed submission reached the list.
	records, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRegisterMinimalEmailAccepted(t *testing.T) {
	svc, _ := newTestService()

	req := validRequest()
	req.Email = "a@b.c"
	_, err := svc.Register(context.Background(), req)
	assert.NoError(t, err)
}

func TestRegisterAllowsDuplicateEmails(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, validRequest())
	require.NoError(t, err)
	_, err = svc.Register(ctx, validRequest())
	require.NoError(t, err)

	records, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestRegisterIDsAreUniqueAndIncreasing(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	// Freeze the clock so every submission lands in the same millisecond.
	frozen := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return frozen }

	for i := 0; i < 3; i++ {
		_, err := svc.Register(ctx, validRequest())
		require.NoError(t, err)
	}

	records, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	for i := 1; i < len(records); i++ {
		assert.Greater(t, records[i].ID, records[i-1].ID)
	}
}

func TestPasswordIsNotStored(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, validRequest())
	require.NoError(t, err)

	data, err := store.Get(ctx, signupListKey)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret")
}

func TestCorruptListResetsToEmpty(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, signupListKey, []byte("[broken")))

	records, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	// Registration over a corrupt list starts fresh.
	_, err = svc.Register(ctx, validRequest())
	require.NoError(t, err)

	records, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
