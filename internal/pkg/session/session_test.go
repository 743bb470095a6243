// internal/pkg/session/session_test.go
package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "Storefront Backend"
	cfg.Session.Secret = "test-secret-that-is-long-enough-for-hs256"
	cfg.Session.TokenExpiry = time.Hour
	return cfg
}

func TestMintAndValidate(t *testing.T) {
	m := NewManager(testConfig())

	token, sessionID, err := m.Mint()
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, sessionID)

	got, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, sessionID, got)
}

func TestMintedIDsAreUnique(t *testing.T) {
	m := NewManager(testConfig())

	_, first, err := m.Mint()
	require.NoError(t, err)
	_, second, err := m.Mint()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestValidateRejectsGarbage(t *testing.T) {
	m := NewManager(testConfig())

	_, err := m.Validate("not-a-token")
	assert.Error(t, err)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, _, err := NewManager(testConfig()).Mint()
	require.NoError(t, err)

	other := testConfig()
	other.Session.Secret = "a-different-secret-also-long-enough!!"

	_, err = NewManager(other).Validate(token)
	assert.Error(t, err)
}

func TestValidateRejectsExpired(t *testing.T) {
	cfg := testConfig()
	cfg.Session.TokenExpiry = -time.Minute

	m := NewManager(cfg)
	token, _, err := m.Mint()
	require.NoError(t, err)

	_, err = m.Validate(token)
	assert.Error(t, err)
}
