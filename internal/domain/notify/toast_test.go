// internal/domain/notify/toast_test.go
package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToasterShowAndDismiss(t *testing.T) {
	toaster := NewToaster(30 * time.Millisecond)

	toaster.Show("Dumbbells added to cart")

	msg, visible := toaster.Current()
	assert.True(t, visible)
	assert.Equal(t, "Dumbbells added to cart", msg)

	assert.Eventually(t, func() bool {
		_, visible := toaster.Current()
		return !visible
	}, time.Second, 5*time.Millisecond)

	msg, _ = toaster.Current()
	assert.Empty(t, msg)
}

func TestToasterReplaceRestartsTimer(t *testing.T) {
	toaster := NewToaster(50 * time.Millisecond)

	toaster.Show("first")
	time.Sleep(30 * time.Millisecond)
	toaster.Show("second")

	// The first timer would have fired by now; the replacement reset it.
	time.Sleep(30 * time.Millisecond)
	msg, visible := toaster.Current()
	require.True(t, visible)
	assert.Equal(t, "second", msg)

	assert.Eventually(t, func() bool {
		_, visible := toaster.Current()
		return !visible
	}, time.Second, 5*time.Millisecond)
}

func TestToasterStop(t *testing.T) {
	toaster := NewToaster(time.Hour)

	toaster.Show("pending")
	toaster.Stop()

	_, visible := toaster.Current()
	assert.False(t, visible)
}
