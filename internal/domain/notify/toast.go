// internal/domain/notify/toast.go
package notify

import (
	"sync"
	"time"
)

// Toaster shows a single transient message. Showing a new message while
// one is visible replaces it and restarts the dismissal timer; there is
// no queue.
type Toaster struct {
	mu      sync.Mutex
	message string
	visible bool
	timer   *time.Timer
	delay   time.Duration
}

// NewToaster creates a toaster with the given dismissal delay
func NewToaster(delay time.Duration) *Toaster {
	return &Toaster{
		delay: delay,
	}
}

// Show displays message and arms the dismissal timer, cancelling any
// previous one.
func (t *Toaster) Show(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.message = message
	t.visible = true

	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = time.AfterFunc(t.delay, t.dismiss)
}

func (t *Toaster) dismiss() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.visible = false
	t.message = ""
}

// Current returns the visible message, if any
func (t *Toaster) Current() (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.message, t.visible
}

// Stop cancels the pending dismissal timer
func (t *Toaster) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.visible = false
	t.message = ""
}
