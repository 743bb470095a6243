// internal/domain/notify/background.go
package notify

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// Region is a named page area with its own background pool
type Region string

// Page regions that rotate backgrounds
const (
	RegionHero     Region = "hero"
	RegionOffers   Region = "offers"
	RegionProducts Region = "products"
	RegionSignup   Region = "signup"
)

// defaultPools holds each region's candidate images
var defaultPools = map[Region][]string{
	RegionHero: {
		"https://images.unsplash.com/photo-1571019614242-c5c5dee9f50b?w=1400&q=80&auto=format&fit=crop",
		"https://images.unsplash.com/photo-1534367611697-7a0de2f0f7d9?w=1400&q=80&auto=format&fit=crop",
		"https://images.unsplash.com/photo-1554284126-aa88f22d8d7e?w=1400&q=80&auto=format&fit=crop",
	},
	RegionOffers: {
		"https://images.unsplash.com/photo-1605296867304-46d5465a13f1?w=1300&q=80&auto=format&fit=crop",
		"https://images.unsplash.com/photo-1558611848-73f7eb4001a1?w=1300&q=80&auto=format&fit=crop",
	},
	RegionProducts: {
		"https://images.unsplash.com/photo-1600185365483-26d7f220b33b?w=1300&q=80&auto=format&fit=crop",
		"https://images.unsplash.com/photo-1598971639058-5d9e04f0f32e?w=1300&q=80&auto=format&fit=crop",
	},
	RegionSignup: {
		"https://images.unsplash.com/photo-1514995428455-447d4443fa7f?w=1300&q=80&auto=format&fit=crop",
		"https://images.unsplash.com/photo-1517964603305-090973c0f6bf?w=1300&q=80&auto=format&fit=crop",
	},
}

// Rotator picks a pseudo-random background per region, once at startup
// and again on every tick. Picks are independent per region and per
// tick; repeats are allowed and nothing is persisted.
type Rotator struct {
	mu       sync.RWMutex
	pools    map[Region][]string
	current  map[Region]string
	interval time.Duration
	rng      *rand.Rand
}

// NewRotator creates a rotator over the default pools and performs the
// initial pick.
func NewRotator(interval time.Duration) *Rotator {
	r := &Rotator{
		pools:    defaultPools,
		current:  make(map[Region]string, len(defaultPools)),
		interval: interval,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	r.Rotate()
	return r
}

// Rotate re-picks every region's background
func (r *Rotator) Rotate() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for region, pool := range r.pools {
		if len(pool) == 0 {
			continue
		}
		r.current[region] = pool[r.rng.Intn(len(pool))]
	}
}

// Start rotates on the configured interval until ctx is cancelled
func (r *Rotator) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.Rotate()
			}
		}
	}()
}

// Snapshot returns the current background per region
func (r *Rotator) Snapshot() map[Region]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[Region]string, len(r.current))
	for region, url := range r.current {
		out[region] = url
	}
	return out
}
