// Package scroll maps a normalized scroll position over the project gallery
// into per-project animation states, navigation indicator states and the
// closing grid's visibility.
//
// Everything downstream of the progress Source is a pure function of the
// latest smoothed progress value. Consumers subscribe to the Source's Cell
// once and recompute on each notification.
package scroll

import "sync"

// Progress is the read side of a progress cell.
type Progress interface {
	Get() float64
	Subscribe(fn func(float64)) (unsubscribe func())
}

// Cell is an observable float64 with push-based subscriber notification.
// It has a single writer; subscribers are called synchronously on Set in
// the order they subscribed.
type Cell struct {
	mu     sync.Mutex
	value  float64
	nextID int
	subs   []subscriber
}

type subscriber struct {
	id int
	fn func(float64)
}

// NewCell returns a cell holding v.
func NewCell(v float64) *Cell {
	return &Cell{value: v}
}

// Get returns the latest value.
func (c *Cell) Get() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Set stores v and notifies subscribers if it differs from the current value.
func (c *Cell) Set(v float64) {
	c.mu.Lock()
	if v == c.value {
		c.mu.Unlock()
		return
	}
	c.value = v
	subs := make([]subscriber, len(c.subs))
	copy(subs, c.subs)
	c.mu.Unlock()

	// Notify outside the lock so subscribers may unsubscribe or read.
	for _, s := range subs {
		s.fn(v)
	}
}

// Subscribe registers fn for change notifications. The returned func
// removes the subscription and is safe to call more than once.
func (c *Cell) Subscribe(fn func(float64)) func() {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subs = append(c.subs, subscriber{id: id, fn: fn})
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			for i, s := range c.subs {
				if s.id == id {
					c.subs = append(c.subs[:i], c.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// Subscribers returns the number of live subscriptions.
func (c *Cell) Subscribers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subs)
}
