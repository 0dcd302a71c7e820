package compare

import (
	"sync"
	"time"
)

const (
	DefaultCapacity    = 3
	DefaultOverflowTTL = 3 * time.Second
)

// ToggleResult reports what a Toggle call did. Overflow is not an error:
// a full set is an expected UI condition, so the call succeeds and leaves
// the set unchanged.
type ToggleResult string

const (
	ToggleAdded    ToggleResult = "added"
	ToggleRemoved  ToggleResult = "removed"
	ToggleRejected ToggleResult = "rejected"
)

// SelectionSet is an ordered, deduplicated, capacity-limited collection of
// items keyed by an identity accessor. It backs the product comparison
// drawer: one instance per session or view, discarded with it.
//
// A rejected Toggle raises a transient overflow signal that auto-clears
// after the configured TTL. The reset timer is owned by the set: a later
// Toggle supersedes it and Close stops it, so a discarded set leaks no
// timers.
type SelectionSet[T any, K comparable] struct {
	mu       sync.Mutex
	identity func(T) K
	capacity int
	ttl      time.Duration
	items    []T
	overflow bool
	timer    *time.Timer
	closed   bool
}

type Option[T any, K comparable] func(*SelectionSet[T, K])

func WithCapacity[T any, K comparable](n int) Option[T, K] {
	return func(s *SelectionSet[T, K]) {
		if n > 0 {
			s.capacity = n
		}
	}
}

func WithOverflowTTL[T any, K comparable](d time.Duration) Option[T, K] {
	return func(s *SelectionSet[T, K]) {
		if d > 0 {
			s.ttl = d
		}
	}
}

func NewSelectionSet[T any, K comparable](identity func(T) K, opts ...Option[T, K]) *SelectionSet[T, K] {
	s := &SelectionSet[T, K]{
		identity: identity,
		capacity: DefaultCapacity,
		ttl:      DefaultOverflowTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Toggle removes the item when one with the same identity is present,
// appends it when there is room, and rejects it (raising the overflow
// signal) when the set is full. Toggle is its own inverse as long as no
// overflow intervenes.
func (s *SelectionSet[T, K]) Toggle(item T) ToggleResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.identity(item)
	for i := range s.items {
		if s.identity(s.items[i]) == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.clearOverflowLocked()
			return ToggleRemoved
		}
	}

	if len(s.items) >= s.capacity {
		s.raiseOverflowLocked()
		return ToggleRejected
	}

	s.items = append(s.items, item)
	s.clearOverflowLocked()
	return ToggleAdded
}

// Remove drops the item with the given identity; no-op when absent.
func (s *SelectionSet[T, K]) Remove(id K) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.identity(s.items[i]) == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

func (s *SelectionSet[T, K]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.clearOverflowLocked()
}

// Items returns the surviving members in insertion order.
func (s *SelectionSet[T, K]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

func (s *SelectionSet[T, K]) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *SelectionSet[T, K]) Contains(id K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.identity(s.items[i]) == id {
			return true
		}
	}
	return false
}

// OverflowSignaled reports whether a rejected addition is still being
// surfaced. Advisory only.
func (s *SelectionSet[T, K]) OverflowSignaled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.overflow
}

// Close stops any pending overflow reset. Call when the owning session or
// view ends.
func (s *SelectionSet[T, K]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.stopTimerLocked()
	s.overflow = false
}

func (s *SelectionSet[T, K]) raiseOverflowLocked() {
	if s.closed {
		return
	}
	s.overflow = true
	s.stopTimerLocked()
	s.timer = time.AfterFunc(s.ttl, s.expireOverflow)
}

func (s *SelectionSet[T, K]) clearOverflowLocked() {
	s.overflow = false
	s.stopTimerLocked()
}

func (s *SelectionSet[T, K]) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *SelectionSet[T, K]) expireOverflow() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.overflow = false
	s.timer = nil
}
