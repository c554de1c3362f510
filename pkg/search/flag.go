package search

import "go.uber.org/atomic"

// Flag is the cooperative abort signal: a timer running in parallel with the
// searcher (or an explicit stop call from another goroutine) sets it, and the
// searcher polls it at the entry of every recursive call and between root
// siblings. Every access is a single atomic load or store, so no locks are
// needed -- an atomic boolean suffices (spec.md §5).
type Flag struct {
	done atomic.Bool
}

// NewFlag returns a cleared flag.
func NewFlag() *Flag {
	return &Flag{}
}

// Set raises the flag. Safe to call from any goroutine.
func (f *Flag) Set() {
	f.done.Store(true)
}

// IsSet reports whether the flag has been raised.
func (f *Flag) IsSet() bool {
	return f.done.Load()
}

// Reset lowers the flag, ready for a new search.
func (f *Flag) Reset() {
	f.done.Store(false)
}
