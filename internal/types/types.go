// Package types provides shared types used across the parafind codebase.
package types

// WorkUnit is an ordered pair (path, depth) queued for a scanner to process.
//
// path is an absolute filesystem path: the canonicalized root for the seed,
// or the actual on-disk path for a discovered directory (including the
// symlink-named path when a symlink was followed). depth is the number of
// directory edges from the seed; the seed has depth 0.
type WorkUnit struct {
	Path  string
	Depth int
}

// Semaphore implements a counting semaphore using a buffered channel.
// It limits concurrent access to a resource by blocking when the limit is
// reached.
type Semaphore chan struct{}

// NewSemaphore creates a semaphore that allows up to n concurrent acquisitions.
func NewSemaphore(n int) Semaphore { return make(chan struct{}, n) }

// Acquire blocks until a slot is available, then claims it.
func (s Semaphore) Acquire() { s <- struct{}{} }

// Release frees a slot, unblocking one waiting Acquire call.
func (s Semaphore) Release() { <-s }
