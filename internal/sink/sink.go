// Package sink collects the paths scanners accept into a single ordered
// output stream for the driver to consume.
package sink

// Sink is a thin channel wrapper scanners write accepted paths to and the
// driver reads results from. It has no ordering guarantee across
// concurrent writers: consumers needing deterministic output sort the
// drained slice themselves.
type Sink struct {
	ch chan string
}

// New creates a Sink with the given channel capacity. A larger capacity
// lets scanners emit without blocking on a slow consumer; the engine
// sizes this off the worker count.
func New(capacity int) *Sink {
	if capacity < 1 {
		capacity = 1
	}
	return &Sink{ch: make(chan string, capacity)}
}

// Emit sends an accepted path downstream. Blocks if the channel is full.
func (s *Sink) Emit(path string) { s.ch <- path }

// Results returns the receive-only channel the driver ranges over.
func (s *Sink) Results() <-chan string { return s.ch }

// Close closes the underlying channel. Callers must ensure no goroutine
// calls Emit after Close.
func (s *Sink) Close() { close(s.ch) }
