package production

import (
	"github.com/comalice/immutalint/internal/primitives"
)

// StreamPublisher is a core.Reporter that forwards accepted violations over
// a buffered channel it owns, for embedding the engine in a host that
// consumes findings as a stream. Non-blocking publish with drop on
// backpressure.
type StreamPublisher struct {
	ch chan primitives.Violation
}

// NewStreamPublisher creates a StreamPublisher buffering up to size
// violations. Sizes below one are raised to one.
func NewStreamPublisher(size int) *StreamPublisher {
	if size < 1 {
		size = 1
	}
	return &StreamPublisher{ch: make(chan primitives.Violation, size)}
}

// Violations returns the receive side of the stream.
func (p *StreamPublisher) Violations() <-chan primitives.Violation {
	return p.ch
}

// Report forwards the violation, dropping it when the buffer is full.
func (p *StreamPublisher) Report(v primitives.Violation) error {
	select {
	case p.ch <- v:
		return nil
	default:
		return nil // Non-blocking drop
	}
}

// Close closes the stream. No Report may follow a Close.
func (p *StreamPublisher) Close() error {
	close(p.ch)
	return nil
}
