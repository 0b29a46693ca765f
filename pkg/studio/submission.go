package studio

import (
	"context"
	"sync"
)

// Outcome is how a save attempt settled.
type Outcome int

const (
	OutcomePending Outcome = iota
	OutcomeSaved
	OutcomeFailed
	OutcomeInvalid
)

func (o Outcome) String() string {
	switch o {
	case OutcomePending:
		return "pending"
	case OutcomeSaved:
		return "saved"
	case OutcomeFailed:
		return "failed"
	case OutcomeInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Submission tracks one save attempt. Its signals have already been emitted
// by the time Done is closed.
type Submission struct {
	// ID is sent as X-Request-ID and attached to log events.
	ID string
	// Overridden and Reset count the fields sent as values and defaults.
	// The payload itself is not kept once the request body is encoded.
	Overridden int
	Reset      int

	done    chan struct{}
	once    sync.Once
	mu      sync.Mutex
	outcome Outcome
	err     error
}

func newSubmission(id string, payload Payload) *Submission {
	return &Submission{
		ID:         id,
		Overridden: len(payload.Values),
		Reset:      len(payload.Defaults),
		done:       make(chan struct{}),
	}
}

// Done is closed once the attempt settles.
func (s *Submission) Done() <-chan struct{} {
	return s.done
}

// Wait blocks until the attempt settles or ctx ends. It returns nil on
// success, *TransportError or *ValidationErrors on failure.
func (s *Submission) Wait(ctx context.Context) error {
	select {
	case <-s.done:
		return s.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Outcome reports the current outcome.
func (s *Submission) Outcome() Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outcome
}

// Err reports the failure, if any.
func (s *Submission) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Submission) settle(outcome Outcome, err error) {
	s.once.Do(func() {
		s.mu.Lock()
		s.outcome = outcome
		s.err = err
		s.mu.Unlock()
		close(s.done)
	})
}
