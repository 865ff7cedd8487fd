// Package feedback implements the transient "copied" acknowledgment of a copy
// button: the label flips to its copied caption and reverts after a fixed delay.
package feedback

import (
	"sync"
	"time"

	"github.com/joshdurbin/url-shortener-client/internal/domain"
)

// DefaultDelay is how long the copied caption stays visible
const DefaultDelay = 2000 * time.Millisecond

// Label is the copy button caption
type Label interface {
	SetCopied(copied bool)
}

// Task is a pending scheduled call
type Task interface {
	Stop() bool
}

// Scheduler runs f once after d
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Task
}

type timeScheduler struct{}

func (timeScheduler) AfterFunc(d time.Duration, f func()) Task {
	return time.AfterFunc(d, f)
}

// Feedback drives one copy button. Each Acknowledge restarts the revert task;
// only the most recent one reverts the label.
type Feedback struct {
	label     Label
	delay     time.Duration
	scheduler Scheduler
	now       func() time.Time

	mu         sync.Mutex
	pending    Task
	generation uint64
	state      domain.FeedbackState
}

// Option configures a Feedback
type Option func(*Feedback)

// WithDelay overrides DefaultDelay
func WithDelay(d time.Duration) Option {
	return func(f *Feedback) {
		f.delay = d
	}
}

// WithScheduler replaces the time.AfterFunc based scheduler
func WithScheduler(s Scheduler) Option {
	return func(f *Feedback) {
		f.scheduler = s
	}
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(f *Feedback) {
		f.now = now
	}
}

// New creates a Feedback for label
func New(label Label, opts ...Option) *Feedback {
	f := &Feedback{
		label:     label,
		delay:     DefaultDelay,
		scheduler: timeScheduler{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Acknowledge shows the copied caption and (re)starts the revert delay
func (f *Feedback) Acknowledge() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.pending != nil {
		f.pending.Stop()
	}
	f.generation++
	gen := f.generation

	f.state = domain.FeedbackState{Copied: true, ExpiresAt: f.now().Add(f.delay)}
	f.label.SetCopied(true)
	f.pending = f.scheduler.AfterFunc(f.delay, func() {
		f.revert(gen)
	})
}

// State returns the current feedback state
func (f *Feedback) State() domain.FeedbackState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Stop cancels a pending revert and restores the copy caption
func (f *Feedback) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.pending == nil {
		return
	}
	f.pending.Stop()
	f.pending = nil
	f.generation++
	f.state = domain.FeedbackState{}
	f.label.SetCopied(false)
}

func (f *Feedback) revert(gen uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	// a later Acknowledge owns the label now
	if gen != f.generation {
		return
	}
	f.pending = nil
	f.state = domain.FeedbackState{}
	f.label.SetCopied(false)
}
