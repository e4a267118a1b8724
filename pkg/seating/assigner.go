package seating

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Assigner holds the displayed board and serializes shuffles. A shuffle
// started while another is playing is ignored. The roster is never kept:
// callers pass the current one to every Load and Begin.
type Assigner struct {
	mu     sync.Mutex
	layout Layout
	timing Timing
	board  Board

	// loaded is the seed of the last accepted Load; shuffles leave it alone.
	loaded    int64
	hasLoaded bool

	wait   func(ctx context.Context, d time.Duration) error
	logger *slog.Logger
}

// Option configures an Assigner.
type Option func(*Assigner)

// WithTiming overrides the animation delays.
func WithTiming(t Timing) Option {
	return func(a *Assigner) { a.timing = t }
}

// WithWait overrides how the assigner sleeps between timeline steps.
func WithWait(wait func(ctx context.Context, d time.Duration) error) Option {
	return func(a *Assigner) {
		if wait != nil {
			a.wait = wait
		}
	}
}

// WithLogger sets the assigner logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Assigner) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewAssigner returns an Assigner with empty rows.
func NewAssigner(layout Layout, opts ...Option) *Assigner {
	a := &Assigner{
		layout: layout,
		timing: DefaultTiming,
		board:  emptyBoard(layout),
		wait:   sleep,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.logger = a.logger.With("component", "seating")
	return a
}

// Load seats roster with seed without animation. It reports false, leaving
// the board untouched, when the roster is empty or a shuffle is playing.
func (a *Assigner) Load(roster []Member, seed int64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.board.Phase == PhaseShuffling || len(roster) == 0 {
		return false
	}
	a.board = Assign(roster, seed, a.layout)
	a.loaded, a.hasLoaded = seed, true
	a.logger.Info("seats loaded", "seed", seed, "roster", len(roster))
	return true
}

// Loaded returns the seed of the last accepted Load.
func (a *Assigner) Loaded() (int64, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loaded, a.hasLoaded
}

// Board returns a copy of the displayed board.
func (a *Assigner) Board() Board {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.board.clone()
}

// Phase returns the current assigner state.
func (a *Assigner) Phase() Phase {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.board.Phase
}

// Begin moves the assigner to Shuffling and returns the timeline towards
// the arrangement of roster for seed. It returns false when the roster is
// empty or a shuffle is already playing; otherwise the caller must Play the
// timeline.
func (a *Assigner) Begin(roster []Member, seed int64) (Timeline, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(roster) == 0 || a.board.Phase == PhaseShuffling {
		return nil, false
	}
	next := Assign(roster, seed, a.layout)
	tl := Plan(a.board, next, a.timing)
	a.board = tl[0].Board
	return tl, true
}

// Play applies each step of tl at its offset and calls render with the new
// board. If ctx ends early the final step is applied at once so the
// assigner always returns to Settled.
func (a *Assigner) Play(ctx context.Context, tl Timeline, render func(Board)) {
	var elapsed time.Duration
	for i, step := range tl {
		if err := a.wait(ctx, step.At-elapsed); err != nil {
			final, _ := tl.Final()
			a.apply(final, render)
			a.logger.Warn("shuffle interrupted", "step", i, "err", err)
			return
		}
		elapsed = step.At
		a.apply(step.Board, render)
	}
}

// shuffle runs Begin then Play synchronously.
func (a *Assigner) shuffle(ctx context.Context, roster []Member, seed int64, render func(Board)) bool {
	tl, ok := a.Begin(roster, seed)
	if !ok {
		return false
	}
	a.logger.Info("shuffle started", "seed", seed, "duration", tl.Duration())
	a.Play(ctx, tl, render)
	return true
}

func (a *Assigner) apply(board Board, render func(Board)) {
	a.mu.Lock()
	a.board = board.clone()
	a.mu.Unlock()
	if render != nil {
		render(board.clone())
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
