package reminders

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DefaultSettleDelay separates one dismissed modal from the next.
const DefaultSettleDelay = 600 * time.Millisecond

// Player plays the audio cue for a reminder type. Failures are never fatal.
type Player interface {
	Play(ctx context.Context, t Type) error
}

// Surface shows a notice and returns once the user dismissed it.
type Surface interface {
	Show(ctx context.Context, n Notice) error
}

// Presenter drains the queue one notice at a time: cue, modal, settle delay,
// next. Only one drain loop runs at any moment.
type Presenter struct {
	mu         sync.Mutex
	queue      *Queue
	player     Player
	surface    Surface
	settle     time.Duration
	wait       func(ctx context.Context, d time.Duration) error
	logger     *slog.Logger
	presenting bool
	wg         sync.WaitGroup
}

// PresenterOption configures a Presenter.
type PresenterOption func(*Presenter)

// WithSettleDelay overrides the pause after each dismissal.
func WithSettleDelay(d time.Duration) PresenterOption {
	return func(p *Presenter) { p.settle = d }
}

// WithPresenterWait overrides how the presenter sleeps.
func WithPresenterWait(wait func(ctx context.Context, d time.Duration) error) PresenterOption {
	return func(p *Presenter) {
		if wait != nil {
			p.wait = wait
		}
	}
}

// WithPresenterLogger sets the presenter logger.
func WithPresenterLogger(logger *slog.Logger) PresenterOption {
	return func(p *Presenter) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewPresenter builds a Presenter draining queue onto surface. player may be nil.
func NewPresenter(queue *Queue, surface Surface, player Player, opts ...PresenterOption) *Presenter {
	p := &Presenter{
		queue:   queue,
		player:  player,
		surface: surface,
		settle:  DefaultSettleDelay,
		wait:    sleep,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With("component", "reminders", "operation", "present")
	return p
}

// Kick starts a drain loop unless one is running or the queue is empty.
func (p *Presenter) Kick(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.presenting || p.queue.Len() == 0 {
		return
	}
	p.presenting = true
	p.wg.Add(1)
	go p.drain(ctx)
}

// Presenting reports whether a notice is being shown or settling.
func (p *Presenter) Presenting() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.presenting
}

// Wait blocks until the current drain loop, if any, has finished.
func (p *Presenter) Wait() {
	p.wg.Wait()
}

func (p *Presenter) drain(ctx context.Context) {
	defer p.wg.Done()
	for {
		n, ok := p.next()
		if !ok {
			return
		}

		p.cue(ctx, n.Rule.Type)
		p.logger.Info("showing reminder", "type", string(n.Rule.Type), "id", n.ID)

		if err := p.surface.Show(ctx, n); err != nil {
			p.logger.Warn("reminder surface failed", "id", n.ID, "err", err)
		}
		if err := p.wait(ctx, p.settle); err != nil {
			p.stop()
			return
		}
	}
}

// next pops the head, clearing the presenting flag in the same critical
// section when the queue is empty so a concurrent Kick cannot be lost.
func (p *Presenter) next() (Notice, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	n, ok := p.queue.Pop()
	if !ok {
		p.presenting = false
	}
	return n, ok
}

func (p *Presenter) stop() {
	p.mu.Lock()
	p.presenting = false
	p.mu.Unlock()
}

func (p *Presenter) cue(ctx context.Context, t Type) {
	if p.player == nil {
		return
	}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				p.logger.Warn("audio cue panicked", "type", string(t), "panic", r)
			}
		}()
		if err := p.player.Play(ctx, t); err != nil {
			p.logger.Debug("audio cue failed", "type", string(t), "err", err)
		}
	}()
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
