package reminders

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/arnavshah/office-dashboard/pkg/metrics"
)

// DefaultInterval is the polling cadence of Run.
const DefaultInterval = 5 * time.Second

// Kicker starts presentation when notices are pending.
type Kicker interface {
	Kick(ctx context.Context)
}

// Scheduler matches the rule table against the clock and queues each rule
// type at most once per day. The fired set is reset only when a poll sees a
// different weekday than the previous poll. The fired set is held in memory,
// so a restart inside a window can fire the same rule again.
type Scheduler struct {
	mu       sync.Mutex
	rules    RuleSet
	queue    *Queue
	kicker   Kicker
	now      func() time.Time
	location *time.Location
	newID    func() string
	logger   *slog.Logger

	fired   map[Type]struct{}
	lastDay time.Weekday
	seenDay bool
}

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithSchedulerClock overrides the time source.
func WithSchedulerClock(now func() time.Time) SchedulerOption {
	return func(s *Scheduler) {
		if now != nil {
			s.now = now
		}
	}
}

// WithSchedulerLocation sets the timezone the rule windows are read in.
func WithSchedulerLocation(loc *time.Location) SchedulerOption {
	return func(s *Scheduler) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithSchedulerLogger sets the scheduler logger.
func WithSchedulerLogger(logger *slog.Logger) SchedulerOption {
	return func(s *Scheduler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewScheduler builds a Scheduler feeding queue. kicker may be nil when the
// queue is drained elsewhere.
func NewScheduler(rules RuleSet, queue *Queue, kicker Kicker, opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		rules:    rules,
		queue:    queue,
		kicker:   kicker,
		now:      time.Now,
		location: time.Local,
		newID:    uuid.NewString,
		logger:   slog.Default(),
		fired:    make(map[Type]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "reminders")
	return s
}

// Check runs one poll and returns the notices it queued, in rule order.
func (s *Scheduler) Check(ctx context.Context) []Notice {
	now := s.now().In(s.location)
	day, hour, minute := now.Weekday(), now.Hour(), now.Minute()

	s.mu.Lock()
	if !s.seenDay || day != s.lastDay {
		if len(s.fired) > 0 {
			s.logger.Info("new day, clearing fired reminders", "day", day.String(), "cleared", len(s.fired))
		}
		s.fired = make(map[Type]struct{})
		s.lastDay = day
		s.seenDay = true
	}

	var queued []Notice
	for _, rule := range s.rules.rules {
		if _, done := s.fired[rule.Type]; done {
			continue
		}
		if !rule.AllowsDay(day) || !rule.InWindow(hour, minute) {
			continue
		}
		s.fired[rule.Type] = struct{}{}
		n := Notice{ID: s.newID(), Rule: rule, EnqueuedAt: now}
		s.queue.Push(n)
		queued = append(queued, n)
	}
	s.mu.Unlock()

	for _, n := range queued {
		metrics.RecordReminderFired(string(n.Rule.Type))
		s.logger.Info("reminder queued", "type", string(n.Rule.Type), "id", n.ID)
	}
	if s.kicker != nil && s.queue.Len() > 0 {
		s.kicker.Kick(ctx)
	}
	return queued
}

// Fired returns the types already fired today, in rule order.
func (s *Scheduler) Fired() []Type {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Type
	for _, r := range s.rules.rules {
		if _, ok := s.fired[r.Type]; ok {
			out = append(out, r.Type)
		}
	}
	return out
}

// Run checks once immediately and then every interval until ctx ends.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	s.logger.Info("reminder scheduler started", "interval", interval, "rules", s.rules.Len())

	s.Check(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("reminder scheduler stopped")
			return
		case <-ticker.C:
			s.Check(ctx)
		}
	}
}
