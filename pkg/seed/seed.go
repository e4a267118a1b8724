package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/arnavshah/office-dashboard/pkg/metrics"
)

var (
	// ErrUnauthorized is returned when the update credential is missing or wrong.
	ErrUnauthorized = errors.New("seed: invalid shuffle password")
	// ErrPersistence is returned when the seed store cannot be read or written.
	ErrPersistence = errors.New("seed: persistence failure")
)

// Source tells where the authoritative seed came from.
type Source string

const (
	SourceDate      Source = "date"
	SourcePersisted Source = "persisted"
)

// Store persists the singleton explicit seed.
type Store interface {
	// ReadSeed returns the stored seed, or ok=false when none has been saved.
	ReadSeed(ctx context.Context) (seed int64, ok bool, err error)
	WriteSeed(ctx context.Context, seed int64) error
}

// Verifier checks the update credential.
type Verifier interface {
	Verify(credential string) bool
}

// DateSeed hashes date formatted as YYYY-MM-DD with the 31-multiplier
// rolling string hash on wrapping 32-bit signed arithmetic and returns its
// absolute value. The calendar date is read in date's own location.
func DateSeed(date time.Time) int64 {
	y, m, d := date.Date()
	return hashAbs(fmt.Sprintf("%04d-%02d-%02d", y, int(m), d))
}

func hashAbs(s string) int64 {
	var h int32
	for _, c := range []byte(s) {
		h = 31*h + int32(c)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return v
}

// Service owns the authoritative seating seed.
type Service struct {
	store    Store
	verifier Verifier
	now      func() time.Time
	location *time.Location
	logger   *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source used for the date-derived seed.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLocation sets the timezone whose calendar date feeds the date seed.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithLogger sets the service logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService constructs a Service over the given store and credential check.
func NewService(store Store, verifier Verifier, opts ...Option) *Service {
	s := &Service{
		store:    store,
		verifier: verifier,
		now:      time.Now,
		location: time.Local,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "seed")
	return s
}

// Today returns the date-derived seed for the current calendar date. It is
// recomputed on every call so it follows day boundaries.
func (s *Service) Today() int64 {
	return DateSeed(s.now().In(s.location))
}

// Current returns the persisted seed when one exists, otherwise today's date seed.
func (s *Service) Current(ctx context.Context) (int64, Source, error) {
	stored, ok, err := s.store.ReadSeed(ctx)
	if err != nil {
		s.logger.Error("read seed failed", "operation", "current", "err", err)
		return 0, "", fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if ok {
		return stored, SourcePersisted, nil
	}
	return s.Today(), SourceDate, nil
}

// Update stores newSeed as the explicit seed after checking credential.
// Nothing is written when the credential is rejected.
func (s *Service) Update(ctx context.Context, newSeed int64, credential string) (int64, error) {
	logger := s.logger.With("operation", "update")

	if s.verifier == nil || !s.verifier.Verify(credential) {
		metrics.RecordSeedUpdate("unauthorized")
		logger.Warn("seed update rejected")
		return 0, ErrUnauthorized
	}

	if err := s.store.WriteSeed(ctx, newSeed); err != nil {
		metrics.RecordSeedUpdate("failed")
		logger.Error("write seed failed", "seed", newSeed, "err", err)
		return 0, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	metrics.RecordSeedUpdate("ok")
	logger.Info("seed updated", "seed", newSeed)
	return newSeed, nil
}
