package sleep

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/noozes/sleepcalc/internal/domain"
)

// ErrInvalidInput is returned when a requested time cannot be parsed.
var ErrInvalidInput = errors.New("invalid input")

// Service runs sleep calculations against the local wall clock.
type Service struct {
	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the source of the current time.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the logger used by the service.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService creates a Service using time.Now and the default logger.
func NewService(opts ...Option) *Service {
	s := &Service{
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FromNow returns wake-up times for someone going to bed right now.
func (s *Service) FromNow(ctx context.Context) []domain.Suggestion {
	start := domain.ClockFromTime(s.now())
	s.logger.DebugContext(ctx, "Calculating wake-up times from now", "start", start.Format24())
	return WakeTimes(start)
}

// WakeUpFrom returns wake-up times for the given 24-hour bedtime.
func (s *Service) WakeUpFrom(ctx context.Context, bedtime string) ([]domain.Suggestion, error) {
	start, err := domain.ParseClock(bedtime)
	if err != nil {
		return nil, fmt.Errorf("%w: bedtime: %w", ErrInvalidInput, err)
	}
	s.logger.DebugContext(ctx, "Calculating wake-up times", "bedtime", start.Format24())
	return WakeTimes(start), nil
}

// BedtimeFor returns bedtimes for the given 24-hour wake-up time, earliest
// bedtime first.
func (s *Service) BedtimeFor(ctx context.Context, wakeUp string) ([]domain.Suggestion, error) {
	wake, err := domain.ParseClock(wakeUp)
	if err != nil {
		return nil, fmt.Errorf("%w: wake-up: %w", ErrInvalidInput, err)
	}
	s.logger.DebugContext(ctx, "Calculating bedtimes", "wake_up", wake.Format24())
	out := BedTimes(wake)
	slices.Reverse(out)
	return out, nil
}

// Format renders suggestions as 12-hour clock strings.
func Format(suggestions []domain.Suggestion) []string {
	out := make([]string, len(suggestions))
	for i, s := range suggestions {
		out[i] = s.Time.String()
	}
	return out
}
