package sleep

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noozes/sleepcalc/internal/domain"
)

func fixedClock(hour, minute, second int) func() time.Time {
	return func() time.Time {
		return time.Date(2025, time.January, 2, hour, minute, second, 0, time.Local)
	}
}

func TestService_FromNow(t *testing.T) {
	svc := NewService(WithClock(fixedClock(22, 30, 41)))

	got := Format(svc.FromNow(context.Background()))
	assert.Equal(t, []string{"12:15 AM", "1:45 AM", "3:15 AM", "4:45 AM", "6:15 AM", "7:45 AM"}, got)
}

func TestService_FromNowAlwaysSix(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		svc := NewService(WithClock(fixedClock(hour, 59, 59)))
		assert.Len(t, svc.FromNow(context.Background()), SuggestionCount)
	}
}

func TestService_WakeUpFrom(t *testing.T) {
	svc := NewService()

	got, err := svc.WakeUpFrom(context.Background(), "23:00")
	require.NoError(t, err)
	require.Len(t, got, SuggestionCount)
	assert.Equal(t, "12:45 AM", got[0].Time.String())
}

func TestService_BedtimeForEarliestFirst(t *testing.T) {
	svc := NewService()

	got, err := svc.BedtimeFor(context.Background(), "07:00")
	require.NoError(t, err)
	assert.Equal(t, []string{"9:45 PM", "11:15 PM", "12:45 AM", "2:15 AM", "3:45 AM", "5:15 AM"}, Format(got))
	assert.Equal(t, 6, got[0].Cycles)
	assert.Equal(t, 1, got[len(got)-1].Cycles)

	latest := mustClock(t, "06:45")
	for _, s := range got {
		assert.LessOrEqual(t, minutesBetween(s.Time, latest), domain.MinutesPerDay/2,
			"%s should fall before 6:45 AM", s.Time)
	}
}

func TestService_InvalidInput(t *testing.T) {
	svc := NewService()

	for _, in := range []string{"", "bad", "25:00", "7"} {
		_, err := svc.WakeUpFrom(context.Background(), in)
		assert.ErrorIs(t, err, ErrInvalidInput, in)
		assert.ErrorIs(t, err, domain.ErrInvalidClock, in)

		_, err = svc.BedtimeFor(context.Background(), in)
		assert.ErrorIs(t, err, ErrInvalidInput, in)
	}
}
