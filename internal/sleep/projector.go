// Package sleep projects bed and wake-up times in whole sleep cycles.
package sleep

import "github.com/noozes/sleepcalc/internal/domain"

const (
	// CycleMinutes is the length of one sleep cycle.
	CycleMinutes = 90
	// FallAsleepMinutes is the time allowed for falling asleep.
	FallAsleepMinutes = 15
	// SuggestionCount is the number of suggestions per calculation.
	SuggestionCount = 6
)

// WakeTimes returns the wake-up times after 1..SuggestionCount complete
// cycles for someone going to bed at start, soonest first.
func WakeTimes(start domain.ClockTime) []domain.Suggestion {
	out := make([]domain.Suggestion, 0, SuggestionCount)
	current := start.Add(FallAsleepMinutes)
	for cycles := 1; cycles <= SuggestionCount; cycles++ {
		current = current.Add(CycleMinutes)
		out = append(out, domain.Suggestion{Time: current, Cycles: cycles})
	}
	return out
}

// BedTimes returns the bedtimes that allow 1..SuggestionCount complete
// cycles before wakeUp. The result starts with the one-cycle bedtime, so it
// runs from the latest bedtime to the earliest.
func BedTimes(wakeUp domain.ClockTime) []domain.Suggestion {
	out := make([]domain.Suggestion, 0, SuggestionCount)
	current := wakeUp
	for cycles := 1; cycles <= SuggestionCount; cycles++ {
		current = current.Sub(CycleMinutes)
		out = append(out, domain.Suggestion{Time: current.Sub(FallAsleepMinutes), Cycles: cycles})
	}
	return out
}

// SleepHours returns the hours of sleep covered by the given number of cycles.
func SleepHours(cycles int) float64 {
	return float64(cycles*CycleMinutes) / 60
}
