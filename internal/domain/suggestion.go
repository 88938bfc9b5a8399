package domain

// Suggestion is a candidate bed or wake-up time together with the number of
// complete sleep cycles it accounts for.
type Suggestion struct {
	Time   ClockTime
	Cycles int
}
