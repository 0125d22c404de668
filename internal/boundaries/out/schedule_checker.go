package out

import "time"

// ScheduleChecker validates the meaning of a schedule beyond its grammar,
// such as reversed ranges or zero steps.
type ScheduleChecker interface {
	// Check returns an error describing why the expression can never be
	// scheduled. Expressions it cannot judge are accepted.
	Check(expression string) error

	// Next returns the first activation strictly after the given time.
	// It returns false for expressions without a calendar activation.
	Next(expression string, after time.Time) (time.Time, bool, error)
}
