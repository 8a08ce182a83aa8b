// Package schedule computes SIP deduction dates.
//
// All functions are pure: the current time is always passed in.
// Month arithmetic follows time.AddDate, so a day-of-month that does not
// exist in the target month rolls forward into the following month
// (day 31 in a 30-day month lands on the 1st of the next month).
package schedule

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/sip-processor/internal/domain/error"
)

// Frequency is how often a SIP deducts
type Frequency string

// Frequencies
const (
	Daily     Frequency = "DAILY"
	Weekly    Frequency = "WEEKLY"
	Monthly   Frequency = "MONTHLY"
	Quarterly Frequency = "QUARTERLY"
)

// Deduction day bounds for MONTHLY plans
const (
	MinDeductionDay = 1
	MaxDeductionDay = 31
)

// IsValid reports whether f is a known frequency
func (f Frequency) IsValid() bool {
	switch f {
	case Daily, Weekly, Monthly, Quarterly:
		return true
	default:
		return false
	}
}

// ValidateDeductionDay checks the deduction day of a MONTHLY plan
func ValidateDeductionDay(day *int) error {
	if day == nil {
		return fmt.Errorf("%w: deduction day is required for MONTHLY SIP", errs.ErrInvalidSchedule)
	}
	if *day < MinDeductionDay || *day > MaxDeductionDay {
		return fmt.Errorf("%w: got %d", errs.ErrInvalidSchedule, *day)
	}
	return nil
}

// InitialNextDeduction returns the first deduction date of a new SIP.
// deductionDay is only read for MONTHLY.
func InitialNextDeduction(frequency Frequency, start time.Time, deductionDay int, now time.Time) time.Time {
	switch frequency {
	case Monthly:
		next := withDay(start, deductionDay)
		if next.Before(now) {
			next = next.AddDate(0, 1, 0)
		}
		return next
	case Weekly:
		return start.AddDate(0, 0, daysUntilMonday(start))
	case Daily:
		return start.AddDate(0, 0, 1)
	case Quarterly:
		return start.AddDate(0, 3, 0)
	default:
		return start
	}
}

// Advance returns the deduction date that follows current
func Advance(frequency Frequency, current time.Time) time.Time {
	switch frequency {
	case Monthly:
		return current.AddDate(0, 1, 0)
	case Weekly:
		return current.AddDate(0, 0, 7)
	case Daily:
		return current.AddDate(0, 0, 1)
	case Quarterly:
		return current.AddDate(0, 3, 0)
	default:
		return current
	}
}

// withDay moves t to the given day of its month, keeping the clock time
func withDay(t time.Time, day int) time.Time {
	return time.Date(t.Year(), t.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// daysUntilMonday is 0 for a Monday, otherwise the days to the coming Monday
func daysUntilMonday(t time.Time) int {
	return (8 - isoWeekday(t)) % 7
}

// isoWeekday numbers Monday 1 through Sunday 7
func isoWeekday(t time.Time) int {
	if t.Weekday() == time.Sunday {
		return 7
	}
	return int(t.Weekday())
}
