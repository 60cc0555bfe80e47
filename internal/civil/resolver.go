package civil

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidWeekday = errors.New("invalid day of week")
	// ErrConsistency means a computed date does not map back to the requested
	// day of week. It signals a defect, the date must not be used.
	ErrConsistency = errors.New("civil date consistency check failed")
)

// Resolver maps (day of week, week offset) to concrete civil dates.
// Weeks start on Monday; Sunday closes the week.
type Resolver struct {
	clock *Clock
}

func NewResolver(clock *Clock) *Resolver {
	return &Resolver{
		clock: clock,
	}
}

// DateForDayOfWeek returns the date of target in the current civil week,
// shifted by weekOffset weeks.
func (r *Resolver) DateForDayOfWeek(target time.Weekday, weekOffset int) (Date, error) {
	return r.DateForDayOfWeekFrom(r.clock.Today(), target, weekOffset)
}

// DateForDayOfWeekFrom is DateForDayOfWeek with an explicit "today".
func (r *Resolver) DateForDayOfWeekFrom(today Date, target time.Weekday, weekOffset int) (Date, error) {
	if target < time.Sunday || target > time.Saturday {
		return Date{}, fmt.Errorf("%w: %d", ErrInvalidWeekday, target)
	}

	loc := r.clock.Location()
	middayToday := today.In(loc)
	monday := middayToday.AddDate(0, 0, -mondayIndex(middayToday.Weekday())+weekOffset*7)
	resolved := monday.AddDate(0, 0, mondayIndex(target))

	date, weekday := r.clock.ToCivil(resolved)
	if weekday != target {
		return Date{}, fmt.Errorf(
			"%w: resolved %s is a %s, wanted %s (today %s, week offset %d)",
			ErrConsistency, date, weekday, target, today, weekOffset,
		)
	}

	return date, nil
}

// WeekDates returns Monday..Sunday of the civil week at weekOffset.
func (r *Resolver) WeekDates(weekOffset int) ([]Date, error) {
	today := r.clock.Today()
	dates := make([]Date, 0, 7)
	for i := 0; i < 7; i++ {
		weekday := time.Weekday((i + 1) % 7)
		d, err := r.DateForDayOfWeekFrom(today, weekday, weekOffset)
		if err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, nil
}

// mondayIndex: Monday=0 .. Sunday=6
func mondayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}
