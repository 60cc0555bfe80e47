package schedule

import (
	"fmt"
	"time"

	"github.com/2beens/workoutdelivery/internal/civil"
	"github.com/2beens/workoutdelivery/internal/workouts"
)

type Slot struct {
	Date         civil.Date   `json:"date"`
	Weekday      time.Weekday `json:"weekday"`
	SessionIndex int          `json:"sessionIndex"`
	Title        string       `json:"title,omitempty"`
	Rest         bool         `json:"rest"`
	IsFallback   bool         `json:"isFallback,omitempty"`
	// OutOfRange marks a training day whose session the plan does not have
	OutOfRange bool `json:"-"`
}

// Planner answers what a plan schedules on a given civil date. The
// distribution runner and the read endpoints both go through it.
type Planner struct {
	resolver *civil.Resolver
}

func NewPlanner(resolver *civil.Resolver) *Planner {
	return &Planner{
		resolver: resolver,
	}
}

func (p *Planner) ScheduledFor(plan *workouts.Plan, date civil.Date) Slot {
	weekday := date.Weekday()
	slot := Slot{
		Date:         date,
		Weekday:      weekday,
		SessionIndex: Rest,
		Rest:         true,
		IsFallback:   plan.IsFallback,
	}

	if plan.SessionsPerWeek() == 0 {
		return slot
	}

	idx := SessionIndexFor(plan.SessionsPerWeek(), weekday)
	session, ok := plan.Session(idx)
	if !ok {
		slot.OutOfRange = idx != Rest
		return slot
	}

	slot.SessionIndex = idx
	slot.Title = session.Title
	slot.Rest = false
	return slot
}

// Week lists Monday..Sunday of the civil week at weekOffset (0 = current week).
func (p *Planner) Week(plan *workouts.Plan, weekOffset int) ([]Slot, error) {
	dates, err := p.resolver.WeekDates(weekOffset)
	if err != nil {
		return nil, fmt.Errorf("week dates, offset %d: %w", weekOffset, err)
	}

	slots := make([]Slot, 0, len(dates))
	for _, d := range dates {
		slots = append(slots, p.ScheduledFor(plan, d))
	}
	return slots, nil
}
