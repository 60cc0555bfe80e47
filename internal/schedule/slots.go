package schedule

import (
	"sort"
	"time"
)

// Rest is the session index of a day without a workout.
const Rest = -1

const fallbackSessionsPerWeek = 3

// slotDays is the fixed weekly policy. Sunday never appears: it is always a rest day.
var slotDays = map[int][]time.Weekday{
	1: {time.Wednesday},
	2: {time.Tuesday, time.Friday},
	3: {time.Monday, time.Wednesday, time.Friday},
	4: {time.Monday, time.Tuesday, time.Thursday, time.Friday},
	5: {time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
	6: {time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday},
}

// Days returns the training days for the given plan size, Monday first.
// Six or more sessions use Monday..Saturday, anything unknown uses the 3-session policy.
func Days(sessionsPerWeek int) []time.Weekday {
	if sessionsPerWeek > 6 {
		sessionsPerWeek = 6
	}
	days, ok := slotDays[sessionsPerWeek]
	if !ok {
		days = slotDays[fallbackSessionsPerWeek]
	}

	out := make([]time.Weekday, len(days))
	copy(out, days)
	sort.Slice(out, func(i, j int) bool {
		return out[i] < out[j]
	})
	return out
}

// AssignmentFor maps each training day to its session index. Sessions are
// assigned in ascending day order, the first training day gets session 0.
func AssignmentFor(sessionsPerWeek int) map[time.Weekday]int {
	days := Days(sessionsPerWeek)
	assignment := make(map[time.Weekday]int, len(days))
	for i, d := range days {
		assignment[d] = i
	}
	return assignment
}

// SessionIndexFor returns the session index scheduled on dayOfWeek, or Rest.
func SessionIndexFor(sessionsPerWeek int, dayOfWeek time.Weekday) int {
	if dayOfWeek == time.Sunday {
		return Rest
	}
	idx, ok := AssignmentFor(sessionsPerWeek)[dayOfWeek]
	if !ok {
		return Rest
	}
	return idx
}
