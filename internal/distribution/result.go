package distribution

import (
	"sync"

	"github.com/2beens/workoutdelivery/internal/civil"

	"go.uber.org/multierr"
)

type SkipReason string

const (
	SkipNoActivePlan       SkipReason = "no_active_plan"
	SkipEmptyPlan          SkipReason = "empty_plan"
	SkipRestDay            SkipReason = "rest_day"
	SkipSessionOutOfRange  SkipReason = "session_out_of_range"
	SkipApprovalBacklogCap SkipReason = "backlog_cap"
	SkipConsistency        SkipReason = "consistency"
)

type RunParams struct {
	DryRun bool
}

// RunResult counts what a single distribution run did.
type RunResult struct {
	RunID  string     `json:"runId"`
	Date   civil.Date `json:"date"`
	DryRun bool       `json:"dryRun"`
	// Processed is the number of opted-in users looked at
	Processed int `json:"processed"`
	Created   int `json:"created"`
	Updated   int `json:"updated"`
	Skipped   int `json:"skipped"`
	Sent      int `json:"sent"`
	Failed    int `json:"failed"`
	// AlreadyDelivered instances were sent (or completed) by an earlier run of the same day
	AlreadyDelivered int `json:"alreadyDelivered"`
	// Withheld instances were written but not sent, since the trainer rejected them
	Withheld    int                `json:"withheld"`
	SkipReasons map[SkipReason]int `json:"skipReasons"`

	mu   sync.Mutex
	errs error
}

func newRunResult(runID string, date civil.Date, dryRun bool) *RunResult {
	return &RunResult{
		RunID:       runID,
		Date:        date,
		DryRun:      dryRun,
		SkipReasons: make(map[SkipReason]int),
	}
}

// Err combines all per-user errors of the run, nil if there were none.
func (r *RunResult) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.errs
}

func (r *RunResult) add(ur userResult) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Processed++
	if ur.skipReason != "" {
		r.Skipped++
		r.SkipReasons[ur.skipReason]++
	}
	if ur.created {
		r.Created++
	}
	if ur.updated {
		r.Updated++
	}
	if ur.sent {
		r.Sent++
	}
	if ur.alreadyDelivered {
		r.AlreadyDelivered++
	}
	if ur.withheld {
		r.Withheld++
	}
	if ur.err != nil {
		r.Failed++
		r.errs = multierr.Append(r.errs, ur.err)
	}
}

type userResult struct {
	skipReason       SkipReason
	created          bool
	updated          bool
	sent             bool
	alreadyDelivered bool
	withheld         bool
	err              error
}
