package distribution

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/2beens/workoutdelivery/internal/civil"
	"github.com/2beens/workoutdelivery/internal/delivery"
	"github.com/2beens/workoutdelivery/internal/schedule"
	"github.com/2beens/workoutdelivery/internal/telemetry/metrics"
	"github.com/2beens/workoutdelivery/internal/telemetry/tracing"
	"github.com/2beens/workoutdelivery/internal/users"
	"github.com/2beens/workoutdelivery/internal/workouts"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=$GOFILE -destination=runner_mocks_test.go -package=distribution_test

var ErrRunInProgress = errors.New("distribution run already in progress")

type usersLister interface {
	ListOptedIn(ctx context.Context) ([]users.User, error)
}

type workoutsStore interface {
	FindActivePlan(ctx context.Context, ownerID string) (*workouts.Plan, error)
	FindInstance(ctx context.Context, ownerID string, date civil.Date) (*workouts.Instance, error)
	UpsertInstance(ctx context.Context, ownerID string, date civil.Date, fields workouts.InstanceFields) (*workouts.UpsertResult, error)
	UpdateInstanceStatus(ctx context.Context, ownerID string, date civil.Date, expected, next workouts.DeliveryStatus) (bool, error)
	PlanApproval(ctx context.Context, planID int64) (*workouts.PlanApproval, error)
}

type messenger interface {
	CheckConfigured() error
	Send(ctx context.Context, ownerID, phone, text string, msgType delivery.MessageType) (*delivery.SendResult, error)
}

type RunnerParams struct {
	Users    usersLister
	Store    workoutsStore
	Gateway  messenger
	Clock    *civil.Clock
	Resolver *civil.Resolver
	Metrics  *metrics.Manager
	Workers  int
	// ApprovalBacklogDays stops new instances of a never approved plan
	// once its first scheduled day is more than this many days ago
	ApprovalBacklogDays int
}

// Runner writes and delivers today's workout instance for every opted-in user.
type Runner struct {
	users               usersLister
	store               workoutsStore
	gateway             messenger
	clock               *civil.Clock
	resolver            *civil.Resolver
	planner             *schedule.Planner
	metrics             *metrics.Manager
	workers             int
	approvalBacklogDays int

	running sync.Mutex
}

func NewRunner(params RunnerParams) *Runner {
	workers := params.Workers
	if workers <= 0 {
		workers = 1
	}
	return &Runner{
		users:               params.Users,
		store:               params.Store,
		gateway:             params.Gateway,
		clock:               params.Clock,
		resolver:            params.Resolver,
		planner:             schedule.NewPlanner(params.Resolver),
		metrics:             params.Metrics,
		workers:             workers,
		approvalBacklogDays: params.ApprovalBacklogDays,
	}
}

// Run executes one distribution for the current civil day. It fails as a whole
// only on missing delivery configuration or when users cannot be listed.
// Per-user failures are counted in the result, see RunResult.Err.
func (r *Runner) Run(ctx context.Context, params RunParams) (_ *RunResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "distribution.runner.run")
	defer func() { tracing.EndSpan(span, err) }()

	mode := "live"
	if params.DryRun {
		mode = "dry_run"
	}
	outcome := "ok"
	start := time.Now()
	defer func() {
		if err != nil && outcome == "ok" {
			outcome = "error"
		}
		r.metrics.CounterDistributionRuns.WithLabelValues(mode, outcome).Inc()
		r.metrics.HistDistributionRunDuration.Observe(time.Since(start).Seconds())
	}()

	if !r.running.TryLock() {
		outcome = "in_progress"
		return nil, ErrRunInProgress
	}
	defer r.running.Unlock()

	if !params.DryRun {
		if err := r.gateway.CheckConfigured(); err != nil {
			outcome = "not_configured"
			return nil, fmt.Errorf("distribution run: %w", err)
		}
	}

	today, weekday := r.clock.Now()
	result := newRunResult(uuid.NewString(), today, params.DryRun)
	span.SetAttributes(
		attribute.String("run.id", result.RunID),
		attribute.String("date", today.String()),
		attribute.Bool("dry_run", params.DryRun),
	)

	if weekday == time.Sunday {
		log.Infof("distribution run %s: %s is a Sunday, rest day for everyone", result.RunID, today)
		outcome = "rest_day"
		return result, nil
	}

	optedIn, err := r.users.ListOptedIn(ctx)
	if err != nil {
		return nil, fmt.Errorf("list opted in users: %w", err)
	}

	log.Infof("distribution run %s [%s] for %s (%s): %d users", result.RunID, mode, today, weekday, len(optedIn))

	var g errgroup.Group
	g.SetLimit(r.workers)
	for _, u := range optedIn {
		g.Go(func() error {
			ur := r.processUser(ctx, u, today, weekday, params.DryRun)
			if ur.skipReason != "" {
				r.metrics.CounterSkippedUsers.WithLabelValues(string(ur.skipReason)).Inc()
			}
			result.add(ur)
			return nil
		})
	}
	_ = g.Wait()

	if runErr := result.Err(); runErr != nil {
		outcome = "partial"
		log.Errorf("distribution run %s finished with %d failed users: %s", result.RunID, result.Failed, runErr)
	}
	log.Infof(
		"distribution run %s done: processed %d, created %d, updated %d, skipped %d, sent %d, failed %d",
		result.RunID, result.Processed, result.Created, result.Updated, result.Skipped, result.Sent, result.Failed,
	)

	return result, nil
}

func (r *Runner) processUser(ctx context.Context, u users.User, today civil.Date, weekday time.Weekday, dryRun bool) userResult {
	ctx, span := tracing.GlobalTracer.Start(ctx, "distribution.runner.user")
	defer span.End()
	span.SetAttributes(attribute.String("owner.id", u.ID))

	resolved, err := r.resolver.DateForDayOfWeekFrom(today, weekday, 0)
	if err == nil && resolved != today {
		err = fmt.Errorf("%w: resolved %s for today %s", civil.ErrConsistency, resolved, today)
	}
	if err != nil {
		r.metrics.CounterConsistencyErrors.Inc()
		log.Errorf("distribution [%s]: %s", u.ID, err)
		return userResult{skipReason: SkipConsistency}
	}

	plan, err := r.store.FindActivePlan(ctx, u.ID)
	if err != nil {
		if errors.Is(err, workouts.ErrNotFound) {
			log.Debugf("distribution [%s]: no active plan", u.ID)
			return userResult{skipReason: SkipNoActivePlan}
		}
		return userResult{err: fmt.Errorf("[%s] find active plan: %w", u.ID, err)}
	}
	if plan.SessionsPerWeek() == 0 {
		log.Debugf("distribution [%s]: plan %d has no sessions", u.ID, plan.ID)
		return userResult{skipReason: SkipEmptyPlan}
	}

	slot := r.planner.ScheduledFor(plan, today)
	if slot.OutOfRange {
		log.Warnf("distribution [%s]: weekday %s out of range for plan %d with %d sessions",
			u.ID, weekday, plan.ID, plan.SessionsPerWeek())
		return userResult{skipReason: SkipSessionOutOfRange}
	}
	if slot.Rest {
		log.Debugf("distribution [%s]: rest day (%d sessions per week)", u.ID, plan.SessionsPerWeek())
		return userResult{skipReason: SkipRestDay}
	}
	session, _ := plan.Session(slot.SessionIndex)

	capped, err := r.backlogCapped(ctx, u.ID, plan.ID, today)
	if err != nil {
		return userResult{err: fmt.Errorf("[%s] check plan approval: %w", u.ID, err)}
	}
	if capped {
		log.Infof("distribution [%s]: plan %d unapproved for over %d days, not creating more instances",
			u.ID, plan.ID, r.approvalBacklogDays)
		return userResult{skipReason: SkipApprovalBacklogCap}
	}

	upserted, err := r.store.UpsertInstance(ctx, u.ID, today, workouts.InstanceFields{
		SessionIndex:    slot.SessionIndex,
		Title:           session.Title,
		RenderedContent: workouts.RenderSession(plan, session),
		SourcePlanID:    plan.ID,
	})
	if err != nil {
		return userResult{err: fmt.Errorf("[%s] upsert instance: %w", u.ID, err)}
	}

	ur := userResult{
		created: upserted.Created,
		updated: !upserted.Created,
	}
	if upserted.Created {
		r.metrics.CounterInstances.WithLabelValues("created").Inc()
	} else {
		r.metrics.CounterInstances.WithLabelValues("updated").Inc()
	}

	instance := upserted.Instance
	switch {
	case instance.ApprovalStatus == workouts.ApprovalRejected:
		log.Debugf("distribution [%s]: instance %s rejected by trainer, not sending", u.ID, today)
		ur.withheld = true
		return ur
	case instance.DeliveryStatus != workouts.DeliveryPending:
		ur.alreadyDelivered = true
		return ur
	case dryRun:
		return ur
	}

	if _, err := r.gateway.Send(ctx, u.ID, u.Phone, instance.RenderedContent, delivery.MessageWorkout); err != nil {
		// stays pending, no retry within the run
		ur.err = fmt.Errorf("[%s] deliver workout: %w", u.ID, err)
		return ur
	}
	ur.sent = true

	moved, err := r.store.UpdateInstanceStatus(ctx, u.ID, today, workouts.DeliveryPending, workouts.DeliverySent)
	if err != nil {
		ur.err = fmt.Errorf("[%s] mark instance sent: %w", u.ID, err)
		return ur
	}
	if !moved {
		// a reply completed it while we were sending
		log.Debugf("distribution [%s]: instance %s left pending before marked sent", u.ID, today)
	}

	return ur
}

// backlogCapped reports whether no new instance may be created for a plan the
// trainer never approved. An instance already existing for today is still updated.
func (r *Runner) backlogCapped(ctx context.Context, ownerID string, planID int64, today civil.Date) (bool, error) {
	if r.approvalBacklogDays <= 0 {
		return false, nil
	}

	approval, err := r.store.PlanApproval(ctx, planID)
	if err != nil {
		return false, err
	}
	if approval.Approved || approval.FirstScheduled == nil {
		return false, nil
	}
	if today.DaysSince(*approval.FirstScheduled) <= r.approvalBacklogDays {
		return false, nil
	}

	_, err = r.store.FindInstance(ctx, ownerID, today)
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, workouts.ErrNotFound):
		return true, nil
	default:
		return false, err
	}
}
