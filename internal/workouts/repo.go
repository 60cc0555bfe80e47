package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/workoutdelivery/internal/civil"
	"github.com/2beens/workoutdelivery/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const instanceColumns = `owner_id, date, session_index, title, rendered_content,
	delivery_status, approval_status, source_plan_id, created_at, updated_at`

// Repo is the postgres backed record store for plans, scheduled
// workout instances and the points ledger.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// pgDate keeps the civil date intact when pgx encodes it as a DATE.
func pgDate(d civil.Date) time.Time {
	return d.In(time.UTC)
}

func (r *Repo) FindActivePlan(ctx context.Context, ownerID string) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.plan.findactive")
	defer func() {
		if err != nil && !errors.Is(err, ErrNotFound) {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.String("owner.id", ownerID))

	plan := &Plan{}
	err = r.db.QueryRow(ctx, `
		SELECT id, owner_id, sessions, is_active, is_fallback, created_at
		FROM workout_plan
		WHERE owner_id = $1 AND is_active
		ORDER BY created_at DESC
		LIMIT 1
	`, ownerID).Scan(
		&plan.ID, &plan.OwnerID, &plan.Sessions,
		&plan.IsActive, &plan.IsFallback, &plan.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find active plan: %w", err)
	}

	return plan, nil
}

// UpsertInstance inserts the (owner, date) instance with pending statuses, or
// rewrites its content in place. Statuses of an existing row are left as they are,
// so a reply processed in the meantime is never overwritten.
func (r *Repo) UpsertInstance(ctx context.Context, ownerID string, date civil.Date, fields InstanceFields) (_ *UpsertResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.instance.upsert")
	defer func() { tracing.EndSpan(span, err) }()
	span.SetAttributes(
		attribute.String("owner.id", ownerID),
		attribute.String("date", date.String()),
	)

	var (
		instance Instance
		pgd      time.Time
		inserted bool
	)
	err = r.db.QueryRow(ctx, `
		INSERT INTO workout_instance (
			owner_id, date, session_index, title, rendered_content,
			delivery_status, approval_status, source_plan_id, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())
		ON CONFLICT (owner_id, date) DO UPDATE SET
			session_index    = EXCLUDED.session_index,
			title            = EXCLUDED.title,
			rendered_content = EXCLUDED.rendered_content,
			source_plan_id   = EXCLUDED.source_plan_id,
			updated_at       = now()
		RETURNING `+instanceColumns+`, (xmax = 0) AS inserted
	`,
		ownerID, pgDate(date),
		fields.SessionIndex, fields.Title, fields.RenderedContent,
		DeliveryPending, ApprovalPending, fields.SourcePlanID,
	).Scan(
		&instance.OwnerID, &pgd, &instance.SessionIndex, &instance.Title, &instance.RenderedContent,
		&instance.DeliveryStatus, &instance.ApprovalStatus, &instance.SourcePlanID,
		&instance.CreatedAt, &instance.UpdatedAt, &inserted,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert instance: %w", err)
	}
	instance.Date = civil.DateOf(pgd)

	span.SetAttributes(attribute.Bool("inserted", inserted))
	return &UpsertResult{
		Instance: &instance,
		Created:  inserted,
	}, nil
}

func (r *Repo) FindInstance(ctx context.Context, ownerID string, date civil.Date) (_ *Instance, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.instance.find")
	defer span.End()

	var (
		instance Instance
		pgd      time.Time
	)
	err = r.db.QueryRow(ctx, `
		SELECT `+instanceColumns+`
		FROM workout_instance
		WHERE owner_id = $1 AND date = $2
	`, ownerID, pgDate(date)).Scan(
		&instance.OwnerID, &pgd, &instance.SessionIndex, &instance.Title, &instance.RenderedContent,
		&instance.DeliveryStatus, &instance.ApprovalStatus, &instance.SourcePlanID,
		&instance.CreatedAt, &instance.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		span.RecordError(err)
		return nil, fmt.Errorf("find instance: %w", err)
	}
	instance.Date = civil.DateOf(pgd)

	return &instance, nil
}

// UpdateInstanceStatus moves the instance from expected to next status.
// Returns false when the instance is not in the expected status (anymore).
func (r *Repo) UpdateInstanceStatus(ctx context.Context, ownerID string, date civil.Date, expected, next DeliveryStatus) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.instance.updatestatus")
	defer func() { tracing.EndSpan(span, err) }()
	span.SetAttributes(
		attribute.String("status.expected", expected.String()),
		attribute.String("status.next", next.String()),
	)

	tag, err := r.db.Exec(ctx, `
		UPDATE workout_instance
		SET delivery_status = $4, updated_at = now()
		WHERE owner_id = $1 AND date = $2 AND delivery_status = $3
	`, ownerID, pgDate(date), expected, next)
	if err != nil {
		return false, fmt.Errorf("update instance status: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

// CompleteInstance transitions the instance from expected to completed and, in the
// same transaction, credits the points. Only the caller winning the conditional
// update gets true; everyone else gets false and no points are credited.
func (r *Repo) CompleteInstance(ctx context.Context, ownerID string, date civil.Date, expected DeliveryStatus, points int) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.instance.complete")
	defer func() { tracing.EndSpan(span, err) }()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	tag, err := tx.Exec(ctx, `
		UPDATE workout_instance
		SET delivery_status = $4, updated_at = now()
		WHERE owner_id = $1 AND date = $2 AND delivery_status = $3
	`, ownerID, pgDate(date), expected, DeliveryCompleted)
	if err != nil {
		return false, fmt.Errorf("complete instance: %w", err)
	}
	if tag.RowsAffected() != 1 {
		return false, nil
	}

	// a completion reset by hand and completed again keeps the first credit
	credited, err := tx.Exec(ctx, `
		INSERT INTO points_ledger (owner_id, instance_date, points, reason, created_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (owner_id, instance_date, reason) DO NOTHING
	`, ownerID, pgDate(date), points, PointsReasonWorkoutCompleted)
	if err != nil {
		return false, fmt.Errorf("insert points: %w", err)
	}
	if credited.RowsAffected() == 0 {
		log.Warnf("points for [%s] on %s already credited", ownerID, date)
	}

	return true, nil
}

// PlanApproval reports when the plan was first scheduled, and whether
// a trainer approved any of its instances so far.
func (r *Repo) PlanApproval(ctx context.Context, planID int64) (_ *PlanApproval, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.plan.approval")
	defer func() { tracing.EndSpan(span, err) }()
	span.SetAttributes(attribute.Int64("plan.id", planID))

	var (
		first    *time.Time
		approved bool
	)
	err = r.db.QueryRow(ctx, `
		SELECT MIN(date), COALESCE(bool_or(approval_status = $2), false)
		FROM workout_instance
		WHERE source_plan_id = $1
	`, planID, ApprovalApproved).Scan(&first, &approved)
	if err != nil {
		return nil, fmt.Errorf("plan approval: %w", err)
	}

	approval := &PlanApproval{Approved: approved}
	if first != nil {
		d := civil.DateOf(*first)
		approval.FirstScheduled = &d
	}
	return approval, nil
}

// PointsBalance sums the ledger for the owner.
func (r *Repo) PointsBalance(ctx context.Context, ownerID string) (int, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.points.balance")
	defer span.End()

	var total int
	if err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(points), 0) FROM points_ledger WHERE owner_id = $1
	`, ownerID).Scan(&total); err != nil {
		return 0, fmt.Errorf("points balance: %w", err)
	}
	return total, nil
}
