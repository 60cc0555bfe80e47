package delivery

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/workoutdelivery/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type MessageType string

const (
	MessageWorkout          MessageType = "workout"
	MessageReplyCongrats    MessageType = "reply_congrats"
	MessageReplyEncourage   MessageType = "reply_encourage"
	MessageReplyHelp        MessageType = "reply_help"
	MessageReplyAlreadyDone MessageType = "reply_already_done"
	MessageReplyNoWorkout   MessageType = "reply_no_workout"
	MessageInbound          MessageType = "inbound"
)

type Direction string

const (
	DirectionOutbound Direction = "outbound"
	DirectionInbound  Direction = "inbound"
)

// AuditEntry is one row of the append-only message log.
type AuditEntry struct {
	ID                string
	OwnerID           string
	Phone             string
	Direction         Direction
	Type              MessageType
	Body              string
	ProviderMessageID string
	Success           bool
	Error             string
	CreatedAt         time.Time
}

type AuditRepo struct {
	db *pgxpool.Pool
}

func NewAuditRepo(db *pgxpool.Pool) *AuditRepo {
	return &AuditRepo{
		db: db,
	}
}

func (r *AuditRepo) Append(ctx context.Context, entry *AuditEntry) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.delivery.audit.append")
	defer func() { tracing.EndSpan(span, err) }()

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	span.SetAttributes(
		attribute.String("message.type", string(entry.Type)),
		attribute.String("message.direction", string(entry.Direction)),
	)

	_, err = r.db.Exec(ctx, `
		INSERT INTO message_log (
			id, owner_id, phone, direction, message_type, body,
			provider_message_id, success, error, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`,
		entry.ID, entry.OwnerID, entry.Phone, entry.Direction, entry.Type, entry.Body,
		entry.ProviderMessageID, entry.Success, entry.Error, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("append message log: %w", err)
	}
	return nil
}
