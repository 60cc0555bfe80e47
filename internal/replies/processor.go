package replies

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/workoutdelivery/internal/civil"
	"github.com/2beens/workoutdelivery/internal/delivery"
	"github.com/2beens/workoutdelivery/internal/telemetry/metrics"
	"github.com/2beens/workoutdelivery/internal/telemetry/tracing"
	"github.com/2beens/workoutdelivery/internal/users"
	"github.com/2beens/workoutdelivery/internal/workouts"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=processor_mocks_test.go -package=replies_test

// a reply can race with the runner marking the instance as sent
const maxCompleteAttempts = 3

var ErrUnknownSender = errors.New("unknown sender")

const (
	textCongrats    = "Parabéns! 💪 Treino concluído, você ganhou %d pontos."
	textEncourage   = "Tudo bem, acontece! Amanhã é um novo dia, conte com a gente. 💙"
	textHelp        = "Não entendi sua mensagem. Quando terminar o treino, responda FEITO. Se não conseguiu treinar hoje, responda NÃO."
	textAlreadyDone = "Seu treino de hoje já está registrado como concluído. ✅"
	textNoWorkout   = "Não há treino agendado para você hoje. Aproveite o descanso! 😉"
)

type usersDirectory interface {
	FindByPhone(ctx context.Context, phone string) (*users.User, error)
}

type instanceStore interface {
	FindInstance(ctx context.Context, ownerID string, date civil.Date) (*workouts.Instance, error)
	CompleteInstance(ctx context.Context, ownerID string, date civil.Date, expected workouts.DeliveryStatus, points int) (bool, error)
}

type messenger interface {
	Send(ctx context.Context, ownerID, phone, text string, msgType delivery.MessageType) (*delivery.SendResult, error)
	RecordInbound(ctx context.Context, ownerID, phone, text, providerMessageID string)
}

type InboundReply struct {
	MessageID string
	FromPhone string
	Text      string
	// ReceivedAt is the provider timestamp, kept for logs only
	ReceivedAt time.Time
}

type Outcome struct {
	OwnerID string     `json:"ownerId"`
	Date    civil.Date `json:"date"`
	Class   string     `json:"class"`
	// Status is the delivery status after processing, empty when there is no instance for the day
	Status        workouts.DeliveryStatus `json:"status,omitempty"`
	Completed     bool                    `json:"completed"`
	PointsAwarded int                     `json:"pointsAwarded"`
	Reply         delivery.MessageType    `json:"reply"`
	ReplySent     bool                    `json:"replySent"`
}

type Processor struct {
	directory        usersDirectory
	store            instanceStore
	messenger        messenger
	clock            *civil.Clock
	metrics          *metrics.Manager
	completionPoints int
}

func NewProcessor(
	directory usersDirectory,
	store instanceStore,
	messenger messenger,
	clock *civil.Clock,
	metricsManager *metrics.Manager,
	completionPoints int,
) *Processor {
	return &Processor{
		directory:        directory,
		store:            store,
		messenger:        messenger,
		clock:            clock,
		metrics:          metricsManager,
		completionPoints: completionPoints,
	}
}

// Process classifies the reply and moves the sender's instance of the
// current civil day. A completed instance never changes again.
func (p *Processor) Process(ctx context.Context, reply InboundReply) (_ *Outcome, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "replies.processor.process")
	defer func() { tracing.EndSpan(span, err) }()

	user, err := p.directory.FindByPhone(ctx, reply.FromPhone)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSender, reply.FromPhone)
		}
		return nil, fmt.Errorf("find user by phone: %w", err)
	}

	p.messenger.RecordInbound(ctx, user.ID, reply.FromPhone, reply.Text, reply.MessageID)

	// the provider timestamp is informational, the civil clock picks the day
	date := p.clock.Today()
	class := Classify(reply.Text)
	p.metrics.CounterReplies.WithLabelValues(class.String()).Inc()
	span.SetAttributes(
		attribute.String("owner.id", user.ID),
		attribute.String("date", date.String()),
		attribute.String("reply.class", class.String()),
	)

	outcome := &Outcome{
		OwnerID: user.ID,
		Date:    date,
		Class:   class.String(),
	}

	instance, err := p.store.FindInstance(ctx, user.ID, date)
	if err != nil && !errors.Is(err, workouts.ErrNotFound) {
		return nil, fmt.Errorf("find instance: %w", err)
	}
	if instance != nil && instance.ApprovalStatus == workouts.ApprovalRejected {
		// rejected workouts were never delivered
		instance = nil
	}

	var replyText string
	switch {
	case class == Unrecognized:
		outcome.Reply, replyText = delivery.MessageReplyHelp, textHelp
		if instance != nil {
			outcome.Status = instance.DeliveryStatus
		}
	case instance == nil:
		outcome.Reply, replyText = delivery.MessageReplyNoWorkout, textNoWorkout
	case instance.DeliveryStatus.IsTerminal():
		outcome.Status = instance.DeliveryStatus
		outcome.Reply, replyText = delivery.MessageReplyAlreadyDone, textAlreadyDone
	case class == Negative:
		outcome.Status = instance.DeliveryStatus
		outcome.Reply, replyText = delivery.MessageReplyEncourage, textEncourage
	default:
		completed, status, err := p.complete(ctx, instance)
		if err != nil {
			return nil, err
		}
		outcome.Status = status
		if completed {
			outcome.Completed = true
			outcome.PointsAwarded = p.completionPoints
			p.metrics.CounterPointsAwarded.Add(float64(p.completionPoints))
			outcome.Reply, replyText = delivery.MessageReplyCongrats, fmt.Sprintf(textCongrats, p.completionPoints)
		} else {
			outcome.Reply, replyText = delivery.MessageReplyAlreadyDone, textAlreadyDone
		}
	}

	if _, err := p.messenger.Send(ctx, user.ID, user.Phone, replyText, outcome.Reply); err != nil {
		// the transition stands, only the acknowledgement is lost
		log.Errorf("send %s reply to [%s]: %s", outcome.Reply, user.ID, err)
	} else {
		outcome.ReplySent = true
	}

	log.Debugf("reply %s from [%s] (sent %s) for %s: %s -> %s", reply.MessageID, user.ID, reply.ReceivedAt.Format(time.RFC3339), date, class, outcome.Status)
	return outcome, nil
}

// complete moves the instance to completed via a conditional update. Losing
// the update means someone else changed the status first: re-read and retry
// while it still accepts a reply.
func (p *Processor) complete(ctx context.Context, instance *workouts.Instance) (bool, workouts.DeliveryStatus, error) {
	expected := instance.DeliveryStatus
	for attempt := 0; attempt < maxCompleteAttempts; attempt++ {
		completed, err := p.store.CompleteInstance(ctx, instance.OwnerID, instance.Date, expected, p.completionPoints)
		if err != nil {
			return false, expected, fmt.Errorf("complete instance: %w", err)
		}
		if completed {
			return true, workouts.DeliveryCompleted, nil
		}

		current, err := p.store.FindInstance(ctx, instance.OwnerID, instance.Date)
		if err != nil {
			return false, expected, fmt.Errorf("re-read instance: %w", err)
		}
		if !current.DeliveryStatus.AcceptsReply() {
			return false, current.DeliveryStatus, nil
		}
		expected = current.DeliveryStatus
	}

	return false, expected, fmt.Errorf("complete instance [%s] %s: status kept changing", instance.OwnerID, instance.Date)
}
