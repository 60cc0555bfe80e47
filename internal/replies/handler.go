package replies

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/workoutdelivery/internal/telemetry/tracing"
	"github.com/2beens/workoutdelivery/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=replies_test

type messageDeduplicator interface {
	Claim(ctx context.Context, messageID string) (bool, error)
	Release(ctx context.Context, messageID string) error
}

type replyProcessor interface {
	Process(ctx context.Context, reply InboundReply) (*Outcome, error)
}

// WebhookMessage is the provider's inbound message payload. Timestamp is unix millis.
type WebhookMessage struct {
	FromPhone   string `json:"fromPhone"`
	MessageText string `json:"messageText"`
	MessageID   string `json:"messageId"`
	Timestamp   int64  `json:"timestamp"`
}

type WebhookResponse struct {
	Duplicate bool     `json:"duplicate"`
	Processed bool     `json:"processed"`
	Reason    string   `json:"reason,omitempty"`
	Outcome   *Outcome `json:"outcome,omitempty"`
}

type Handler struct {
	dedup     messageDeduplicator
	processor replyProcessor
}

func NewHandler(dedup messageDeduplicator, processor replyProcessor) *Handler {
	return &Handler{
		dedup:     dedup,
		processor: processor,
	}
}

func (handler *Handler) HandleInbound(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.replies.inbound")
	defer span.End()

	var msg WebhookMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		log.Errorf("inbound message, unmarshal json: %s", err)
		http.Error(w, "error, invalid message payload", http.StatusBadRequest)
		return
	}
	if msg.MessageID == "" || msg.FromPhone == "" {
		http.Error(w, "error, message id or sender empty", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.String("message.id", msg.MessageID))

	claimed, err := handler.dedup.Claim(ctx, msg.MessageID)
	if err != nil {
		log.Errorf("inbound message %s, claim: %s", msg.MessageID, err)
		http.Error(w, "error, try again later", http.StatusServiceUnavailable)
		return
	}
	if !claimed {
		log.Debugf("inbound message %s already processed", msg.MessageID)
		pkg.WriteJSON(w, WebhookResponse{Duplicate: true}, http.StatusOK)
		return
	}

	reply := InboundReply{
		MessageID: msg.MessageID,
		FromPhone: msg.FromPhone,
		Text:      msg.MessageText,
	}
	if msg.Timestamp > 0 {
		reply.ReceivedAt = time.UnixMilli(msg.Timestamp)
	}

	outcome, err := handler.processor.Process(ctx, reply)
	if err != nil {
		if errors.Is(err, ErrUnknownSender) {
			log.Warnf("inbound message %s: %s", msg.MessageID, err)
			pkg.WriteJSON(w, WebhookResponse{Reason: "unknown_sender"}, http.StatusOK)
			return
		}

		log.Errorf("inbound message %s, process: %s", msg.MessageID, err)
		// let the provider redeliver it
		if releaseErr := handler.dedup.Release(ctx, msg.MessageID); releaseErr != nil {
			log.Errorf("inbound message %s: %s", msg.MessageID, releaseErr)
		}
		http.Error(w, "error, failed to process message", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, WebhookResponse{
		Processed: true,
		Outcome:   outcome,
	}, http.StatusOK)
}
