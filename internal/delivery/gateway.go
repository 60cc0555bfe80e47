package delivery

import (
	"context"

	"github.com/2beens/workoutdelivery/internal/telemetry/metrics"
	"github.com/2beens/workoutdelivery/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=delivery_test

type sender interface {
	CheckConfigured() error
	Send(ctx context.Context, phone, text string) (*SendResult, error)
}

type auditLog interface {
	Append(ctx context.Context, entry *AuditEntry) error
}

// Gateway sends messages through the provider and keeps the audit log.
// A failing audit write never fails a send.
type Gateway struct {
	sender  sender
	audit   auditLog
	metrics *metrics.Manager
}

func NewGateway(sender sender, audit auditLog, metricsManager *metrics.Manager) *Gateway {
	return &Gateway{
		sender:  sender,
		audit:   audit,
		metrics: metricsManager,
	}
}

func (g *Gateway) CheckConfigured() error {
	return g.sender.CheckConfigured()
}

func (g *Gateway) Send(ctx context.Context, ownerID, phone, text string, msgType MessageType) (*SendResult, error) {
	result, sendErr := g.sender.Send(ctx, phone, text)

	entry := &AuditEntry{
		OwnerID:   ownerID,
		Phone:     pkg.NormalizePhone(phone),
		Direction: DirectionOutbound,
		Type:      msgType,
		Body:      text,
	}
	if sendErr != nil {
		entry.Error = sendErr.Error()
		g.metrics.CounterDeliveries.WithLabelValues(string(msgType), "failed").Inc()
	} else {
		entry.Success = result.Success
		entry.ProviderMessageID = result.ProviderMessageID
		g.metrics.CounterDeliveries.WithLabelValues(string(msgType), "sent").Inc()
	}

	if err := g.audit.Append(ctx, entry); err != nil {
		log.Errorf("audit outbound %s message for [%s]: %s", msgType, ownerID, err)
	}

	return result, sendErr
}

// RecordInbound appends a received message to the audit log.
func (g *Gateway) RecordInbound(ctx context.Context, ownerID, phone, text, providerMessageID string) {
	if err := g.audit.Append(ctx, &AuditEntry{
		OwnerID:           ownerID,
		Phone:             pkg.NormalizePhone(phone),
		Direction:         DirectionInbound,
		Type:              MessageInbound,
		Body:              text,
		ProviderMessageID: providerMessageID,
		Success:           true,
	}); err != nil {
		log.Errorf("audit inbound message %s from [%s]: %s", providerMessageID, ownerID, err)
	}
}
