package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/workoutdelivery/internal/telemetry/tracing"
	"github.com/2beens/workoutdelivery/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
)

var (
	// ErrNotConfigured means the provider credentials are missing. Fatal for a distribution run.
	ErrNotConfigured = errors.New("delivery provider not configured")
	ErrSendFailed    = errors.New("send message failed")
	ErrInvalidPhone  = errors.New("invalid phone number")
)

type SendResult struct {
	Success           bool   `json:"success"`
	ProviderMessageID string `json:"providerMessageId"`
}

type sendTextRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type sendTextResponse struct {
	MessageID string `json:"messageId"`
	ID        string `json:"id"`
}

type HTTPSenderParams struct {
	BaseURL     string
	Token       string
	ClientToken string
	Timeout     time.Duration
	// HTTPClient is optional, a client with the otel transport is used by default
	HTTPClient *http.Client
}

// HTTPSender posts text messages to the messaging provider's REST API.
type HTTPSender struct {
	baseURL     string
	token       string
	clientToken string
	timeout     time.Duration
	httpClient  *http.Client
}

func NewHTTPSender(params HTTPSenderParams) *HTTPSender {
	httpClient := params.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	timeout := params.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &HTTPSender{
		baseURL:     strings.TrimRight(params.BaseURL, "/"),
		token:       params.Token,
		clientToken: params.ClientToken,
		timeout:     timeout,
		httpClient:  httpClient,
	}
}

func (s *HTTPSender) CheckConfigured() error {
	if s.baseURL == "" || s.token == "" {
		return ErrNotConfigured
	}
	return nil
}

// Send delivers text to phone. Any failure, a timeout included, is returned
// wrapped in ErrSendFailed: the caller must assume nothing was delivered.
func (s *HTTPSender) Send(ctx context.Context, phone, text string) (_ *SendResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "delivery.http.send")
	defer func() { tracing.EndSpan(span, err) }()

	if err := s.CheckConfigured(); err != nil {
		return nil, err
	}

	normalized := pkg.NormalizePhone(phone)
	if normalized == "" {
		return nil, fmt.Errorf("%w: %w [%s]", ErrSendFailed, ErrInvalidPhone, phone)
	}
	span.SetAttributes(attribute.Int("message.length", len(text)))

	reqBody, err := json.Marshal(sendTextRequest{
		Phone:   normalized,
		Message: text,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: marshal request: %w", ErrSendFailed, err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/send-text", bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", ErrSendFailed, err)
	}
	req.Header.Set("Content-Type", pkg.ContentType.JSON)
	req.Header.Set("Authorization", "Bearer "+s.token)
	if s.clientToken != "" {
		req.Header.Set("Client-Token", s.clientToken)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSendFailed, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Errorf("close send response body: %s", closeErr)
		}
	}()

	respBytes, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %w", ErrSendFailed, err)
	}
	span.SetAttributes(attribute.Int("http.status", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: provider status %d: %s", ErrSendFailed, resp.StatusCode, respBytes)
	}

	var sendResp sendTextResponse
	if len(respBytes) > 0 {
		if err := json.Unmarshal(respBytes, &sendResp); err != nil {
			log.Warnf("send ok, but unexpected provider response: %s", respBytes)
		}
	}
	providerID := sendResp.MessageID
	if providerID == "" {
		providerID = sendResp.ID
	}

	return &SendResult{
		Success:           true,
		ProviderMessageID: providerID,
	}, nil
}

// DryRunSender never talks to the provider.
type DryRunSender struct{}

func (DryRunSender) CheckConfigured() error {
	return nil
}

func (DryRunSender) Send(_ context.Context, phone, text string) (*SendResult, error) {
	log.Debugf("dry run, not sending %d chars to %s", len(text), pkg.NormalizePhone(phone))
	return &SendResult{
		Success:           true,
		ProviderMessageID: "dry-run-" + uuid.NewString(),
	}, nil
}
