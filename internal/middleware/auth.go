package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/2beens/workoutdelivery/internal/telemetry/tracing"
	"github.com/2beens/workoutdelivery/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

const (
	AdminTokenHeader    = "X-Admin-Token"
	WebhookSecretHeader = "X-Webhook-Secret"
)

type AuthMiddlewareHandler struct {
	adminTokenHash string
	webhookSecret  string
}

func NewAuthMiddlewareHandler(adminTokenHash, webhookSecret string) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		adminTokenHash: adminTokenHash,
		webhookSecret:  webhookSecret,
	}
}

// AdminOnly guards operator endpoints, e.g. the manual distribution trigger.
// The token is checked against its bcrypt hash.
func (h *AuthMiddlewareHandler) AdminOnly() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth.admin")
			defer span.End()

			authToken := r.Header.Get(AdminTokenHeader)
			if authToken == "" {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			if !pkg.CheckTokenHash(authToken, h.adminTokenHash) {
				log.Warnf("[invalid token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "invalid-auth-token")
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r)
		})
	}
}

// WebhookSecret guards the inbound messages webhook with the shared provider secret.
func (h *AuthMiddlewareHandler) WebhookSecret() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth.webhook")
			defer span.End()

			secret := r.Header.Get(WebhookSecretHeader)
			if h.webhookSecret == "" || subtle.ConstantTimeCompare([]byte(secret), []byte(h.webhookSecret)) != 1 {
				log.Warnf("unauthorized webhook request => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "invalid-webhook-secret")
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r)
		})
	}
}
