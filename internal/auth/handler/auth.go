package handler

import (
	"context"
	"strings"

	"answering-service/internal/apierrors"
	"answering-service/internal/auth/processor"
	"answering-service/internal/observability"

	"github.com/gin-gonic/gin"
)

// OperatorKey is the gin context key holding the authenticated token subject.
const OperatorKey = "Operator-ID"

type Processor interface {
	Enabled() bool
	ValidateJWTToken(ctx context.Context, token string) (processor.DashboardClaims, error)
}

type Handler struct {
	authProcessor Processor
	errors        apierrors.Responder
	logger        *observability.Logger
}

func New(authProcessor Processor, logger *observability.Logger) Handler {
	return Handler{authProcessor: authProcessor, errors: apierrors.NewResponder(logger), logger: logger}
}

// HandleJWTMiddleware requires a Bearer token when a dashboard secret is configured and passes
// every request through otherwise.
func (h *Handler) HandleJWTMiddleware(c *gin.Context) {
	if !h.authProcessor.Enabled() {
		c.Next()
		return
	}

	ctx := c.Request.Context()
	tokenHeader := c.GetHeader("Authorization")
	if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
		h.errors.Respond(c, apierrors.Unauthorized("Authorization token is missing or invalid"))
		return
	}

	claims, err := h.authProcessor.ValidateJWTToken(ctx, strings.TrimPrefix(tokenHeader, "Bearer "))
	if err != nil {
		h.errors.Respond(c, apierrors.Unauthorized("Authorization token is missing or invalid"))
		return
	}

	c.Set(OperatorKey, claims.Subject)
	c.Request = c.Request.WithContext(observability.WithFields(ctx,
		observability.Field{Key: "operator", Value: claims.Subject},
	))
	c.Next()
}
