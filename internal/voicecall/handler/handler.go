package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"fmt"
	"net/http"

	"answering-service/internal/apierrors"
	"answering-service/internal/observability"
	"answering-service/internal/store"
	"answering-service/internal/voicecall/processor"
	"answering-service/internal/voicecall/twilio"

	"github.com/gin-gonic/gin"
)

// Processor is the call lifecycle logic behind the telephony webhooks.
type Processor interface {
	OnCallStarted(ctx context.Context, params processor.CallStartedParams) (store.CallLog, error)
	OnCallEnded(ctx context.Context, event processor.CallEndedEvent) (processor.Outcome, error)
}

type Handler struct {
	processor  Processor
	signatures *twilio.SignatureValidator
	streamURL  string
	metrics    *observability.Metrics
	errors     apierrors.Responder
	logger     *observability.Logger
}

// New builds the webhook handler. streamURL is the media relay address; when empty the relay
// is assumed to live on the same host at /ws/stream.
func New(processor Processor, signatures *twilio.SignatureValidator, streamURL string, metrics *observability.Metrics, logger *observability.Logger) Handler {
	return Handler{
		processor:  processor,
		signatures: signatures,
		streamURL:  streamURL,
		metrics:    metrics,
		errors:     apierrors.NewResponder(logger),
		logger:     logger,
	}
}

// IncomingCallGuard rejects unsigned call-start webhooks with the apology document so the
// caller still hears something.
func (h *Handler) IncomingCallGuard() gin.HandlerFunc {
	return h.signatures.Require(func(c *gin.Context) {
		h.metrics.IncWebhookEvent(observability.EventCallStarted, observability.OutcomeRejected)
		h.logger.Warn(c.Request.Context(), "rejected incoming call webhook with invalid signature")
		h.writeTwiML(c, twilio.Apology())
	})
}

// CallEndedGuard rejects unsigned call-end webhooks with 403.
func (h *Handler) CallEndedGuard() gin.HandlerFunc {
	return h.signatures.Require(func(c *gin.Context) {
		h.metrics.IncWebhookEvent(observability.EventCallEnded, observability.OutcomeRejected)
		h.errors.Respond(c, apierrors.Forbidden(apierrors.CodeInvalidSignature, "Invalid webhook signature"))
	})
}

// HandleIncomingCall records the call and answers with a document that bridges it to the
// media relay. Every failure still produces a playable document.
func (h *Handler) HandleIncomingCall(c *gin.Context) {
	ctx := c.Request.Context()

	params := processor.CallStartedParams{
		CallSID:     c.PostForm("CallSid"),
		CallerPhone: c.PostForm("From"),
		CalleePhone: c.PostForm("To"),
	}
	h.logger.Info(ctx, fmt.Sprintf("incoming call from %s (sid %s)", params.CallerPhone, params.CallSID))

	log, err := h.processor.OnCallStarted(ctx, params)
	if err != nil {
		h.logger.Error(ctx, "failed to handle incoming call", err)
		h.writeTwiML(c, twilio.Apology())
		return
	}

	doc, err := twilio.ConnectStream(h.mediaRelayURL(c), params.CallSID, log.ID)
	if err != nil {
		h.logger.Error(ctx, "failed to render connect document", err)
		h.writeTwiML(c, twilio.Apology())
		return
	}
	h.writeTwiML(c, doc)
}

// HandleCallEnded completes the call log the notification belongs to.
func (h *Handler) HandleCallEnded(c *gin.Context) {
	ctx := c.Request.Context()

	var event processor.CallEndedEvent
	if err := c.ShouldBind(&event); err != nil {
		h.logger.Error(ctx, "failed to bind call ended webhook", err)
		h.errors.Respond(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid webhook data"))
		return
	}

	outcome, err := h.processor.OnCallEnded(ctx, event)
	if err != nil {
		apiErr := apierrors.MapError(err)
		if apiErr.StatusCode == http.StatusBadRequest {
			apiErr = apiErr.WithMessage("Invalid webhook data")
		} else {
			apiErr = apiErr.WithMessage("Failed to process call ended webhook")
		}
		h.errors.Respond(c, apiErr)
		return
	}

	h.logger.Info(ctx, fmt.Sprintf("call ended webhook handled: %s", outcome))
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *Handler) mediaRelayURL(c *gin.Context) string {
	if h.streamURL != "" {
		return h.streamURL
	}
	return fmt.Sprintf("wss://%s/ws/stream", c.Request.Host)
}

func (h *Handler) writeTwiML(c *gin.Context, doc string) {
	c.Data(http.StatusOK, twilio.ContentType, []byte(doc))
}
