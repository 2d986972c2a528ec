package handler

import (
	"context"
	"net/http"

	"answering-service/internal/analytics/processor"
	"answering-service/internal/apierrors"
	"answering-service/internal/observability"

	"github.com/gin-gonic/gin"
)

// Processor computes the dashboard statistics.
type Processor interface {
	GetCallStats(ctx context.Context) (processor.CallStatsResponse, error)
}

type Handler struct {
	processor Processor
	errors    apierrors.Responder
	logger    *observability.Logger
}

func New(processor Processor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		errors:    apierrors.NewResponder(logger),
		logger:    logger,
	}
}

// HandleGetCallStats serves GET /api/stats
func (h *Handler) HandleGetCallStats(c *gin.Context) {
	stats, err := h.processor.GetCallStats(c.Request.Context())
	if err != nil {
		h.errors.Respond(c, apierrors.MapError(err).WithMessage("Failed to retrieve statistics"))
		return
	}
	c.JSON(http.StatusOK, stats)
}
