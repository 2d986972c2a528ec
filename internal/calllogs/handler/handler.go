package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"answering-service/internal/apierrors"
	"answering-service/internal/calllogs/processor"
	"answering-service/internal/observability"
	"answering-service/internal/store"
	"answering-service/internal/validation"

	"github.com/gin-gonic/gin"
)

// Processor is the read side of the call log API.
type Processor interface {
	ListCalls(ctx context.Context, page, perPage int) (processor.ListCallsResult, error)
	GetCall(ctx context.Context, id int64) (store.CallLog, error)
	Search(ctx context.Context, req processor.SearchRequest) (processor.SearchResult, error)
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

// queryInt reads an integer query parameter, falling back when it is absent or malformed.
func queryInt(c *gin.Context, key string, fallback int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return fallback
	}
	return v
}

// HandleListCalls serves GET /api/calls?page&per_page
func (h *Handler) HandleListCalls(c *gin.Context) {
	page := queryInt(c, "page", processor.DefaultPage)
	perPage := queryInt(c, "per_page", processor.DefaultPerPage)

	result, err := h.processor.ListCalls(c.Request.Context(), page, perPage)
	if err != nil {
		h.errors.Respond(c, apierrors.MapError(err).WithMessage("Failed to retrieve calls"))
		return
	}
	c.JSON(http.StatusOK, result)
}

// HandleGetCall serves GET /api/calls/:id
func (h *Handler) HandleGetCall(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		h.errors.Respond(c, apierrors.NotFound("Call not found"))
		return
	}

	log, err := h.processor.GetCall(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, processor.ErrCallNotFound) {
			h.errors.Respond(c, apierrors.NotFound("Call not found"))
			return
		}
		h.errors.Respond(c, apierrors.MapError(err).WithMessage("Failed to retrieve call"))
		return
	}
	c.JSON(http.StatusOK, log)
}

// HandleSearchCalls serves POST /api/calls/search
func (h *Handler) HandleSearchCalls(c *gin.Context) {
	var req processor.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Info(c.Request.Context(), "malformed search body: "+err.Error())
		h.errors.Respond(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid search parameters"))
		return
	}

	result, err := h.processor.Search(c.Request.Context(), req)
	if err != nil {
		if vErr, ok := validation.AsError(err); ok {
			h.errors.Respond(c, apierrors.Invalid("Invalid search parameters", vErr.Fields))
			return
		}
		h.errors.Respond(c, apierrors.MapError(err).WithMessage("Search failed"))
		return
	}
	c.JSON(http.StatusOK, result)
}
