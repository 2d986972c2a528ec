package apierrors

import (
	"answering-service/internal/observability"
	"answering-service/internal/validation"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the JSON structure returned to API clients for errors
type ErrorResponse struct {
	Error   string                  `json:"error"`
	Code    string                  `json:"code,omitempty"`
	Details []validation.FieldError `json:"details,omitempty"`
}

// Responder writes sanitized error responses and logs them for correlation.
type Responder struct {
	logger *observability.Logger
}

func NewResponder(logger *observability.Logger) Responder {
	return Responder{logger: logger}
}

// RespondWithError handles error logging and sends a sanitized JSON response to the client.
//
// Example usage:
//
//	if err != nil {
//	    h.errors.RespondWithError(c, err)
//	    return
//	}
func (r Responder) RespondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	r.Respond(c, MapError(err))
}

// Respond sends apiErr as is. 5xx responses log the internal cause at error level.
func (r Responder) Respond(c *gin.Context, apiErr *APIError) {
	ctx := observability.WithFields(c.Request.Context(),
		observability.Field{Key: "status_code", Value: apiErr.StatusCode},
		observability.Field{Key: "error_code", Value: apiErr.Code},
		observability.Field{Key: "error_message", Value: apiErr.Message},
	)
	if apiErr.StatusCode >= 500 {
		r.logger.Error(ctx, "API error response", apiErr.Internal)
	} else {
		r.logger.Info(ctx, "API error response")
	}

	c.AbortWithStatusJSON(apiErr.StatusCode, ErrorResponse{
		Error:   apiErr.Message,
		Code:    apiErr.Code,
		Details: apiErr.Details,
	})
}
