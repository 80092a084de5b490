package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"returnhub/internal/domain/analysis"
	"returnhub/internal/domain/orders"
	"returnhub/internal/domain/returns"

	"github.com/gin-gonic/gin"
)

// respondError maps domain sentinel errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, returns.ErrValidation),
		errors.Is(err, analysis.ErrInvalidMonth):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, returns.ErrNotFound),
		errors.Is(err, orders.ErrNotFound),
		errors.Is(err, analysis.ErrReportNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, returns.ErrConcurrentUpdate):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	case errors.Is(err, returns.ErrChannelRestricted),
		errors.Is(err, returns.ErrDeadlineExpired),
		errors.Is(err, returns.ErrEligibilityUnknown),
		errors.Is(err, returns.ErrRequestClosed),
		errors.Is(err, returns.ErrInvalidTransition),
		errors.Is(err, returns.ErrRefundNotReady),
		errors.Is(err, analysis.ErrNoData),
		errors.Is(err, analysis.ErrMalformedResponse):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
	default:
		// store failures keep their cause out of the response body
		slog.ErrorContext(c.Request.Context(), "request failed",
			"method", c.Request.Method, "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
	}
}
