package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"returnhub/internal/domain/analysis"
	"returnhub/internal/domain/orders"
	"returnhub/internal/domain/returns"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"validation maps to 400", returns.ErrValidation, http.StatusBadRequest},
		{"invalid month maps to 400", analysis.ErrInvalidMonth, http.StatusBadRequest},
		{"missing request maps to 404", returns.ErrNotFound, http.StatusNotFound},
		{"missing order maps to 404", orders.ErrNotFound, http.StatusNotFound},
		{"missing report maps to 404", analysis.ErrReportNotFound, http.StatusNotFound},
		{"concurrent update maps to 409", returns.ErrConcurrentUpdate, http.StatusConflict},
		{"channel restriction maps to 422", returns.ErrChannelRestricted, http.StatusUnprocessableEntity},
		{"expired window maps to 422", returns.ErrDeadlineExpired, http.StatusUnprocessableEntity},
		{"closed request maps to 422", returns.ErrRequestClosed, http.StatusUnprocessableEntity},
		{"bad transition maps to 422", returns.ErrInvalidTransition, http.StatusUnprocessableEntity},
		{"no data maps to 422", analysis.ErrNoData, http.StatusUnprocessableEntity},
		{"wrapped sentinel keeps its status", fmt.Errorf("get request: %w", returns.ErrNotFound), http.StatusNotFound},
		{"unknown errors map to 500", errors.New("pool exhausted"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)
			c.Request = httptest.NewRequest(http.MethodGet, "/returns", nil)

			respondError(c, tc.err)

			assert.Equal(t, tc.expected, recorder.Code)
			assert.Contains(t, recorder.Body.String(), "message")
		})
	}
}

func TestRespondError_StoreFailureStaysGeneric(t *testing.T) {
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/returns", nil)

	respondError(c, errors.New("pq: connection refused on 10.0.3.7:5432"))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "internal error")
	assert.NotContains(t, recorder.Body.String(), "10.0.3.7", "cause must not leak to the client")
}
