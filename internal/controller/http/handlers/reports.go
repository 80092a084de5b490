package handlers

import (
	"net/http"

	"returnhub/internal/domain/analysis"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves the monthly analysis reports.
type ReportHandler struct {
	service *analysis.AnalysisService
}

func NewReportHandler(s *analysis.AnalysisService) ReportHandler {
	return ReportHandler{service: s}
}

func (h *ReportHandler) Generate(c *gin.Context) {
	month := c.Param("month")
	if month == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "month is required"})
		return
	}

	report, err := h.service.GenerateMonthlyReport(c.Request.Context(), month)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, report)
}

func (h *ReportHandler) Get(c *gin.Context) {
	report, err := h.service.GetReport(c.Request.Context(), c.Param("month"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *ReportHandler) List(c *gin.Context) {
	reports, err := h.service.ListReports(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reports)
}
