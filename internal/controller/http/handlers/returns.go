package handlers

import (
	"net/http"
	"strconv"
	"time"

	"returnhub/internal/domain/returns"
	"returnhub/internal/export"

	"github.com/gin-gonic/gin"
)

// staffHeader carries the acting staff member's ID. Authentication sits in
// front of this service; the header is trusted.
const staffHeader = "X-Staff-ID"

// ReturnHandler serves the staff dashboard endpoints.
type ReturnHandler struct {
	service  *returns.ReturnService
	exporter *export.ExcelExporter
}

func NewReturnHandler(s *returns.ReturnService, exporter *export.ExcelExporter) ReturnHandler {
	return ReturnHandler{service: s, exporter: exporter}
}

func (h *ReturnHandler) Filter(c *gin.Context) {
	query, err := h.buildQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	requests, total, err := h.service.QueryRequests(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": requests, "total": total})
}

func (h *ReturnHandler) Get(c *gin.Context) {
	detail, err := h.service.GetDetail(c.Request.Context(), c.Param("return_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

type updateStatusRequest struct {
	Status           string `json:"status" binding:"required"`
	Notes            string `json:"notes"`
	TrackingNumber   string `json:"tracking_number"`
	LogisticsCompany string `json:"logistics_company"`
}

func (h *ReturnHandler) UpdateStatus(c *gin.Context) {
	var body updateStatusRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	updated, err := h.service.UpdateStatus(c.Request.Context(), returns.UpdateStatus{
		RequestID: c.Param("return_id"),
		To:        returns.Status(body.Status),
		ActorType: returns.ActorTypeStaff,
		Change: returns.StatusChange{
			ActorID:          c.GetHeader(staffHeader),
			Notes:            body.Notes,
			TrackingNumber:   body.TrackingNumber,
			LogisticsCompany: body.LogisticsCompany,
		},
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

type submitInspectionRequest struct {
	Result           string            `json:"result" binding:"required"`
	ConditionGrade   string            `json:"condition_grade" binding:"required"`
	Checklist        returns.Checklist `json:"checklist"`
	Notes            string            `json:"notes"`
	InspectorComment string            `json:"inspector_comment"`
}

func (h *ReturnHandler) SubmitInspection(c *gin.Context) {
	var body submitInspectionRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	record, err := h.service.SubmitInspection(c.Request.Context(), returns.SubmitInspection{
		NewInspectionRecord: returns.NewInspectionRecord{
			ReturnRequestID:  c.Param("return_id"),
			InspectorID:      c.GetHeader(staffHeader),
			Result:           returns.InspectionResult(body.Result),
			ConditionGrade:   returns.ConditionGrade(body.ConditionGrade),
			Checklist:        body.Checklist,
			Notes:            body.Notes,
			InspectorComment: body.InspectorComment,
		},
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

type processRefundRequest struct {
	Amount     float64 `json:"amount" binding:"required"`
	RefundType string  `json:"refund_type"`
	Method     string  `json:"method"`
	Notes      string  `json:"notes"`
}

func (h *ReturnHandler) ProcessRefund(c *gin.Context) {
	var body processRefundRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	updated, err := h.service.ProcessRefund(c.Request.Context(), returns.ProcessRefund{
		RequestID:  c.Param("return_id"),
		ActorID:    c.GetHeader(staffHeader),
		Amount:     body.Amount,
		RefundType: returns.RefundType(body.RefundType),
		Method:     body.Method,
		Notes:      body.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

type updateInfoRequest struct {
	TrackingNumber       *string `json:"tracking_number"`
	LogisticsCompany     *string `json:"logistics_company"`
	ReturnShippingMethod *string `json:"return_shipping_method"`
	RefundType           *string `json:"refund_type"`
	ReviewNotes          *string `json:"review_notes"`
	DisputeNotes         *string `json:"dispute_notes"`
}

func (h *ReturnHandler) UpdateInfo(c *gin.Context) {
	var body updateInfoRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	cmd := returns.UpdateReturnInfo{
		RequestID:        c.Param("return_id"),
		ActorType:        returns.ActorTypeStaff,
		ActorID:          c.GetHeader(staffHeader),
		TrackingNumber:   body.TrackingNumber,
		LogisticsCompany: body.LogisticsCompany,
		ReviewNotes:      body.ReviewNotes,
		DisputeNotes:     body.DisputeNotes,
	}
	if body.ReturnShippingMethod != nil {
		method := returns.ShippingMethod(*body.ReturnShippingMethod)
		cmd.ReturnShippingMethod = &method
	}
	if body.RefundType != nil {
		refundType := returns.RefundType(*body.RefundType)
		cmd.RefundType = &refundType
	}

	updated, err := h.service.UpdateReturnInfo(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *ReturnHandler) Statistics(c *gin.Context) {
	query, err := h.buildQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	stats, err := h.service.GetStatistics(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *ReturnHandler) Activity(c *gin.Context) {
	entries, err := h.service.ListActivity(c.Request.Context(), c.Param("return_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (h *ReturnHandler) Inspections(c *gin.Context) {
	records, err := h.service.ListInspections(c.Request.Context(), c.Param("return_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

func (h *ReturnHandler) Export(c *gin.Context) {
	query, err := h.buildQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	// exports are unpaginated
	query.Limit = 0
	query.Offset = 0

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+export.Filename(time.Now()))

	if err := h.exporter.Export(c.Request.Context(), query, c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
}

func (h *ReturnHandler) buildQuery(c *gin.Context) (returns.ReturnsQuery, error) {
	builder := returns.NewReturnsQueryBuilder()

	for _, raw := range c.QueryArray("status") {
		status, err := returns.ParseStatus(raw)
		if err != nil {
			return returns.ReturnsQuery{}, err
		}
		builder.WithStatuses(status)
	}
	if channels := c.QueryArray("channel"); len(channels) > 0 {
		builder.WithChannels(channels...)
	}
	for _, raw := range c.QueryArray("reason") {
		builder.WithReasonCategories(returns.ParseReasonCategory(raw))
	}
	if orderID := c.Query("order_id"); orderID != "" {
		builder.WithOrderID(orderID)
	}
	if customerID := c.Query("customer_id"); customerID != "" {
		builder.WithCustomerID(customerID)
	}
	if search := c.Query("search"); search != "" {
		builder.WithSearch(search)
	}
	if from, to := c.Query("from"), c.Query("to"); from != "" && to != "" {
		fromTime, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return returns.ReturnsQuery{}, err
		}
		toTime, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return returns.ReturnsQuery{}, err
		}
		builder.WithCreatedBetween(fromTime, toTime)
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return returns.ReturnsQuery{}, err
		}
		builder.WithLimit(limit)
	}
	if raw := c.Query("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			return returns.ReturnsQuery{}, err
		}
		builder.WithOffset(offset)
	}

	return builder.Build()
}
