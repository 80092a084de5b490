package handlers

import (
	"net/http"

	"returnhub/internal/domain/returns"

	"github.com/gin-gonic/gin"
)

// PortalHandler serves the customer-facing endpoints. There are no accounts;
// customers identify themselves with an order number and phone, and track
// requests by request number.
type PortalHandler struct {
	service *returns.ReturnService
}

func NewPortalHandler(s *returns.ReturnService) PortalHandler {
	return PortalHandler{service: s}
}

func (h *PortalHandler) Login(c *gin.Context) {
	var login returns.CustomerLogin
	if err := c.ShouldBindJSON(&login); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	session, err := h.service.CustomerLogin(c.Request.Context(), login)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

type submitReturnRequest struct {
	OrderID              string                   `json:"order_id" binding:"required"`
	ReasonCategory       string                   `json:"reason_category" binding:"required"`
	ReasonDetail         string                   `json:"reason_detail"`
	ReturnShippingMethod string                   `json:"return_shipping_method" binding:"required"`
	RefundType           string                   `json:"refund_type"`
	Items                []returns.NewReturnItem  `json:"items" binding:"required"`
	Images               []returns.NewReturnImage `json:"images" binding:"required"`
}

func (h *PortalHandler) Submit(c *gin.Context) {
	var body submitReturnRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	shipping, err := returns.ParseShippingMethod(body.ReturnShippingMethod)
	if err != nil {
		respondError(c, err)
		return
	}
	refundType := returns.RefundPending
	if body.RefundType != "" {
		if refundType, err = returns.ParseRefundType(body.RefundType); err != nil {
			respondError(c, err)
			return
		}
	}

	for i := range body.Images {
		body.Images[i].UploadedBy = "customer"
	}

	detail, err := h.service.SubmitApplication(c.Request.Context(), returns.SubmitApplication{
		OrderID:              body.OrderID,
		ActorType:            returns.ActorTypeCustomer,
		ReasonCategory:       returns.ParseReasonCategory(body.ReasonCategory),
		ReasonDetail:         body.ReasonDetail,
		ReturnShippingMethod: shipping,
		RefundType:           refundType,
		Items:                body.Items,
		Images:               body.Images,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, detail)
}

func (h *PortalHandler) Track(c *gin.Context) {
	requestNumber := c.Param("request_number")
	if requestNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "request_number is required"})
		return
	}

	detail, err := h.service.TrackByNumber(c.Request.Context(), requestNumber)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}
