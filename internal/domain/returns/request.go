package returns

import (
	"fmt"
	"math/rand"
	"slices"
	"strconv"
	"strings"
	"time"

	"returnhub/internal/domain/orders"
)

// ReturnRequest is one customer return claim. Requests are never hard-deleted;
// closure is terminal.
type ReturnRequest struct {
	ID            string `json:"id"`
	RequestNumber string `json:"request_number"`
	Status        Status `json:"status"`
	RequestInfo
}

// NewReturnRequest carries the fields of a request about to be created. The
// store assigns ID and RequestNumber.
type NewReturnRequest struct {
	Status Status
	RequestInfo
}

type RequestInfo struct {
	OrderID    string  `json:"order_id"`
	CustomerID *string `json:"customer_id,omitempty"`

	ChannelSource        orders.Channel `json:"channel_source"`
	ReasonCategory       ReasonCategory `json:"reason_category"`
	ReasonDetail         string         `json:"reason_detail"`
	ReturnShippingMethod ShippingMethod `json:"return_shipping_method"`

	RefundType        RefundType `json:"refund_type"`
	RefundAmount      *float64   `json:"refund_amount,omitempty"`
	RefundMethod      string     `json:"refund_method,omitempty"`
	RefundNumber      string     `json:"refund_number,omitempty"`
	RefundNotes       string     `json:"refund_notes,omitempty"`
	RefundProcessedBy *string    `json:"refund_processed_by,omitempty"`

	TrackingNumber   string `json:"tracking_number,omitempty"`
	LogisticsCompany string `json:"logistics_company,omitempty"`

	ReviewNotes     string `json:"review_notes,omitempty"`
	InspectionNotes string `json:"inspection_notes,omitempty"`
	DisputeNotes    string `json:"dispute_notes,omitempty"`

	ReviewedBy  *string `json:"reviewed_by,omitempty"`
	InspectedBy *string `json:"inspected_by,omitempty"`

	AppliedAt         time.Time  `json:"applied_at"`
	ApprovedAt        *time.Time `json:"approved_at,omitempty"`
	ShippedAt         *time.Time `json:"shipped_at,omitempty"`
	ReceivedAt        *time.Time `json:"received_at,omitempty"`
	InspectedAt       *time.Time `json:"inspected_at,omitempty"`
	RefundProcessedAt *time.Time `json:"refund_processed_at,omitempty"`
	ClosedAt          *time.Time `json:"closed_at,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

// ReasonCategory classifies why the customer is returning goods.
type ReasonCategory string

const (
	ReasonQualityIssue      ReasonCategory = "quality_issue"
	ReasonWrongItem         ReasonCategory = "wrong_item"
	ReasonDamagedInTransit  ReasonCategory = "damaged_in_transit"
	ReasonNotAsDescribed    ReasonCategory = "not_as_described"
	ReasonChangeOfMind      ReasonCategory = "change_of_mind"
	ReasonInstallationIssue ReasonCategory = "installation_issue"
	ReasonDefective         ReasonCategory = "defective"
	ReasonSizeNotFit        ReasonCategory = "size_not_fit"
	ReasonHygiene           ReasonCategory = "hygiene"
	ReasonOther             ReasonCategory = "other"
)

var AvailableReasonCategories = []ReasonCategory{
	ReasonQualityIssue, ReasonWrongItem, ReasonDamagedInTransit,
	ReasonNotAsDescribed, ReasonChangeOfMind, ReasonInstallationIssue,
	ReasonDefective, ReasonSizeNotFit, ReasonHygiene, ReasonOther,
}

// ParseReasonCategory collapses unknown categories to ReasonOther, the same
// way the portal accepts free-form channel data.
func ParseReasonCategory(raw string) ReasonCategory {
	if slices.Contains(AvailableReasonCategories, ReasonCategory(raw)) {
		return ReasonCategory(raw)
	}
	return ReasonOther
}

// ShippingMethod is how the goods travel back to the warehouse.
type ShippingMethod string

const (
	ShipSelf             ShippingMethod = "self_ship"
	ShipConvenienceStore ShippingMethod = "convenience_store"
	ShipCompanyPickup    ShippingMethod = "company_pickup"
)

var AvailableShippingMethods = []ShippingMethod{ShipSelf, ShipConvenienceStore, ShipCompanyPickup}

func ParseShippingMethod(raw string) (ShippingMethod, error) {
	if slices.Contains(AvailableShippingMethods, ShippingMethod(raw)) {
		return ShippingMethod(raw), nil
	}
	return "", fmt.Errorf("%w: unknown shipping method %q", ErrValidation, raw)
}

// RefundType is how the customer gets their money back.
type RefundType string

const (
	RefundOriginalPayment RefundType = "original_payment"
	RefundStoreCredit     RefundType = "store_credit"
	RefundBankTransfer    RefundType = "bank_transfer"
	RefundPending         RefundType = "pending"
)

var AvailableRefundTypes = []RefundType{RefundOriginalPayment, RefundStoreCredit, RefundBankTransfer, RefundPending}

func ParseRefundType(raw string) (RefundType, error) {
	if slices.Contains(AvailableRefundTypes, RefundType(raw)) {
		return RefundType(raw), nil
	}
	return "", fmt.Errorf("%w: unknown refund type %q", ErrValidation, raw)
}

// NewRequestNumber generates a human-facing request number: "RT" plus the
// base36 millisecond timestamp and a short random suffix for uniqueness
// within the same millisecond.
func NewRequestNumber(now time.Time) string {
	ts := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
	suffix := strings.ToUpper(strconv.FormatInt(int64(rand.Intn(36*36*36)), 36))
	return fmt.Sprintf("RT%s%03s", ts, suffix)
}

// NewRefundNumber generates a refund reference number with the RF prefix.
func NewRefundNumber(now time.Time) string {
	return "RF" + strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
}
