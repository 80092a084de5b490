package returns

import "time"

// ReturnItem is one line item (SKU + quantity + reason) of a request.
// Created at submission; afterwards only name/SKU/refund allocation may be
// edited by staff.
type ReturnItem struct {
	ID              string `json:"id"`
	ReturnRequestID string `json:"return_request_id"`
	NewReturnItem
}

type NewReturnItem struct {
	OrderItemID      string   `json:"order_item_id"`
	ProductName      string   `json:"product_name"`
	ProductSKU       string   `json:"product_sku"`
	Quantity         int      `json:"quantity"`
	Reason           string   `json:"reason"`
	RefundAllocation *float64 `json:"refund_allocation,omitempty"`
}

// ImageType categorizes an evidence photo.
type ImageType string

const (
	ImageShippingLabel ImageType = "shipping_label"
	ImageProductDamage ImageType = "product_damage"
	ImageOuterBox      ImageType = "outer_box"
	ImageInspection    ImageType = "inspection"
	ImageOther         ImageType = "other"
)

// ReturnImage is an immutable evidence photo attached at submission
// (customer) or during inspection (staff).
type ReturnImage struct {
	ID              string    `json:"id"`
	ReturnRequestID string    `json:"return_request_id"`
	CreatedAt       time.Time `json:"created_at"`
	NewReturnImage
}

type NewReturnImage struct {
	ImageURL    string    `json:"image_url"`
	StoragePath string    `json:"storage_path"`
	ImageType   ImageType `json:"image_type"`
	UploadedBy  string    `json:"uploaded_by"` // customer | staff
}

// Image count bounds for a customer submission.
const (
	MinSubmissionImages = 3
	MaxSubmissionImages = 5
)
