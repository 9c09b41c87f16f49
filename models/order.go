package models

import (
	"encoding/json"
	"time"
)

// Order statuses accepted by the status-update workflow.
const (
	OrderStatusPending   = "Pending"
	OrderStatusAccepted  = "Accepted"
	OrderStatusDelivered = "Delivered"
	OrderStatusCancelled = "Cancelled"
)

// ValidOrderStatus reports whether s is one of the fixed workflow statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusAccepted, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem is one product line of an order.
type OrderItem struct {
	ProductID    string  `json:"productId,omitempty"`
	Title        string  `json:"title,omitempty"`
	Quantity     int     `json:"quantity,omitempty"`
	Price        float64 `json:"price,omitempty"`
	ProductTotal float64 `json:"Product_total,omitempty"`
}

// OrderProductData aggregates an order's lines and totals.
type OrderProductData struct {
	Items               []OrderItem `json:"items,omitempty"`
	TotalItem           int         `json:"totalItem,omitempty"`
	TotalProductPrice   float64     `json:"totalProductPrice,omitempty"`
	TotalDeliveryCharge float64     `json:"totalDeliveryCharge,omitempty"`
	TotalFloorCharge    float64     `json:"totalFloorCharge,omitempty"`
}

// ShippingInfo is the delivery address block of an order.
type ShippingInfo struct {
	FullName      string `json:"fullName,omitempty"`
	HouseNo       string `json:"houseNo,omitempty"`
	StreetNo      string `json:"StreetNo,omitempty"`
	LandMark      string `json:"landMark,omitempty"`
	VillageOrArea string `json:"villageOrArea,omitempty"`
	Pincode       string `json:"pincode,omitempty"`
	Phone         string `json:"phone,omitempty"`
	AltPhone      string `json:"altPhone,omitempty"`
}

// TrackingDetail is one entry of the ordered status history.
type TrackingDetail struct {
	Status    string    `json:"status,omitempty"`
	Reason    string    `json:"reason,omitempty"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// Order is an order as returned by the commerce API. PaymentMethod arrives
// either as a string or as a {cod, online} object, so it stays raw.
type Order struct {
	ID              string           `json:"_id,omitempty"`
	ProductData     OrderProductData `json:"productData,omitempty"`
	ShippingInfo    ShippingInfo     `json:"shippingInfo,omitempty"`
	PaymentMethod   json.RawMessage  `json:"paymentMethod,omitempty"`
	TrackingDetails []TrackingDetail `json:"trackingDetails,omitempty"`
	CreatedAt       time.Time        `json:"createdAt,omitempty"`
	UpdatedAt       time.Time        `json:"updatedAt,omitempty"`
}

// OrderFilter carries the list screen's server-side filters.
type OrderFilter struct {
	Search   string
	FromDate string
	ToDate   string
}

// OrderStatusRequest mutates an order's status. Reason is required when the
// status is Cancelled and dropped otherwise.
type OrderStatusRequest struct {
	OrderStatus string `json:"orderStatus" validate:"required"`
	Reason      string `json:"reason,omitempty"`
}

// VerifyDeliveryRequest carries the one-time code collected from the customer
// at handover.
type VerifyDeliveryRequest struct {
	OTP string `json:"otp" validate:"required,numeric"`
}
