package models

import "time"

// DeliveryCharge partitions delivery pricing into retail and bulk rates.
type DeliveryCharge struct {
	ID        string    `json:"_id,omitempty"`
	Amount    float64   `json:"deliveryCharge"`
	IsBulk    bool      `json:"isBulk"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// DeliveryChargeRequest is the create/update payload for a delivery charge.
type DeliveryChargeRequest struct {
	Amount float64 `json:"deliveryCharge" validate:"required,gt=0"`
	IsBulk bool    `json:"isBulk"`
}
