package models

import "time"

// ProductImage is one entry of a product's image gallery.
type ProductImage struct {
	URL string `json:"url"`
	ID  string `json:"_id,omitempty"`
}

// Product is a deliverable product as returned by the commerce API.
type Product struct {
	ID              string         `json:"_id,omitempty"`
	Title           string         `json:"title"`
	Description     string         `json:"description,omitempty"`
	SellingPrice    string         `json:"sellingPrice,omitempty"`
	MeasurementUnit string         `json:"measurementUnit,omitempty"`
	CapacityVolume  string         `json:"capacityVolume,omitempty"`
	BulkAvailable   bool           `json:"bulkAvailable"`
	BulkMinQuantity string         `json:"bulkMinQuantity,omitempty"`
	Images          []ProductImage `json:"productImg,omitempty"`
	CreatedAt       time.Time      `json:"createdAt,omitempty"`
	UpdatedAt       time.Time      `json:"updatedAt,omitempty"`
}
