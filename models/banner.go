package models

import "time"

// BannerImage is one image of a promotional banner.
type BannerImage struct {
	URL string `json:"url"`
	ID  string `json:"_id,omitempty"`
}

// Banner is a storefront banner as returned by the commerce API.
type Banner struct {
	ID        string        `json:"_id,omitempty"`
	Images    []BannerImage `json:"bannerImg,omitempty"`
	IsActive  bool          `json:"isActive"`
	CreatedAt time.Time     `json:"createdAt,omitempty"`
	UpdatedAt time.Time     `json:"updatedAt,omitempty"`
}

// BannerStatusRequest toggles a banner's active flag.
type BannerStatusRequest struct {
	IsActive bool `json:"isActive"`
}
