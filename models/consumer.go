package models

import "time"

// ProfilePic is a consumer's avatar reference.
type ProfilePic struct {
	URL string `json:"url,omitempty"`
}

// Consumer is a read-only customer profile from the commerce API.
type Consumer struct {
	ID             string      `json:"_id,omitempty"`
	FullName       string      `json:"fullName,omitempty"`
	Phone          string      `json:"phone,omitempty"`
	Email          string      `json:"email,omitempty"`
	Gender         string      `json:"gender,omitempty"`
	DOB            string      `json:"dob,omitempty"`
	AniversaryDate string      `json:"aniversaryDate,omitempty"`
	Role           string      `json:"role,omitempty"`
	ProfilePic     *ProfilePic `json:"profilePic,omitempty"`
	CreatedAt      time.Time   `json:"createdAt,omitempty"`
}

// ConsumerPage is one page sliced out of the fully fetched consumer list.
type ConsumerPage struct {
	Consumers []Consumer `json:"consumers"`
	Total     int        `json:"total"`
	Page      int        `json:"page"`
	Limit     int        `json:"limit"`
}

// DashboardStats aggregates headline counts for the dashboard home screen.
type DashboardStats struct {
	TotalCategories int `json:"totalCategories"`
	TotalPosts      int `json:"totalPosts"`
	PublishedPosts  int `json:"publishedPosts"`
	TotalProducts   int `json:"totalProducts"`
	TotalBanners    int `json:"totalBanners"`
	ActiveBanners   int `json:"activeBanners"`
	TotalConsumers  int `json:"totalConsumers"`
}
