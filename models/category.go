package models

import "time"

// Category is the two-level taxonomy root as returned by the content API.
type Category struct {
	ID        string    `json:"_id,omitempty"`
	Name      string    `json:"categoryName"`
	Image     string    `json:"categoryImg"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// SubCategory belongs to exactly one category.
type SubCategory struct {
	ID         string    `json:"_id,omitempty"`
	Name       string    `json:"subCategoryName"`
	CategoryID string    `json:"catId,omitempty"`
	CreatedAt  time.Time `json:"createdAt,omitempty"`
	UpdatedAt  time.Time `json:"updatedAt,omitempty"`
}

// CategoryRequest is the create/update payload for a category.
type CategoryRequest struct {
	Name  string `json:"categoryName" validate:"required"`
	Image string `json:"categoryImg" validate:"required,url"`
}

// SubCategoryRequest is the create/update payload for a subcategory.
type SubCategoryRequest struct {
	Name string `json:"subCategoryName" validate:"required"`
}
