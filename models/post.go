package models

import "time"

// AuthorData is the nested author sub-object a post carries. It travels as a
// JSON-encoded string inside the multipart create/update payload.
type AuthorData struct {
	Author         string `json:"author"`
	AuthorImg      string `json:"authorImg,omitempty"`
	AuthorImgTitle string `json:"authorImgTitle,omitempty"`
	AuthorImgAlt   string `json:"authorImgAlt,omitempty"`
}

// PostImage is the stored image reference on a news post.
type PostImage struct {
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
	Alt   string `json:"alt,omitempty"`
}

// PostCategoryRef is the populated category/subcategory reference embedded in
// list and detail responses.
type PostCategoryRef struct {
	ID   string `json:"_id"`
	Name string `json:"categoryName,omitempty"`
}

// PostSubCategoryRef mirrors PostCategoryRef for the subcategory side.
type PostSubCategoryRef struct {
	ID   string `json:"_id"`
	Name string `json:"subCategoryName,omitempty"`
}

// Post is a news post as returned by the content API. Content is editor-
// produced HTML and is passed through untouched.
type Post struct {
	ID              string              `json:"_id,omitempty"`
	Heading         string              `json:"heading"`
	Title           string              `json:"title"`
	Content         string              `json:"content"`
	Description     string              `json:"description,omitempty"`
	AuthorData      *AuthorData         `json:"authorData,omitempty"`
	MetaTitle       string              `json:"metaTitle,omitempty"`
	MetaDescription string              `json:"metaDescription,omitempty"`
	Keywords        []string            `json:"keywords,omitempty"`
	ImageURL        *PostImage          `json:"imageUrl,omitempty"`
	CustomURL       string              `json:"customUrl,omitempty"`
	Category        *PostCategoryRef    `json:"catId,omitempty"`
	SubCategory     *PostSubCategoryRef `json:"subCatId,omitempty"`
	BigScreen       bool                `json:"bigScreen"`
	Published       bool                `json:"published"`
	MostPopular     bool                `json:"mostPopular"`
	MustReads       bool                `json:"mustReads"`
	FeaturedVideos  bool                `json:"featuredVideos"`
	Lifestyle       bool                `json:"lifestyle"`
	Podcasts        bool                `json:"podcasts"`
	YouMayAlsoLike  bool                `json:"youMayAlsoLike"`
	CreatedAt       time.Time           `json:"createdAt,omitempty"`
	UpdatedAt       time.Time           `json:"updatedAt,omitempty"`
}

// PostFilter captures the list-screen filters. SubCategoryID is only honored
// when CategoryID is set, matching the dependent filter controls.
type PostFilter struct {
	Search        string
	Published     string
	CategoryID    string
	SubCategoryID string
}

// IndexingRequest asks the search-indexing service to recrawl one URL.
type IndexingRequest struct {
	URL string `json:"url" validate:"required,url"`
}
