package controllers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/thenewstale/admin-console/middleware"
	"github.com/thenewstale/admin-console/models"
	"github.com/thenewstale/admin-console/services"
	"github.com/thenewstale/admin-console/session"
	"github.com/thenewstale/admin-console/utils"
)

// postTextFields are the authoring form fields forwarded to the platform
// unchanged. Keywords are handled separately because the form sends a
// comma-joined string while the API wants a JSON array.
var postTextFields = []string{
	"heading", "title", "content", "description",
	"authorData", "metaTitle", "metaDescription",
	"imageUrlTitle", "imageUrlAlt", "customUrl",
	"bigScreen", "published", "mostPopular", "mustReads",
	"featuredVideos", "lifestyle", "podcasts", "youMayAlsoLike",
}

type PostController struct {
	Content  *services.ContentService
	Sessions *session.Manager
}

func NewPostController(content *services.ContentService, sessions *session.Manager) *PostController {
	return &PostController{Content: content, Sessions: sessions}
}

// GetPosts lists every post and applies the console's list filters over the
// fetched set. A subcategory filter without a category filter is rejected,
// matching the dependent filter controls on the list screen.
func (pc *PostController) GetPosts(c echo.Context) error {
	filter := models.PostFilter{
		Search:        strings.TrimSpace(c.QueryParam("search")),
		Published:     c.QueryParam("published"),
		CategoryID:    c.QueryParam("categoryId"),
		SubCategoryID: c.QueryParam("subCategoryId"),
	}

	if filter.SubCategoryID != "" && filter.CategoryID == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "A subcategory filter requires a category filter",
		})
	}

	posts, err := pc.Content.GetPosts(c.Request().Context(), middleware.AdminToken(c))
	if err != nil {
		return upstreamError(c, pc.Sessions, err)
	}

	filtered := filterPosts(posts, filter)

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Posts retrieved successfully",
		Data:    filtered,
	})
}

func filterPosts(posts []models.Post, filter models.PostFilter) []models.Post {
	filtered := make([]models.Post, 0, len(posts))
	needle := strings.ToLower(filter.Search)

	for _, post := range posts {
		if needle != "" &&
			!strings.Contains(strings.ToLower(post.Heading), needle) &&
			!strings.Contains(strings.ToLower(post.Title), needle) {
			continue
		}
		if filter.Published != "" {
			want := filter.Published == "true"
			if post.Published != want {
				continue
			}
		}
		if filter.CategoryID != "" {
			if post.Category == nil || post.Category.ID != filter.CategoryID {
				continue
			}
		}
		if filter.SubCategoryID != "" {
			if post.SubCategory == nil || post.SubCategory.ID != filter.SubCategoryID {
				continue
			}
		}
		filtered = append(filtered, post)
	}
	return filtered
}

// GetPost returns a single post with every authoring field populated.
func (pc *PostController) GetPost(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Post ID is required",
		})
	}

	post, err := pc.Content.GetPost(c.Request().Context(), middleware.AdminToken(c), id)
	if err != nil {
		return upstreamError(c, pc.Sessions, err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Post retrieved successfully",
		Data:    post,
	})
}

// CreatePost forwards the authoring form as multipart under a category.
// Heading, title and editor content must be present; everything else passes
// through as submitted.
func (pc *PostController) CreatePost(c echo.Context) error {
	categoryID := c.Param("id")
	if categoryID == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Category ID is required",
		})
	}

	fields, files, ok := pc.collectPostForm(c)
	if !ok {
		return nil
	}

	data, err := pc.Content.CreatePost(c.Request().Context(), middleware.AdminToken(c), categoryID, fields, files)
	if err != nil {
		return upstreamError(c, pc.Sessions, err)
	}

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Post created successfully",
		Data:    data,
	})
}

// UpdatePost forwards the edit form as multipart for an existing post.
func (pc *PostController) UpdatePost(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Post ID is required",
		})
	}

	fields, files, ok := pc.collectPostForm(c)
	if !ok {
		return nil
	}

	data, err := pc.Content.UpdatePost(c.Request().Context(), middleware.AdminToken(c), id, fields, files)
	if err != nil {
		return upstreamError(c, pc.Sessions, err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Post updated successfully",
		Data:    data,
	})
}

// collectPostForm validates the authoring form and rebuilds it for the
// upstream multipart request. On a validation failure it writes the error
// response itself and reports ok=false.
func (pc *PostController) collectPostForm(c echo.Context) (url.Values, []services.FormFile, bool) {
	heading := strings.TrimSpace(c.FormValue("heading"))
	title := strings.TrimSpace(c.FormValue("title"))
	content := strings.TrimSpace(c.FormValue("content"))
	if heading == "" || title == "" || content == "" {
		_ = c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Heading, title and content are required",
		})
		return nil, nil, false
	}

	fields := url.Values{}
	for _, name := range postTextFields {
		if value := c.FormValue(name); value != "" {
			fields.Set(name, value)
		}
	}
	fields.Set("keywords", utils.KeywordsToJSON(c.FormValue("keywords")))

	var files []services.FormFile
	if fh, err := c.FormFile("imageUrl"); err == nil && fh != nil {
		if err := utils.ValidateImageType(fh.Filename); err != nil {
			_ = c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: err.Error(),
			})
			return nil, nil, false
		}

		data, err := utils.ReadFormFile(fh)
		if err != nil {
			_ = c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: err.Error(),
			})
			return nil, nil, false
		}

		files = append(files, services.FormFile{
			Field:    "imageUrl",
			Filename: fh.Filename,
			Data:     data,
		})
	}

	return fields, files, true
}

// DeletePost deletes a post by id.
func (pc *PostController) DeletePost(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Post ID is required",
		})
	}

	if err := pc.Content.DeletePost(c.Request().Context(), middleware.AdminToken(c), id); err != nil {
		return upstreamError(c, pc.Sessions, err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Post deleted successfully",
	})
}

// SubmitIndexing pushes one public URL to the platform's search-indexing
// endpoint.
func (pc *PostController) SubmitIndexing(c echo.Context) error {
	var req models.IndexingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "A valid URL is required",
		})
	}

	if err := pc.Content.SubmitIndexing(c.Request().Context(), middleware.AdminToken(c), req.URL); err != nil {
		return upstreamError(c, pc.Sessions, err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "URL submitted for indexing",
	})
}
