package controllers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/thenewstale/admin-console/middleware"
	"github.com/thenewstale/admin-console/models"
	"github.com/thenewstale/admin-console/services"
	"github.com/thenewstale/admin-console/session"
)

type CategoryController struct {
	Content  *services.ContentService
	Sessions *session.Manager
}

func NewCategoryController(content *services.ContentService, sessions *session.Manager) *CategoryController {
	return &CategoryController{Content: content, Sessions: sessions}
}

// GetCategories lists all categories newest first, with an optional
// substring search over the already-fetched list.
func (cc *CategoryController) GetCategories(c echo.Context) error {
	token := middleware.AdminToken(c)

	categories, err := cc.Content.GetCategories(c.Request().Context(), token)
	if err != nil {
		return upstreamError(c, cc.Sessions, err)
	}

	if search := strings.TrimSpace(c.QueryParam("search")); search != "" {
		needle := strings.ToLower(search)
		filtered := make([]models.Category, 0, len(categories))
		for _, cat := range categories {
			if strings.Contains(strings.ToLower(cat.Name), needle) {
				filtered = append(filtered, cat)
			}
		}
		categories = filtered
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Categories retrieved successfully",
		Data:    categories,
	})
}

// CreateCategory creates a category. Name and image URL are both required;
// a violation is rejected before any upstream call is made.
func (cc *CategoryController) CreateCategory(c echo.Context) error {
	var req models.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Category name and image URL are required",
		})
	}

	data, err := cc.Content.CreateCategory(c.Request().Context(), middleware.AdminToken(c), req)
	if err != nil {
		return upstreamError(c, cc.Sessions, err)
	}

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Category created successfully",
		Data:    data,
	})
}

// UpdateCategory updates a category by id.
func (cc *CategoryController) UpdateCategory(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Category ID is required",
		})
	}

	var req models.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Category name and image URL are required",
		})
	}

	data, err := cc.Content.UpdateCategory(c.Request().Context(), middleware.AdminToken(c), id, req)
	if err != nil {
		return upstreamError(c, cc.Sessions, err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Category updated successfully",
		Data:    data,
	})
}

// DeleteCategory deletes a category by id. The UI re-fetches the list after
// deletion; nothing is merged locally.
func (cc *CategoryController) DeleteCategory(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Category ID is required",
		})
	}

	if err := cc.Content.DeleteCategory(c.Request().Context(), middleware.AdminToken(c), id); err != nil {
		return upstreamError(c, cc.Sessions, err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Category deleted successfully",
	})
}

// GetSubCategories returns one category's subcategories, served from the
// expand cache when fresh.
func (cc *CategoryController) GetSubCategories(c echo.Context) error {
	categoryID := c.Param("id")
	if categoryID == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Category ID is required",
		})
	}

	subs, err := cc.Content.GetSubCategories(c.Request().Context(), middleware.AdminToken(c), categoryID)
	if err != nil {
		return upstreamError(c, cc.Sessions, err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Subcategories retrieved successfully",
		Data:    subs,
	})
}

// CreateSubCategory adds a subcategory under a category.
func (cc *CategoryController) CreateSubCategory(c echo.Context) error {
	categoryID := c.Param("id")
	if categoryID == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Category ID is required",
		})
	}

	var req models.SubCategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Subcategory name is required",
		})
	}

	if err := cc.Content.CreateSubCategory(c.Request().Context(), middleware.AdminToken(c), categoryID, req.Name); err != nil {
		return upstreamError(c, cc.Sessions, err)
	}

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Subcategory created successfully",
	})
}

// UpdateSubCategory renames a subcategory. The optional categoryId query
// parameter scopes the cache invalidation to one category.
func (cc *CategoryController) UpdateSubCategory(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Subcategory ID is required",
		})
	}

	var req models.SubCategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Subcategory name is required",
		})
	}

	categoryID := c.QueryParam("categoryId")
	if err := cc.Content.UpdateSubCategory(c.Request().Context(), middleware.AdminToken(c), id, categoryID, req.Name); err != nil {
		return upstreamError(c, cc.Sessions, err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Subcategory updated successfully",
	})
}

// DeleteSubCategory removes a subcategory.
func (cc *CategoryController) DeleteSubCategory(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Subcategory ID is required",
		})
	}

	categoryID := c.QueryParam("categoryId")
	if err := cc.Content.DeleteSubCategory(c.Request().Context(), middleware.AdminToken(c), id, categoryID); err != nil {
		return upstreamError(c, cc.Sessions, err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Subcategory deleted successfully",
	})
}
