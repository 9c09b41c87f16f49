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

// productTextFields are the form fields forwarded verbatim to the platform.
var productTextFields = []string{
	"title", "description", "sellingPrice", "measurementUnit",
	"capacityVolume", "bulkAvailable", "bulkMinQuantity",
}

type ProductController struct {
	Commerce *services.CommerceService
	Sessions *session.Manager
}

func NewProductController(commerce *services.CommerceService, sessions *session.Manager) *ProductController {
	return &ProductController{Commerce: commerce, Sessions: sessions}
}

// GetProducts lists all products, optionally filtered by a case-insensitive
// title search.
func (pc *ProductController) GetProducts(c echo.Context) error {
	products, err := pc.Commerce.GetProducts(c.Request().Context(), middleware.AdminToken(c))
	if err != nil {
		return upstreamError(c, pc.Sessions, err)
	}

	if search := strings.TrimSpace(c.QueryParam("search")); search != "" {
		needle := strings.ToLower(search)
		filtered := make([]models.Product, 0, len(products))
		for _, p := range products {
			if strings.Contains(strings.ToLower(p.Title), needle) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Products retrieved successfully",
		Data:    products,
	})
}

// GetProduct returns a single product by id.
func (pc *ProductController) GetProduct(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Product ID is required",
		})
	}

	product, err := pc.Commerce.GetProduct(c.Request().Context(), middleware.AdminToken(c), id)
	if err != nil {
		return upstreamError(c, pc.Sessions, err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Product retrieved successfully",
		Data:    product,
	})
}

// CreateProduct forwards the product form and its gallery images upstream.
func (pc *ProductController) CreateProduct(c echo.Context) error {
	fields, files, ok := pc.collectProductForm(c, true)
	if !ok {
		return nil
	}

	data, err := pc.Commerce.CreateProduct(c.Request().Context(), middleware.AdminToken(c), fields, files)
	if err != nil {
		return upstreamError(c, pc.Sessions, err)
	}

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Product created successfully",
		Data:    data,
	})
}

// UpdateProduct forwards the edit form for an existing product. Images are
// optional on update; the platform keeps the existing gallery when none are
// sent.
func (pc *ProductController) UpdateProduct(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Product ID is required",
		})
	}

	fields, files, ok := pc.collectProductForm(c, false)
	if !ok {
		return nil
	}

	data, err := pc.Commerce.UpdateProduct(c.Request().Context(), middleware.AdminToken(c), id, fields, files)
	if err != nil {
		return upstreamError(c, pc.Sessions, err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Product updated successfully",
		Data:    data,
	})
}

// DeleteProduct deletes a product by id.
func (pc *ProductController) DeleteProduct(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Product ID is required",
		})
	}

	if err := pc.Commerce.DeleteProduct(c.Request().Context(), middleware.AdminToken(c), id); err != nil {
		return upstreamError(c, pc.Sessions, err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Product deleted successfully",
	})
}

// collectProductForm gathers the multipart text fields and gallery files.
// When it returns ok=false the response has already been written.
func (pc *ProductController) collectProductForm(c echo.Context, requireImages bool) (url.Values, []services.FormFile, bool) {
	fields := url.Values{}
	for _, name := range productTextFields {
		if v := c.FormValue(name); v != "" {
			fields.Set(name, v)
		}
	}

	if strings.TrimSpace(fields.Get("title")) == "" {
		_ = c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Product title is required",
		})
		return nil, nil, false
	}

	var files []services.FormFile
	form, err := c.MultipartForm()
	if err == nil && form != nil {
		for _, fh := range form.File["productImg"] {
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

			data, err = utils.DownscaleImage(data, fh.Filename)
			if err != nil {
				_ = c.JSON(http.StatusInternalServerError, models.Response{
					Status:  http.StatusInternalServerError,
					Message: "Failed to process product image",
				})
				return nil, nil, false
			}

			files = append(files, services.FormFile{
				Field:    "productImg",
				Filename: fh.Filename,
				Data:     data,
			})
		}
	}

	if requireImages && len(files) == 0 {
		_ = c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "At least one product image is required",
		})
		return nil, nil, false
	}

	return fields, files, true
}
