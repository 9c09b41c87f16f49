package controllers

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/thenewstale/admin-console/middleware"
	"github.com/thenewstale/admin-console/models"
	"github.com/thenewstale/admin-console/services"
	"github.com/thenewstale/admin-console/session"
	"github.com/thenewstale/admin-console/utils"
)

type BannerController struct {
	Commerce *services.CommerceService
	Sessions *session.Manager
}

func NewBannerController(commerce *services.CommerceService, sessions *session.Manager) *BannerController {
	return &BannerController{Commerce: commerce, Sessions: sessions}
}

// GetBanners lists all banners with their active flags.
func (bc *BannerController) GetBanners(c echo.Context) error {
	banners, err := bc.Commerce.GetBanners(c.Request().Context(), middleware.AdminToken(c))
	if err != nil {
		return upstreamError(c, bc.Sessions, err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Banners retrieved successfully",
		Data:    banners,
	})
}

// CreateBanner uploads one or more banner images with the initial active
// flag.
func (bc *BannerController) CreateBanner(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil || form == nil || len(form.File["bannerImg"]) == 0 {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "At least one banner image is required",
		})
	}

	var files []services.FormFile
	for _, fh := range form.File["bannerImg"] {
		if err := utils.ValidateImageType(fh.Filename); err != nil {
			return c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: err.Error(),
			})
		}

		data, err := utils.ReadFormFile(fh)
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: err.Error(),
			})
		}

		data, err = utils.DownscaleImage(data, fh.Filename)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.Response{
				Status:  http.StatusInternalServerError,
				Message: "Failed to process banner image",
			})
		}

		files = append(files, services.FormFile{
			Field:    "bannerImg",
			Filename: fh.Filename,
			Data:     data,
		})
	}

	fields := url.Values{}
	isActive := c.FormValue("isActive")
	if isActive == "" {
		isActive = "false"
	}
	fields.Set("isActive", isActive)

	data, err := bc.Commerce.CreateBanner(c.Request().Context(), middleware.AdminToken(c), fields, files)
	if err != nil {
		return upstreamError(c, bc.Sessions, err)
	}

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Banner created successfully",
		Data:    data,
	})
}

// UpdateBannerStatus toggles a banner's active flag. The response carries the
// state the platform confirmed, never the value the caller sent.
func (bc *BannerController) UpdateBannerStatus(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Banner ID is required",
		})
	}

	var req models.BannerStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	data, err := bc.Commerce.UpdateBannerStatus(c.Request().Context(), middleware.AdminToken(c), id, req.IsActive)
	if err != nil {
		return upstreamError(c, bc.Sessions, err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Banner status updated successfully",
		Data:    data,
	})
}
