package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/thenewstale/admin-console/middleware"
	"github.com/thenewstale/admin-console/models"
	"github.com/thenewstale/admin-console/services"
	"github.com/thenewstale/admin-console/session"
)

type DeliveryChargeController struct {
	Commerce *services.CommerceService
	Sessions *session.Manager
}

func NewDeliveryChargeController(commerce *services.CommerceService, sessions *session.Manager) *DeliveryChargeController {
	return &DeliveryChargeController{Commerce: commerce, Sessions: sessions}
}

// GetDeliveryCharges lists delivery charges. The isBulk query param selects
// the regular or bulk partition; absent means both.
func (dc *DeliveryChargeController) GetDeliveryCharges(c echo.Context) error {
	isBulk := c.QueryParam("isBulk")
	if isBulk != "" && isBulk != "true" && isBulk != "false" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "isBulk must be true or false",
		})
	}

	charges, err := dc.Commerce.GetDeliveryCharges(c.Request().Context(), middleware.AdminToken(c), isBulk)
	if err != nil {
		return upstreamError(c, dc.Sessions, err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Delivery charges retrieved successfully",
		Data:    charges,
	})
}

// CreateDeliveryCharge creates a delivery charge after validating the amount.
func (dc *DeliveryChargeController) CreateDeliveryCharge(c echo.Context) error {
	var req models.DeliveryChargeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Delivery charge must be a positive amount",
		})
	}

	data, err := dc.Commerce.CreateDeliveryCharge(c.Request().Context(), middleware.AdminToken(c), req)
	if err != nil {
		return upstreamError(c, dc.Sessions, err)
	}

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Delivery charge created successfully",
		Data:    data,
	})
}

// UpdateDeliveryCharge updates an existing delivery charge.
func (dc *DeliveryChargeController) UpdateDeliveryCharge(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Delivery charge ID is required",
		})
	}

	var req models.DeliveryChargeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Delivery charge must be a positive amount",
		})
	}

	data, err := dc.Commerce.UpdateDeliveryCharge(c.Request().Context(), middleware.AdminToken(c), id, req)
	if err != nil {
		return upstreamError(c, dc.Sessions, err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Delivery charge updated successfully",
		Data:    data,
	})
}

// DeleteDeliveryCharge deletes a delivery charge by id.
func (dc *DeliveryChargeController) DeleteDeliveryCharge(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Delivery charge ID is required",
		})
	}

	if err := dc.Commerce.DeleteDeliveryCharge(c.Request().Context(), middleware.AdminToken(c), id); err != nil {
		return upstreamError(c, dc.Sessions, err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Delivery charge deleted successfully",
	})
}
