package controllers

import (
	"net/http"
	"strings"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"

	"github.com/thenewstale/admin-console/middleware"
	"github.com/thenewstale/admin-console/models"
	"github.com/thenewstale/admin-console/services"
	"github.com/thenewstale/admin-console/session"
	"github.com/thenewstale/admin-console/utils"
)

type OrderController struct {
	Commerce *services.CommerceService
	Sessions *session.Manager
	Redis    *redis.Client
}

func NewOrderController(commerce *services.CommerceService, sessions *session.Manager, rdb *redis.Client) *OrderController {
	return &OrderController{Commerce: commerce, Sessions: sessions, Redis: rdb}
}

// GetOrders lists orders, forwarding the free-text search and date range to
// the platform's server-side filters.
func (oc *OrderController) GetOrders(c echo.Context) error {
	filter := models.OrderFilter{
		Search:   strings.TrimSpace(c.QueryParam("search")),
		FromDate: c.QueryParam("fromDate"),
		ToDate:   c.QueryParam("toDate"),
	}

	orders, err := oc.Commerce.GetOrders(c.Request().Context(), middleware.AdminToken(c), filter)
	if err != nil {
		return upstreamError(c, oc.Sessions, err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Orders retrieved successfully",
		Data:    orders,
	})
}

// GetOrder returns one order with items, shipping, payment and the full
// tracking history.
func (oc *OrderController) GetOrder(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Order ID is required",
		})
	}

	order, err := oc.Commerce.GetOrder(c.Request().Context(), middleware.AdminToken(c), id)
	if err != nil {
		return upstreamError(c, oc.Sessions, err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Order retrieved successfully",
		Data:    order,
	})
}

// UpdateStatus moves an order to a new workflow status. Cancellations must
// carry a reason; the check runs here, not just in the UI.
func (oc *OrderController) UpdateStatus(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Order ID is required",
		})
	}

	var req models.OrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if !models.ValidOrderStatus(req.OrderStatus) {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Order status must be one of Pending, Accepted, Delivered, Cancelled",
		})
	}

	if req.OrderStatus == models.OrderStatusCancelled && strings.TrimSpace(req.Reason) == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "A reason is required when cancelling an order",
		})
	}

	data, err := oc.Commerce.UpdateOrderStatus(c.Request().Context(), middleware.AdminToken(c), id, req)
	if err != nil {
		return upstreamError(c, oc.Sessions, err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Order status updated successfully",
		Data:    data,
	})
}

// VerifyDelivery submits the customer's handover code. Attempts are limited
// per session to slow down code guessing; a failed code is surfaced and must
// be re-submitted manually.
func (oc *OrderController) VerifyDelivery(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Order ID is required",
		})
	}

	var req models.VerifyDeliveryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if !utils.IsDigits(req.OTP) {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "The delivery code must be numeric",
		})
	}

	sess := middleware.SessionFromContext(c)
	if sess != nil {
		if err := utils.ValidateOTPAttempts(c.Request().Context(), sess.ID, oc.Redis); err != nil {
			return c.JSON(http.StatusTooManyRequests, models.Response{
				Status:  http.StatusTooManyRequests,
				Message: err.Error(),
			})
		}
	}

	message, err := oc.Commerce.VerifyDelivery(c.Request().Context(), middleware.AdminToken(c), id, req.OTP)
	if err != nil {
		return upstreamError(c, oc.Sessions, err)
	}

	if message == "" {
		message = "Delivery verified successfully"
	}
	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: message,
	})
}
