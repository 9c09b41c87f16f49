package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/thenewstale/admin-console/middleware"
	"github.com/thenewstale/admin-console/models"
	"github.com/thenewstale/admin-console/services"
	"github.com/thenewstale/admin-console/session"
)

const (
	defaultConsumerLimit = 20
	maxConsumerLimit     = 100
)

type ConsumerController struct {
	Commerce *services.CommerceService
	Sessions *session.Manager
}

func NewConsumerController(commerce *services.CommerceService, sessions *session.Manager) *ConsumerController {
	return &ConsumerController{Commerce: commerce, Sessions: sessions}
}

// GetConsumers returns one page of the consumer directory. The platform only
// exposes a full listing, so search and paging happen here.
func (cc *ConsumerController) GetConsumers(c echo.Context) error {
	consumers, err := cc.Commerce.GetConsumers(c.Request().Context(), middleware.AdminToken(c))
	if err != nil {
		return upstreamError(c, cc.Sessions, err)
	}

	if search := strings.TrimSpace(c.QueryParam("search")); search != "" {
		consumers = filterConsumers(consumers, search)
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 {
		limit = defaultConsumerLimit
	}
	if limit > maxConsumerLimit {
		limit = maxConsumerLimit
	}

	total := len(consumers)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	pageData := models.ConsumerPage{
		Consumers: consumers[start:end],
		Total:     total,
		Page:      page,
		Limit:     limit,
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Consumers retrieved successfully",
		Data:    pageData,
	})
}

// filterConsumers matches the search term against name, phone and email.
func filterConsumers(consumers []models.Consumer, search string) []models.Consumer {
	needle := strings.ToLower(search)
	filtered := make([]models.Consumer, 0, len(consumers))
	for _, consumer := range consumers {
		if strings.Contains(strings.ToLower(consumer.FullName), needle) ||
			strings.Contains(strings.ToLower(consumer.Phone), needle) ||
			strings.Contains(strings.ToLower(consumer.Email), needle) {
			filtered = append(filtered, consumer)
		}
	}
	return filtered
}
