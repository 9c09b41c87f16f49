package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/thenewstale/admin-console/middleware"
	"github.com/thenewstale/admin-console/models"
	"github.com/thenewstale/admin-console/services"
	"github.com/thenewstale/admin-console/session"
)

type DashboardController struct {
	Content  *services.ContentService
	Commerce *services.CommerceService
	Sessions *session.Manager
}

func NewDashboardController(content *services.ContentService, commerce *services.CommerceService, sessions *session.Manager) *DashboardController {
	return &DashboardController{Content: content, Commerce: commerce, Sessions: sessions}
}

// GetStats aggregates headline counts across both platform hosts for the
// dashboard home screen.
func (dc *DashboardController) GetStats(c echo.Context) error {
	ctx := c.Request().Context()
	token := middleware.AdminToken(c)

	categories, err := dc.Content.GetCategories(ctx, token)
	if err != nil {
		return upstreamError(c, dc.Sessions, err)
	}

	posts, err := dc.Content.GetPosts(ctx, token)
	if err != nil {
		return upstreamError(c, dc.Sessions, err)
	}

	products, err := dc.Commerce.GetProducts(ctx, token)
	if err != nil {
		return upstreamError(c, dc.Sessions, err)
	}

	banners, err := dc.Commerce.GetBanners(ctx, token)
	if err != nil {
		return upstreamError(c, dc.Sessions, err)
	}

	consumers, err := dc.Commerce.GetConsumers(ctx, token)
	if err != nil {
		return upstreamError(c, dc.Sessions, err)
	}

	stats := models.DashboardStats{
		TotalCategories: len(categories),
		TotalPosts:      len(posts),
		TotalProducts:   len(products),
		TotalBanners:    len(banners),
		TotalConsumers:  len(consumers),
	}
	for _, post := range posts {
		if post.Published {
			stats.PublishedPosts++
		}
	}
	for _, banner := range banners {
		if banner.IsActive {
			stats.ActiveBanners++
		}
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Dashboard stats retrieved successfully",
		Data:    stats,
	})
}
