package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/thenewstale/admin-console/models"
)

// CommerceService talks to the delivery platform: products, delivery charges,
// orders, banners and consumer data.
type CommerceService struct {
	client *PlatformClient
}

// NewCommerceService creates the commerce-host client.
func NewCommerceService(client *PlatformClient) *CommerceService {
	return &CommerceService{client: client}
}

// GetProducts returns the full product list.
func (s *CommerceService) GetProducts(ctx context.Context, token string) ([]models.Product, error) {
	resp, err := s.client.makeRequest(ctx, http.MethodGet, "/admin/product/getAll", token, nil, nil)
	if err != nil {
		return nil, err
	}

	var products []models.Product
	if err := json.Unmarshal(resp.Data, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}

// GetProduct returns a single product by id.
func (s *CommerceService) GetProduct(ctx context.Context, token, id string) (*models.Product, error) {
	resp, err := s.client.makeRequest(ctx, http.MethodGet, "/public/product/singleProduct/"+id, token, nil, nil)
	if err != nil {
		return nil, err
	}

	var product models.Product
	if err := json.Unmarshal(resp.Data, &product); err != nil {
		return nil, fmt.Errorf("failed to decode product: %w", err)
	}
	return &product, nil
}

// CreateProduct forwards the product form and its images as multipart.
func (s *CommerceService) CreateProduct(ctx context.Context, token string, fields url.Values, files []FormFile) (json.RawMessage, error) {
	resp, err := s.client.makeMultipartRequest(ctx, http.MethodPost, "/admin/product/create", token, fields, files)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// UpdateProduct forwards the edit form as multipart for an existing product.
func (s *CommerceService) UpdateProduct(ctx context.Context, token, id string, fields url.Values, files []FormFile) (json.RawMessage, error) {
	resp, err := s.client.makeMultipartRequest(ctx, http.MethodPut, "/admin/product/update/"+id, token, fields, files)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// DeleteProduct deletes a product by id.
func (s *CommerceService) DeleteProduct(ctx context.Context, token, id string) error {
	_, err := s.client.makeRequest(ctx, http.MethodDelete, "/admin/product/delete/"+id, token, nil, nil)
	return err
}

// GetDeliveryCharges lists delivery charges, optionally filtered by the bulk
// partition ("true"/"false", empty for all).
func (s *CommerceService) GetDeliveryCharges(ctx context.Context, token, isBulk string) ([]models.DeliveryCharge, error) {
	query := url.Values{}
	if isBulk != "" {
		query.Set("isBulk", isBulk)
	}

	resp, err := s.client.makeRequest(ctx, http.MethodGet, "/admin/deliveryCharge/getAll", token, query, nil)
	if err != nil {
		return nil, err
	}

	var charges []models.DeliveryCharge
	if err := json.Unmarshal(resp.Data, &charges); err != nil {
		return nil, fmt.Errorf("failed to decode delivery charges: %w", err)
	}
	return charges, nil
}

// CreateDeliveryCharge creates a delivery charge.
func (s *CommerceService) CreateDeliveryCharge(ctx context.Context, token string, req models.DeliveryChargeRequest) (json.RawMessage, error) {
	resp, err := s.client.makeRequest(ctx, http.MethodPost, "/admin/deliveryCharge/create", token, nil, req)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// UpdateDeliveryCharge updates a delivery charge by id.
func (s *CommerceService) UpdateDeliveryCharge(ctx context.Context, token, id string, req models.DeliveryChargeRequest) (json.RawMessage, error) {
	resp, err := s.client.makeRequest(ctx, http.MethodPut, "/admin/deliveryCharge/update/"+id, token, nil, req)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// DeleteDeliveryCharge deletes a delivery charge by id.
func (s *CommerceService) DeleteDeliveryCharge(ctx context.Context, token, id string) error {
	_, err := s.client.makeRequest(ctx, http.MethodDelete, "/admin/deliveryCharge/delete/"+id, token, nil, nil)
	return err
}

// GetOrders lists orders with the platform's server-side filters.
func (s *CommerceService) GetOrders(ctx context.Context, token string, filter models.OrderFilter) ([]models.Order, error) {
	query := url.Values{}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.FromDate != "" {
		query.Set("fromDate", filter.FromDate)
	}
	if filter.ToDate != "" {
		query.Set("toDate", filter.ToDate)
	}

	resp, err := s.client.makeRequest(ctx, http.MethodGet, "/admin/order/all", token, query, nil)
	if err != nil {
		return nil, err
	}

	var orders []models.Order
	if err := json.Unmarshal(resp.Data, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}
	return orders, nil
}

// GetOrder returns one order with its full tracking history.
func (s *CommerceService) GetOrder(ctx context.Context, token, id string) (*models.Order, error) {
	resp, err := s.client.makeRequest(ctx, http.MethodGet, "/admin/order/particular/"+id, token, nil, nil)
	if err != nil {
		return nil, err
	}

	var order models.Order
	if err := json.Unmarshal(resp.Data, &order); err != nil {
		return nil, fmt.Errorf("failed to decode order: %w", err)
	}
	return &order, nil
}

// UpdateOrderStatus appends a tracking entry by moving the order to a new
// status. The reason field only travels for cancellations.
func (s *CommerceService) UpdateOrderStatus(ctx context.Context, token, id string, req models.OrderStatusRequest) (json.RawMessage, error) {
	payload := map[string]string{"orderStatus": req.OrderStatus}
	if req.OrderStatus == models.OrderStatusCancelled {
		payload["reason"] = req.Reason
	}

	resp, err := s.client.makeRequest(ctx, http.MethodPut, "/admin/order/updateStatus/"+id, token, nil, payload)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// VerifyDelivery submits the handover code for an order.
func (s *CommerceService) VerifyDelivery(ctx context.Context, token, id, otp string) (string, error) {
	payload := map[string]string{"otp": otp}

	resp, err := s.client.makeRequest(ctx, http.MethodPut, "/admin/order/verifyDelivery/"+id, token, nil, payload)
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

// GetBanners lists all banners.
func (s *CommerceService) GetBanners(ctx context.Context, token string) ([]models.Banner, error) {
	resp, err := s.client.makeRequest(ctx, http.MethodGet, "/public/banner/getAll", token, nil, nil)
	if err != nil {
		return nil, err
	}

	var banners []models.Banner
	if err := json.Unmarshal(resp.Data, &banners); err != nil {
		return nil, fmt.Errorf("failed to decode banners: %w", err)
	}
	return banners, nil
}

// CreateBanner forwards the banner images and active flag as multipart.
func (s *CommerceService) CreateBanner(ctx context.Context, token string, fields url.Values, files []FormFile) (json.RawMessage, error) {
	resp, err := s.client.makeMultipartRequest(ctx, http.MethodPost, "/admin/banner/create", token, fields, files)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// UpdateBannerStatus toggles a banner's active flag and returns the server's
// confirmed state. The console never reflects the optimistic value.
func (s *CommerceService) UpdateBannerStatus(ctx context.Context, token, id string, isActive bool) (json.RawMessage, error) {
	payload := map[string]bool{"isActive": isActive}

	resp, err := s.client.makeRequest(ctx, http.MethodPut, "/admin/banner/updateActiveStatus/"+id, token, nil, payload)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// GetConsumers returns the full consumer listing.
func (s *CommerceService) GetConsumers(ctx context.Context, token string) ([]models.Consumer, error) {
	resp, err := s.client.makeRequest(ctx, http.MethodGet, "/admin/consumerData/allconsumer", token, nil, nil)
	if err != nil {
		return nil, err
	}

	var consumers []models.Consumer
	if err := json.Unmarshal(resp.Data, &consumers); err != nil {
		return nil, fmt.Errorf("failed to decode consumers: %w", err)
	}
	return consumers, nil
}
