package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/thenewstale/admin-console/models"
)

// ContentService talks to the news/blogging platform: auth, taxonomy, posts
// and search indexing.
type ContentService struct {
	client *PlatformClient

	// Subcategories are fetched lazily on first expand and cached per
	// category until a subcategory mutation or the TTL invalidates them.
	subMu    sync.RWMutex
	subCache map[string]subCacheEntry
	subTTL   time.Duration
}

type subCacheEntry struct {
	subs      []models.SubCategory
	fetchedAt time.Time
}

// NewContentService creates the content-host client. cacheTTL bounds how long
// a cached subcategory list may be served without a re-fetch.
func NewContentService(client *PlatformClient, cacheTTL time.Duration) *ContentService {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &ContentService{
		client:   client,
		subCache: make(map[string]subCacheEntry),
		subTTL:   cacheTTL,
	}
}

// Login exchanges admin credentials for an upstream token.
func (s *ContentService) Login(ctx context.Context, email, password string) (*models.LoginResult, error) {
	payload := map[string]string{"email": email, "password": password}

	resp, err := s.client.makeRequest(ctx, http.MethodPost, "/admin/auth/logInAdmin", "", nil, payload)
	if err != nil {
		return nil, err
	}

	return &models.LoginResult{
		Status:  resp.Status,
		Token:   resp.Token,
		Message: resp.Message,
	}, nil
}

// GetCategories returns all categories, newest first.
func (s *ContentService) GetCategories(ctx context.Context, token string) ([]models.Category, error) {
	resp, err := s.client.makeRequest(ctx, http.MethodGet, "/public/category/getAll", token, nil, nil)
	if err != nil {
		return nil, err
	}

	var categories []models.Category
	if err := json.Unmarshal(resp.Categories, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}

	// The API returns insertion order; the console lists newest first.
	for i, j := 0, len(categories)-1; i < j; i, j = i+1, j-1 {
		categories[i], categories[j] = categories[j], categories[i]
	}

	return categories, nil
}

// CreateCategory creates a category from a name and image URL.
func (s *ContentService) CreateCategory(ctx context.Context, token string, req models.CategoryRequest) (json.RawMessage, error) {
	resp, err := s.client.makeRequest(ctx, http.MethodPost, "/admin/category/create", token, nil, req)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// UpdateCategory updates a category by id.
func (s *ContentService) UpdateCategory(ctx context.Context, token, id string, req models.CategoryRequest) (json.RawMessage, error) {
	resp, err := s.client.makeRequest(ctx, http.MethodPut, "/admin/category/update/"+id, token, nil, req)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// DeleteCategory deletes a category by id and drops its cached subcategories.
func (s *ContentService) DeleteCategory(ctx context.Context, token, id string) error {
	_, err := s.client.makeRequest(ctx, http.MethodDelete, "/admin/category/delete/"+id, token, nil, nil)
	if err != nil {
		return err
	}
	s.invalidateSubCache(id)
	return nil
}

// GetSubCategories returns the subcategories of one category, serving from
// the expand cache when the entry is still fresh.
func (s *ContentService) GetSubCategories(ctx context.Context, token, categoryID string) ([]models.SubCategory, error) {
	s.subMu.RLock()
	entry, ok := s.subCache[categoryID]
	s.subMu.RUnlock()
	if ok && time.Since(entry.fetchedAt) < s.subTTL {
		return entry.subs, nil
	}

	resp, err := s.client.makeRequest(ctx, http.MethodGet, "/public/subCategory/getAll/"+categoryID, token, nil, nil)
	if err != nil {
		return nil, err
	}

	var subs []models.SubCategory
	if err := json.Unmarshal(resp.Data, &subs); err != nil {
		return nil, fmt.Errorf("failed to decode subcategories: %w", err)
	}

	s.subMu.Lock()
	s.subCache[categoryID] = subCacheEntry{subs: subs, fetchedAt: time.Now()}
	s.subMu.Unlock()

	return subs, nil
}

// CreateSubCategory adds a subcategory under a category.
func (s *ContentService) CreateSubCategory(ctx context.Context, token, categoryID, name string) error {
	payload := map[string]string{"subCategoryName": name}
	_, err := s.client.makeRequest(ctx, http.MethodPost, "/admin/subCategory/create/"+categoryID, token, nil, payload)
	if err != nil {
		return err
	}
	s.invalidateSubCache(categoryID)
	return nil
}

// UpdateSubCategory renames a subcategory. categoryID scopes the cache
// invalidation; when unknown the whole cache is dropped.
func (s *ContentService) UpdateSubCategory(ctx context.Context, token, id, categoryID, name string) error {
	payload := map[string]string{"subCategoryName": name}
	_, err := s.client.makeRequest(ctx, http.MethodPut, "/admin/subCategory/update/"+id, token, nil, payload)
	if err != nil {
		return err
	}
	s.invalidateSubCache(categoryID)
	return nil
}

// DeleteSubCategory removes a subcategory.
func (s *ContentService) DeleteSubCategory(ctx context.Context, token, id, categoryID string) error {
	_, err := s.client.makeRequest(ctx, http.MethodDelete, "/admin/subCategory/delete/"+id, token, nil, nil)
	if err != nil {
		return err
	}
	s.invalidateSubCache(categoryID)
	return nil
}

// GetPosts returns every news post.
func (s *ContentService) GetPosts(ctx context.Context, token string) ([]models.Post, error) {
	resp, err := s.client.makeRequest(ctx, http.MethodGet, "/admin/newsPost/getAll", token, nil, nil)
	if err != nil {
		return nil, err
	}

	var posts []models.Post
	if err := json.Unmarshal(resp.Posts, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode posts: %w", err)
	}
	return posts, nil
}

// GetPost returns a single news post by id.
func (s *ContentService) GetPost(ctx context.Context, token, id string) (*models.Post, error) {
	resp, err := s.client.makeRequest(ctx, http.MethodGet, "/admin/newsPost/getSingle/"+id, token, nil, nil)
	if err != nil {
		return nil, err
	}

	var post models.Post
	if err := json.Unmarshal(resp.Post, &post); err != nil {
		return nil, fmt.Errorf("failed to decode post: %w", err)
	}
	return &post, nil
}

// CreatePost forwards the authoring form as multipart under a category.
func (s *ContentService) CreatePost(ctx context.Context, token, categoryID string, fields url.Values, files []FormFile) (json.RawMessage, error) {
	resp, err := s.client.makeMultipartRequest(ctx, http.MethodPost, "/admin/newsPost/create/"+categoryID, token, fields, files)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// UpdatePost forwards the edit form as multipart for an existing post.
func (s *ContentService) UpdatePost(ctx context.Context, token, id string, fields url.Values, files []FormFile) (json.RawMessage, error) {
	resp, err := s.client.makeMultipartRequest(ctx, http.MethodPut, "/admin/newsPost/update/"+id, token, fields, files)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// DeletePost deletes a post by id.
func (s *ContentService) DeletePost(ctx context.Context, token, id string) error {
	_, err := s.client.makeRequest(ctx, http.MethodDelete, "/admin/newsPost/delete/"+id, token, nil, nil)
	return err
}

// SubmitIndexing asks the platform to push one URL to the search index.
func (s *ContentService) SubmitIndexing(ctx context.Context, token, pageURL string) error {
	payload := map[string]string{"url": pageURL}
	_, err := s.client.makeRequest(ctx, http.MethodPost, "/admin/indexing/url", token, nil, payload)
	return err
}

func (s *ContentService) invalidateSubCache(categoryID string) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	if categoryID == "" {
		s.subCache = make(map[string]subCacheEntry)
		return
	}
	delete(s.subCache, categoryID)
}
