// Package services holds the typed clients for the two upstream platform
// APIs the console administers: the content host (news/blogging) and the
// commerce host (products, orders, delivery). Both speak the same
// {status, message} envelope and authorize privileged calls through the
// x-admin-token header. The contract is externally owned and fixed.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"
)

const adminTokenHeader = "x-admin-token"

// ErrUnauthorized is returned when the upstream rejects the admin token. The
// caller is expected to destroy the local session.
var ErrUnauthorized = errors.New("upstream rejected admin token")

// APIError is a non-2xx upstream reply carrying the server's message field
// verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("upstream error %d", e.StatusCode)
}

// FormFile is one file being forwarded inside a multipart request.
type FormFile struct {
	Field    string
	Filename string
	Data     []byte
}

// apiResponse is the upstream envelope. List payloads arrive under different
// keys per resource, so they stay raw until the typed helpers unwrap them.
type apiResponse struct {
	Status     bool            `json:"status"`
	Message    string          `json:"message"`
	Token      string          `json:"token,omitempty"`
	Data       json.RawMessage `json:"data,omitempty"`
	Categories json.RawMessage `json:"categories,omitempty"`
	Posts      json.RawMessage `json:"posts,omitempty"`
	Post       json.RawMessage `json:"post,omitempty"`
}

// PlatformClient is the shared request plumbing under both typed services.
type PlatformClient struct {
	baseURL    string
	httpClient *http.Client
	debug      bool
}

// NewPlatformClient creates a client for one upstream host.
func NewPlatformClient(baseURL string, timeout time.Duration, debug bool) *PlatformClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &PlatformClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		debug:      debug,
	}
}

// makeRequest performs a JSON request against the upstream API. The context
// comes from the incoming console request, so an abandoned screen cancels its
// in-flight upstream call.
func (p *PlatformClient) makeRequest(ctx context.Context, method, endpoint, token string, query url.Values, payload interface{}) (*apiResponse, error) {
	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewBuffer(jsonData)
	}

	req, err := p.newRequest(ctx, method, endpoint, token, query, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return p.do(req)
}

// makeMultipartRequest performs a multipart/form-data request, used by the
// post, product and banner screens.
func (p *PlatformClient) makeMultipartRequest(ctx context.Context, method, endpoint, token string, fields url.Values, files []FormFile) (*apiResponse, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, values := range fields {
		for _, value := range values {
			if err := writer.WriteField(key, value); err != nil {
				return nil, fmt.Errorf("failed to write form field %s: %w", key, err)
			}
		}
	}

	for _, file := range files {
		part, err := writer.CreateFormFile(file.Field, file.Filename)
		if err != nil {
			return nil, fmt.Errorf("failed to create form file %s: %w", file.Field, err)
		}
		if _, err := part.Write(file.Data); err != nil {
			return nil, fmt.Errorf("failed to write form file %s: %w", file.Field, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := p.newRequest(ctx, method, endpoint, token, nil, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return p.do(req)
}

func (p *PlatformClient) newRequest(ctx context.Context, method, endpoint, token string, query url.Values, body io.Reader) (*http.Request, error) {
	fullURL := p.baseURL + endpoint
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if token != "" {
		req.Header.Set(adminTokenHeader, token)
	}

	if p.debug {
		log.Printf("Upstream request: %s %s (token: %s)", method, fullURL, redactToken(token))
	}

	return req, nil
}

func (p *PlatformClient) do(req *http.Request) (*apiResponse, error) {
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if p.debug {
		log.Printf("Upstream response %d: %s", resp.StatusCode, string(respBody))
	}

	// A 401 on a token-bearing call means the stored admin token went stale.
	// Unauthenticated calls (login) keep their upstream message instead.
	if resp.StatusCode == http.StatusUnauthorized && req.Header.Get(adminTokenHeader) != "" {
		return nil, ErrUnauthorized
	}

	var apiResp apiResponse
	if len(respBody) > 0 {
		if err := json.Unmarshal(respBody, &apiResp); err != nil {
			if resp.StatusCode < 200 || resp.StatusCode > 299 {
				return nil, &APIError{StatusCode: resp.StatusCode}
			}
			return nil, fmt.Errorf("failed to parse response: %w", err)
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: apiResp.Message}
	}

	return &apiResp, nil
}

func redactToken(token string) string {
	if token == "" {
		return "[NONE]"
	}
	return "[REDACTED]"
}
