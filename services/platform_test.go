package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeRequestSendsTokenHeader(t *testing.T) {
	var gotToken string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("x-admin-token")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":true,"message":"ok"}`))
	}))
	defer srv.Close()

	client := NewPlatformClient(srv.URL, time.Second, false)
	resp, err := client.makeRequest(context.Background(), http.MethodGet, "/admin/thing", "secret-token", nil, nil)
	require.NoError(t, err)
	assert.True(t, resp.Status)
	assert.Equal(t, "secret-token", gotToken)
}

func TestMakeRequestStaleTokenBecomesUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status":false,"message":"token expired"}`))
	}))
	defer srv.Close()

	client := NewPlatformClient(srv.URL, time.Second, false)
	_, err := client.makeRequest(context.Background(), http.MethodGet, "/admin/thing", "stale-token", nil, nil)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestMakeRequestLogin401KeepsUpstreamMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status":false,"message":"Invalid email or password"}`))
	}))
	defer srv.Close()

	// No token on the request, so the 401 is a login failure, not a stale
	// session.
	client := NewPlatformClient(srv.URL, time.Second, false)
	_, err := client.makeRequest(context.Background(), http.MethodPost, "/admin/auth/logInAdmin", "", nil, map[string]string{"email": "x"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid email or password", apiErr.Message)
}

func TestMakeRequestSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"status":false,"message":"categoryName already exists"}`))
	}))
	defer srv.Close()

	client := NewPlatformClient(srv.URL, time.Second, false)
	_, err := client.makeRequest(context.Background(), http.MethodPost, "/admin/category/create", "tok", nil, map[string]string{"categoryName": "World"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "categoryName already exists", apiErr.Message)
}

func TestMakeRequestHonorsContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewPlatformClient(srv.URL, time.Second, false)
	_, err := client.makeRequest(ctx, http.MethodGet, "/admin/thing", "tok", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMakeMultipartRequestForwardsFieldsAndFiles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(32<<20))
		assert.Equal(t, "Big News", r.FormValue("heading"))

		fh := r.MultipartForm.File["imageUrl"]
		require.Len(t, fh, 1)
		assert.Equal(t, "cover.jpg", fh[0].Filename)

		w.Write([]byte(`{"status":true,"message":"created"}`))
	}))
	defer srv.Close()

	fields := map[string][]string{"heading": {"Big News"}}
	files := []FormFile{{Field: "imageUrl", Filename: "cover.jpg", Data: []byte("jpegdata")}}

	client := NewPlatformClient(srv.URL, time.Second, false)
	resp, err := client.makeMultipartRequest(context.Background(), http.MethodPost, "/admin/newsPost/create/abc", "tok", fields, files)
	require.NoError(t, err)
	assert.True(t, resp.Status)
}
