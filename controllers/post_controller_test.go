package controllers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenewstale/admin-console/models"
)

// newMultipartContext builds an echo context carrying a multipart form.
func newMultipartContext(t *testing.T, e *echo.Echo, method, target string, fields map[string]string, fileField, filename string, fileData []byte) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		_, err = part.Write(fileData)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestGetPostsSubcategoryFilterNeedsCategory(t *testing.T) {
	upstream := newFakeUpstream(t, nil)
	pc := NewPostController(upstream.contentService(), newTestSessions())

	e := newTestEcho()
	c, rec := newTestContext(e, http.MethodGet, "/api/console/posts?subCategoryId=s1", "", "")

	require.NoError(t, pc.GetPosts(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, upstream.calls)
}

func TestGetPostsAppliesFilters(t *testing.T) {
	upstream := newFakeUpstream(t, map[string]string{
		"/admin/newsPost/getAll": `{"status":true,"posts":[
			{"_id":"1","heading":"Election Results","title":"a","content":"x","published":true,"catId":{"_id":"c1"}},
			{"_id":"2","heading":"Match Report","title":"b","content":"x","published":false,"catId":{"_id":"c2"}},
			{"_id":"3","heading":"Election Fallout","title":"c","content":"x","published":true,"catId":{"_id":"c2"}}]}`,
	})
	pc := NewPostController(upstream.contentService(), newTestSessions())
	e := newTestEcho()

	c, rec := newTestContext(e, http.MethodGet, "/api/console/posts?search=election&published=true&categoryId=c2", "", "")
	require.NoError(t, pc.GetPosts(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []models.Post `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "3", resp.Data[0].ID)
}

func TestCreatePostRequiresCoreFields(t *testing.T) {
	upstream := newFakeUpstream(t, nil)
	pc := NewPostController(upstream.contentService(), newTestSessions())
	e := newTestEcho()

	c, rec := newMultipartContext(t, e, http.MethodPost, "/api/console/categories/c1/posts",
		map[string]string{"heading": "Big News", "title": ""}, "", "", nil)
	c.SetParamNames("id")
	c.SetParamValues("c1")

	require.NoError(t, pc.CreatePost(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Heading, title and content are required")
	assert.Empty(t, upstream.calls)
}

func TestCreatePostForwardsFormWithKeywordArray(t *testing.T) {
	upstream := newFakeUpstream(t, nil)
	pc := NewPostController(upstream.contentService(), newTestSessions())
	e := newTestEcho()

	c, rec := newMultipartContext(t, e, http.MethodPost, "/api/console/categories/c1/posts",
		map[string]string{
			"heading":  "Big News",
			"title":    "Big news title",
			"content":  "<p>body</p>",
			"keywords": "politics, election",
		}, "imageUrl", "cover.jpg", []byte("jpegbytes"))
	c.SetParamNames("id")
	c.SetParamValues("c1")

	require.NoError(t, pc.CreatePost(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	require.Len(t, upstream.calls, 1)
	call := upstream.calls[0]
	assert.Equal(t, "/admin/newsPost/create/c1", call.Path)
	// The comma-joined form value reaches the platform as a JSON array.
	assert.Contains(t, call.Body, `["politics","election"]`)
	assert.Contains(t, call.Body, `filename="cover.jpg"`)
}

func TestCreatePostRejectsNonImageUpload(t *testing.T) {
	upstream := newFakeUpstream(t, nil)
	pc := NewPostController(upstream.contentService(), newTestSessions())
	e := newTestEcho()

	c, rec := newMultipartContext(t, e, http.MethodPost, "/api/console/categories/c1/posts",
		map[string]string{"heading": "h", "title": "t", "content": "c"},
		"imageUrl", "malware.exe", []byte("binary"))
	c.SetParamNames("id")
	c.SetParamValues("c1")

	require.NoError(t, pc.CreatePost(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, upstream.calls)
}

func TestSubmitIndexingValidatesURL(t *testing.T) {
	upstream := newFakeUpstream(t, nil)
	pc := NewPostController(upstream.contentService(), newTestSessions())
	e := newTestEcho()

	c, rec := newTestContext(e, http.MethodPost, "/api/console/indexing",
		`{"url":"not a url"}`, echo.MIMEApplicationJSON)
	require.NoError(t, pc.SubmitIndexing(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, upstream.calls)

	c, rec = newTestContext(e, http.MethodPost, "/api/console/indexing",
		`{"url":"https://thenewstale.example.com/posts/slug"}`, echo.MIMEApplicationJSON)
	require.NoError(t, pc.SubmitIndexing(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, upstream.calls, 1)
	assert.Equal(t, "/admin/indexing/url", upstream.calls[0].Path)
}
