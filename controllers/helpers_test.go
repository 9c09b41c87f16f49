package controllers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/thenewstale/admin-console/services"
	"github.com/thenewstale/admin-console/session"
)

type testValidator struct {
	validator *validator.Validate
}

func (tv *testValidator) Validate(i interface{}) error {
	return tv.validator.Struct(i)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	return e
}

func newTestSessions() *session.Manager {
	return session.NewManager(session.NewMemoryStore(), "test-secret", "test-enc-key", time.Hour)
}

// newTestContext builds an echo context around a recorded request.
func newTestContext(e *echo.Echo, method, target, body, contentType string) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// upstreamCall is one request the fake platform server received.
type upstreamCall struct {
	Method string
	Path   string
	Body   string
}

// fakeUpstream records every request and answers from a path-keyed map of
// canned bodies. Unknown paths answer an empty success envelope.
type fakeUpstream struct {
	srv     *httptest.Server
	calls   []upstreamCall
	replies map[string]string
}

func newFakeUpstream(t *testing.T, replies map[string]string) *fakeUpstream {
	t.Helper()
	f := &fakeUpstream{replies: replies}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		f.calls = append(f.calls, upstreamCall{Method: r.Method, Path: r.URL.Path, Body: string(body)})

		if reply, ok := f.replies[r.URL.Path]; ok {
			w.Write([]byte(reply))
			return
		}
		w.Write([]byte(`{"status":true,"message":"ok"}`))
	}))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeUpstream) contentService() *services.ContentService {
	return services.NewContentService(services.NewPlatformClient(f.srv.URL, time.Second, false), time.Minute)
}

func (f *fakeUpstream) commerceService() *services.CommerceService {
	return services.NewCommerceService(services.NewPlatformClient(f.srv.URL, time.Second, false))
}
