package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goliatone/go-homepage/internal/content"
	"github.com/goliatone/go-homepage/internal/errs"
	"github.com/goliatone/go-homepage/internal/logging"
)

type stubContent struct {
	doc   content.Document
	err   error
	calls int
	ctx   context.Context
}

func (s *stubContent) Content(ctx context.Context) (content.Document, error) {
	s.calls++
	s.ctx = ctx
	return s.doc, s.err
}

func newTestHandler(stub *stubContent) http.Handler {
	return NewHandler(stub, WithRequestIDFunc(func() string { return "req-1" })).Routes()
}

func sampleDocument() content.Document {
	doc := content.NewDocument()
	doc.Config["name"] = "Ada"
	doc.Config["photosFile"] = "/a.jpg;/b.jpg"
	doc.Projects = append(doc.Projects, content.Item{Text: "X", Description: "desc", Href: "http://e.co"})
	return doc
}

func TestProfileServesDocument(t *testing.T) {
	stub := &stubContent{doc: sampleDocument()}
	rec := httptest.NewRecorder()
	newTestHandler(stub).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/profile", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Cache-Control"); got != "no-store, max-age=0" {
		t.Fatalf("unexpected cache control %q", got)
	}
	if rec.Header().Get("X-Request-ID") != "req-1" {
		t.Fatalf("expected generated request id, got %q", rec.Header().Get("X-Request-ID"))
	}
	if rec.Header().Get("ETag") == "" {
		t.Fatal("expected etag header")
	}

	var payload map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload["name"] != "Ada" || payload["photosFile"] != "/a.jpg;/b.jpg" {
		t.Fatalf("expected config spread at top level, got %#v", payload)
	}
	projects, ok := payload["projects"].([]any)
	if !ok || len(projects) != 1 {
		t.Fatalf("unexpected projects %#v", payload["projects"])
	}
	talks, ok := payload["talks"].([]any)
	if !ok || len(talks) != 0 {
		t.Fatalf("expected empty talks array, got %#v", payload["talks"])
	}
}

func TestProfileEmptyDocumentIsSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler(&stubContent{doc: content.NewDocument()}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/profile", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != `{"projects":[],"talks":[]}` {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestProfileConfigurationError(t *testing.T) {
	stub := &stubContent{err: errs.Configuration(errs.ErrMissingCredentials, "missing")}
	rec := httptest.NewRecorder()
	newTestHandler(stub).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/profile", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var payload errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Error != "Misconfigured server environment. Missing Notion secrets." || payload.Details != "" {
		t.Fatalf("unexpected payload %#v", payload)
	}
	if rec.Header().Get("Cache-Control") != "no-store, max-age=0" {
		t.Fatal("expected no-store on errors too")
	}
}

func TestProfileUpstreamError(t *testing.T) {
	stub := &stubContent{err: errs.Upstream(errors.New("502"), errs.CodeStatus, "Bad gateway from upstream")}
	rec := httptest.NewRecorder()
	newTestHandler(stub).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/profile", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var payload errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Error != "Failed to fetch data from Notion" || payload.Details != "Bad gateway from upstream" {
		t.Fatalf("unexpected payload %#v", payload)
	}
}

func TestProfileKeepsIncomingRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("X-Request-ID", "upstream-id")
	rec := httptest.NewRecorder()
	newTestHandler(&stubContent{doc: content.NewDocument()}).ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-ID") != "upstream-id" {
		t.Fatalf("expected incoming request id, got %q", rec.Header().Get("X-Request-ID"))
	}
}

func TestProfileNotModified(t *testing.T) {
	stub := &stubContent{doc: sampleDocument()}
	handler := newTestHandler(stub)

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/profile", nil))
	etag := first.Header().Get("ETag")

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("If-None-Match", etag)
	second := httptest.NewRecorder()
	handler.ServeHTTP(second, req)

	if second.Code != http.StatusNotModified {
		t.Fatalf("expected 304, got %d", second.Code)
	}
	if stub.calls != 2 {
		t.Fatalf("expected a fresh fetch per request, got %d calls", stub.calls)
	}
}

func TestProfileHead(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler(&stubContent{doc: sampleDocument()}).ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/api/profile", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body for HEAD, got %q", rec.Body.String())
	}
}

func TestPhotosIsAlwaysEmpty(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler(&stubContent{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/photos", nil))

	if rec.Code != http.StatusOK || strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("unexpected response %d %s", rec.Code, rec.Body.String())
	}
}

func TestHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler(&stubContent{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Fatalf("unexpected response %d %s", rec.Code, rec.Body.String())
	}
}

func TestProfileRejectsPost(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler(&stubContent{}).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/profile", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestProfilePropagatesRequestIDToContext(t *testing.T) {
	stub := &stubContent{doc: content.NewDocument()}
	newTestHandler(stub).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/profile", nil))

	if stub.ctx == nil {
		t.Fatal("expected content provider to be called")
	}
	if got := logging.ContextFields(stub.ctx)["request_id"]; got != "req-1" {
		t.Fatalf("expected request id in context fields, got %#v", got)
	}
}
