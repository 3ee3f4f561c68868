package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-homepage/internal/content"
	"github.com/goliatone/go-homepage/internal/errs"
	"github.com/goliatone/go-homepage/internal/identity"
	"github.com/goliatone/go-homepage/internal/logging"
	"github.com/goliatone/go-homepage/pkg/interfaces"
)

const (
	headerRequestID    = "X-Request-ID"
	headerCacheControl = "Cache-Control"
	noStore            = "no-store, max-age=0"

	routeProfile = "/api/profile"
	routePhotos  = "/api/photos"
	routeHealth  = "/healthz"
)

// ContentProvider runs one fetch and normalisation cycle.
type ContentProvider interface {
	Content(ctx context.Context) (content.Document, error)
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithLoggerProvider sets the provider for the homepage.http logger.
func WithLoggerProvider(provider interfaces.LoggerProvider) HandlerOption {
	return func(h *Handler) {
		h.logger = logging.HTTPLogger(provider)
	}
}

// WithSourceName labels request logs with the row source kind.
func WithSourceName(name string) HandlerOption {
	return func(h *Handler) {
		h.source = strings.TrimSpace(name)
	}
}

// WithRequestIDFunc overrides request id generation.
func WithRequestIDFunc(fn func() string) HandlerOption {
	return func(h *Handler) {
		if fn != nil {
			h.newID = fn
		}
	}
}

// Handler serves the homepage API.
type Handler struct {
	content ContentProvider
	logger  interfaces.Logger
	source  string
	newID   func() string
}

// NewHandler builds a handler over provider.
func NewHandler(provider ContentProvider, opts ...HandlerOption) *Handler {
	h := &Handler{
		content: provider,
		logger:  logging.NoOp(),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}
	return h
}

// Register mounts the routes on mux. GET patterns also answer HEAD.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET "+routeProfile, h.profile)
	mux.HandleFunc("GET "+routePhotos, h.photos)
	mux.HandleFunc("GET "+routeHealth, h.health)
}

// Routes returns a mux with every route registered.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	h.Register(mux)
	return mux
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	requestID := h.requestID(w, r)
	logger := logging.WithRequestContext(h.logger, requestID, h.source, routeProfile).WithContext(r.Context())

	w.Header().Set(headerCacheControl, noStore)

	ctx := logging.ContextWithFields(r.Context(), map[string]any{"request_id": requestID})
	doc, err := h.content.Content(ctx)
	if err != nil {
		logger.Error("http.profile.failed",
			"code", errs.TextCode(err),
			"error", err,
			"duration_ms", time.Since(started).Milliseconds(),
		)
		writeError(w, err)
		return
	}

	body, err := json.Marshal(doc)
	if err != nil {
		logger.Error("http.profile.encode_failed", "error", err)
		writeError(w, err)
		return
	}

	etag := identity.ETag(body)
	w.Header().Set("ETag", etag)
	if etag != "" && r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	logger.Info("http.profile.served",
		"config_keys", len(doc.Config),
		"projects", len(doc.Projects),
		"talks", len(doc.Talks),
		"duration_ms", time.Since(started).Milliseconds(),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(body)
}

// photos is kept for older clients. The photo list now travels in the
// photosFile config key of /api/profile.
func (h *Handler) photos(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, []string{})
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) requestID(w http.ResponseWriter, r *http.Request) string {
	id := strings.TrimSpace(r.Header.Get(headerRequestID))
	if id == "" {
		id = h.newID()
	}
	w.Header().Set(headerRequestID, id)
	return id
}
