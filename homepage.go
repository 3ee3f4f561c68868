// Package homepage fetches the rows of a personal homepage database and
// folds them into a single content document: site configuration plus the
// projects and talks lists.
package homepage

import (
	"context"

	"github.com/goliatone/go-homepage/internal/content"
	"github.com/goliatone/go-homepage/internal/di"
	"github.com/goliatone/go-homepage/internal/errs"
	"github.com/goliatone/go-homepage/internal/logging"
	"github.com/goliatone/go-homepage/internal/rows"
	"github.com/goliatone/go-homepage/pkg/interfaces"
)

type (
	Document       = content.Document
	Item           = content.Item
	Icon           = content.Icon
	ConfigMap      = content.ConfigMap
	Row            = rows.Row
	Cell           = rows.Cell
	RowSource      = interfaces.RowSource
	Logger         = interfaces.Logger
	LoggerProvider = interfaces.LoggerProvider
	Option         = di.Option
)

var (
	WithLoggerProvider = di.WithLoggerProvider
	WithRowSource      = di.WithRowSource
	WithHTTPClient     = di.WithHTTPClient
	WithSlugFunc       = di.WithSlugFunc
)

// Module owns the wired container (row source, aggregator, loggers) and
// runs one fetch-normalise cycle per Content call.
type Module struct {
	container *di.Container
	logger    interfaces.Logger
}

// New constructs a module using the provided configuration and optional overrides.
func New(cfg Config, opts ...Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{
		container: container,
		logger:    logging.ModuleLogger(container.LoggerProvider(), "homepage"),
	}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Config returns the validated configuration.
func (m *Module) Config() Config {
	return m.container.Config
}

// LoggerProvider returns the provider every module logger derives from.
func (m *Module) LoggerProvider() LoggerProvider {
	return m.container.LoggerProvider()
}

// SourceName labels the configured row source.
func (m *Module) SourceName() string {
	return m.container.SourceName()
}

// Content performs one fetch and normalisation cycle. The fetch is bounded
// by Upstream.Timeout. Any fetch failure aborts the cycle: callers get
// either a complete document or an error, never a partial result.
func (m *Module) Content(ctx context.Context) (Document, error) {
	doc, _, err := m.ContentWithStats(ctx)
	return doc, err
}

// ContentWithStats is Content plus the normalisation statistics.
func (m *Module) ContentWithStats(ctx context.Context) (Document, content.Stats, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	fetchCtx := ctx
	if timeout := m.container.Config.Upstream.Timeout; timeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	fetched, err := m.container.Source().Fetch(fetchCtx)
	if err != nil {
		if !errs.IsConfiguration(err) && !errs.IsUpstream(err) {
			err = errs.Upstream(err, errs.CodeRequestFailed, err.Error())
		}
		m.logger.WithContext(ctx).Error("homepage.content.failed",
			"source", m.container.SourceName(),
			"code", errs.TextCode(err),
			"error", err,
		)
		return Document{}, content.Stats{}, err
	}

	doc, stats := m.container.Aggregator().Normalize(ctx, fetched)
	return doc, stats, nil
}
