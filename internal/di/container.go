package di

import (
	"net/http"
	"strings"

	"github.com/goliatone/go-homepage/internal/content"
	"github.com/goliatone/go-homepage/internal/logging"
	"github.com/goliatone/go-homepage/internal/logging/console"
	"github.com/goliatone/go-homepage/internal/logging/gologger"
	"github.com/goliatone/go-homepage/internal/markdown"
	"github.com/goliatone/go-homepage/internal/notion"
	"github.com/goliatone/go-homepage/internal/runtimeconfig"
	"github.com/goliatone/go-homepage/pkg/interfaces"
)

// Container wires the row source, the aggregator and logging.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	source         interfaces.RowSource
	sourceName     string
	httpClient     *http.Client

	slugFunc    content.SlugFunc
	slugFuncSet bool

	aggregator *content.Aggregator
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the provider selected by Logging.Provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		if provider != nil {
			c.loggerProvider = provider
		}
	}
}

// WithRowSource replaces the configured source. name labels it in logs.
func WithRowSource(name string, source interfaces.RowSource) Option {
	return func(c *Container) {
		if source == nil {
			return
		}
		c.source = source
		c.sourceName = strings.TrimSpace(name)
		if c.sourceName == "" {
			c.sourceName = "custom"
		}
	}
}

// WithHTTPClient sets the client used for Notion requests.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Container) {
		c.httpClient = client
	}
}

// WithSlugFunc overrides item slug generation. nil disables slugs.
func WithSlugFunc(fn content.SlugFunc) Option {
	return func(c *Container) {
		c.slugFunc = fn
		c.slugFuncSet = true
	}
}

// NewContainer validates cfg and builds every dependency.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if err := c.configureLoggerProvider(); err != nil {
		return nil, err
	}
	c.configureSource()
	c.configureAggregator()

	logging.ModuleLogger(c.loggerProvider, "homepage").Debug("container.configured",
		"source", c.sourceName,
		"logging_provider", runtimeconfig.NormalizeProvider(cfg.Logging.Provider),
	)
	return c, nil
}

func (c *Container) configureLoggerProvider() error {
	if c.loggerProvider != nil {
		return nil
	}
	switch runtimeconfig.NormalizeProvider(c.Config.Logging.Provider) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     c.Config.Logging.Level,
			Format:    c.Config.Logging.Format,
			AddSource: c.Config.Logging.AddSource,
		})
		if err != nil {
			return err
		}
		c.loggerProvider = provider
	default:
		opts := console.Options{}
		if level, ok := console.ParseLevel(c.Config.Logging.Level); ok {
			opts.MinLevel = &level
		}
		c.loggerProvider = console.NewProvider(opts)
	}
	return nil
}

func (c *Container) configureSource() {
	if c.source != nil {
		return
	}
	switch runtimeconfig.NormalizeSource(c.Config.Source) {
	case runtimeconfig.SourceMarkdown:
		c.sourceName = markdown.SourceName
		c.source = markdown.NewDirSource(c.Config.Markdown.ContentDir, markdown.SourceConfig{
			Pattern:   c.Config.Markdown.Pattern,
			Recursive: c.Config.Markdown.Recursive,
		}, logging.MarkdownLogger(c.loggerProvider))
	default:
		c.sourceName = notion.SourceName
		c.source = notion.NewClient(notion.Config{
			Token:      c.Config.Notion.Token,
			DatabaseID: c.Config.Notion.DatabaseID,
			BaseURL:    c.Config.Notion.BaseURL,
			Version:    c.Config.Notion.Version,
			MaxPages:   c.Config.Notion.MaxPages,
			HTTPClient: c.httpClient,
		}, logging.NotionLogger(c.loggerProvider))
	}
}

func (c *Container) configureAggregator() {
	opts := []content.Option{content.WithLogger(logging.ContentLogger(c.loggerProvider))}
	if c.slugFuncSet {
		opts = append(opts, content.WithSlugFunc(c.slugFunc))
	}
	c.aggregator = content.NewAggregator(opts...)
}

// LoggerProvider returns the configured logger provider.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// Source returns the row source.
func (c *Container) Source() interfaces.RowSource {
	return c.source
}

// SourceName labels the row source in logs.
func (c *Container) SourceName() string {
	return c.sourceName
}

// Aggregator returns the shared aggregator.
func (c *Container) Aggregator() *content.Aggregator {
	return c.aggregator
}
