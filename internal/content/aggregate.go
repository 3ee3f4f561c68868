package content

import (
	"context"

	"github.com/goliatone/go-homepage/internal/logging"
	"github.com/goliatone/go-homepage/internal/rows"
	"github.com/goliatone/go-homepage/pkg/interfaces"
)

const (
	skipMissingKey   = "missing_key_column"
	skipEmptyTitle   = "empty_title"
	skipMissingValue = "missing_value_column"
	skipEmptyValue   = "empty_value"
)

// Stats summarises one normalisation pass.
type Stats struct {
	Rows     int
	Skipped  int
	Config   int
	Projects int
	Talks    int
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithLogger sets the logger used for row-level diagnostics and the summary.
func WithLogger(logger interfaces.Logger) Option {
	return func(a *Aggregator) {
		a.logger = logging.EnsureLogger(logger)
	}
}

// WithSlugFunc overrides item slug generation. A nil func disables slugs.
func WithSlugFunc(fn SlugFunc) Option {
	return func(a *Aggregator) {
		a.slugFunc = fn
	}
}

// Aggregator folds rows into a Document. It holds no per-call state and is
// safe for concurrent use.
type Aggregator struct {
	logger   interfaces.Logger
	slugFunc SlugFunc
}

// NewAggregator constructs an Aggregator.
func NewAggregator(opts ...Option) *Aggregator {
	a := &Aggregator{
		logger:   logging.NoOp(),
		slugFunc: DefaultSlugFunc,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	return a
}

// Normalize runs every row through resolve, classify, extract and fold.
// Rows that cannot be used are skipped; Normalize never fails.
func Normalize(input []rows.Row) Document {
	doc, _ := NewAggregator().Normalize(context.Background(), input)
	return doc
}

// Normalize folds input into a Document and reports pass statistics.
func (a *Aggregator) Normalize(ctx context.Context, input []rows.Row) (Document, Stats) {
	logger := a.logger
	if ctx != nil {
		logger = logger.WithContext(ctx)
	}

	doc := NewDocument()
	stats := Stats{Rows: len(input)}
	slugs := newSlugSet(a.slugFunc)

	skip := func(row rows.Row, reason string) {
		stats.Skipped++
		logger.Debug("content.row.skipped", "row_id", row.ID, "reason", reason)
	}

	for _, row := range input {
		cols, ok := ResolveColumns(row)
		if !ok {
			skip(row, skipMissingKey)
			continue
		}

		keyCell, _ := row.Cell(cols.Key)
		title := ExtractTitle(keyCell)
		if title == "" {
			skip(row, skipEmptyTitle)
			continue
		}

		class := Classify(cols.Cell(row, RoleTag))
		if !class.IsConfig() {
			item := Item{
				Text:        title,
				Description: ExtractDescription(cols.Cell(row, RoleValue)),
				Href:        ExtractLink(cols.Cell(row, RoleLink)),
				Icon:        ExtractIcon(cols.Cell(row, RoleIcon), row.Icon),
				Date:        ExtractDate(cols.Cell(row, RoleDate)),
				Slug:        slugs.next(title),
			}
			if class.IsProject {
				doc.Projects = append(doc.Projects, item)
				stats.Projects++
			}
			if class.IsTalk {
				doc.Talks = append(doc.Talks, item)
				stats.Talks++
			}
			continue
		}

		valueCell := cols.Cell(row, RoleValue)
		if valueCell == nil {
			skip(row, skipMissingValue)
			continue
		}
		value := ExtractConfigValue(title, *valueCell)
		if value == "" {
			skip(row, skipEmptyValue)
			continue
		}
		if _, exists := doc.Config[title]; !exists {
			stats.Config++
		}
		doc.Config[title] = value
	}

	logger.Info("content.normalize.completed",
		"rows", stats.Rows,
		"skipped", stats.Skipped,
		"config_keys", doc.Config.Keys(),
		"projects", stats.Projects,
		"talks", stats.Talks,
	)

	return doc, stats
}
