package interfaces

import (
	"context"

	"github.com/goliatone/go-homepage/internal/rows"
)

// RowSource fetches every row of the external content database. A single
// call is one fetch attempt; implementations must not retry.
type RowSource interface {
	Fetch(ctx context.Context) ([]rows.Row, error)
}

// RowSourceFunc adapts a plain function to RowSource.
type RowSourceFunc func(ctx context.Context) ([]rows.Row, error)

// Fetch satisfies RowSource.
func (f RowSourceFunc) Fetch(ctx context.Context) ([]rows.Row, error) {
	return f(ctx)
}
