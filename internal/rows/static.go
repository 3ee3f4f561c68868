package rows

import (
	"context"
	"encoding/json"
	"fmt"
)

// Static serves a fixed row set. It backs fixtures, previews and tests.
type Static []Row

// Fetch returns a copy of the rows so callers cannot mutate the fixture.
func (s Static) Fetch(ctx context.Context) ([]Row, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	out := make([]Row, len(s))
	copy(out, s)
	return out, nil
}

// DecodeStatic parses a JSON array of rows and rejects unknown cell types.
func DecodeStatic(data []byte) (Static, error) {
	var out Static
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("rows: decode static fixture: %w", err)
	}
	for i, row := range out {
		for name, cell := range row.Cells {
			if !cell.Type.Known() {
				return nil, fmt.Errorf("rows: row %d column %q: unsupported cell type %q", i, name, cell.Type)
			}
		}
	}
	return out, nil
}
