package snapshotcmd

import (
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const writeSnapshotMessageType = "homepage.snapshot.write"

// WriteSnapshotCommand fetches and normalises the homepage document once and
// writes it as JSON to Output.
type WriteSnapshotCommand struct {
	// Output is the destination file. Parent directories are created.
	Output string `json:"output"`
	// Indent pretty-prints the document.
	Indent bool `json:"indent,omitempty"`
}

// Type implements command.Message.
func (WriteSnapshotCommand) Type() string { return writeSnapshotMessageType }

// Validate ensures the output path is usable before handlers execute.
func (cmd WriteSnapshotCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Output, validation.Required, validation.By(func(value any) error {
			path := strings.TrimSpace(value.(string))
			if path == "" {
				return validation.NewError("homepage.snapshot.output_required", "output is required")
			}
			if strings.HasSuffix(path, "/") || filepath.Base(path) == "." {
				return validation.NewError("homepage.snapshot.output_directory", "output must name a file")
			}
			return nil
		})),
	)
}
