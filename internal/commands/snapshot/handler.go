package snapshotcmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	command "github.com/goliatone/go-command"
	"github.com/goliatone/go-homepage/internal/commands"
	"github.com/goliatone/go-homepage/internal/content"
	"github.com/goliatone/go-homepage/internal/identity"
	"github.com/goliatone/go-homepage/internal/logging"
	"github.com/goliatone/go-homepage/pkg/interfaces"
)

const writeOperation = "snapshot.write"

var _ command.Commander[WriteSnapshotCommand] = (*WriteSnapshotHandler)(nil)

// ErrNoContentProvider is returned when a handler is built without a provider.
var ErrNoContentProvider = errors.New("snapshot command: content provider is nil")

// ContentProvider runs one fetch and normalisation cycle.
type ContentProvider interface {
	Content(ctx context.Context) (content.Document, error)
}

// WriteSnapshotHandler writes the normalised document to disk.
type WriteSnapshotHandler struct {
	inner *commands.Handler[WriteSnapshotCommand]
}

// NewWriteSnapshotHandler builds a handler over provider.
func NewWriteSnapshotHandler(provider ContentProvider, logger interfaces.Logger, opts ...commands.HandlerOption[WriteSnapshotCommand]) *WriteSnapshotHandler {
	baseLogger := logging.EnsureLogger(logger)

	exec := func(ctx context.Context, msg WriteSnapshotCommand) error {
		if provider == nil {
			return ErrNoContentProvider
		}

		doc, err := provider.Content(ctx)
		if err != nil {
			return err
		}

		body, err := encode(doc, msg.Indent)
		if err != nil {
			return err
		}

		output := strings.TrimSpace(msg.Output)
		if err := writeFileAtomic(output, body); err != nil {
			return err
		}

		logging.WithFields(baseLogger, map[string]any{
			"output":   output,
			"bytes":    len(body),
			"etag":     identity.ETag(body),
			"projects": len(doc.Projects),
			"talks":    len(doc.Talks),
		}).Info("snapshot.command.write.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[WriteSnapshotCommand]{
		commands.WithLogger[WriteSnapshotCommand](baseLogger),
		commands.WithOperation[WriteSnapshotCommand](writeOperation),
		commands.WithMessageFields(func(msg WriteSnapshotCommand) map[string]any {
			fields := map[string]any{"output": msg.Output}
			if msg.Indent {
				fields["indent"] = true
			}
			return fields
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &WriteSnapshotHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[WriteSnapshotCommand].
func (h *WriteSnapshotHandler) Execute(ctx context.Context, msg WriteSnapshotCommand) error {
	return h.inner.Execute(ctx, msg)
}

func encode(doc content.Document, indent bool) ([]byte, error) {
	var (
		body []byte
		err  error
	)
	if indent {
		body, err = json.MarshalIndent(doc, "", "  ")
	} else {
		body, err = json.Marshal(doc)
	}
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return append(body, '\n'), nil
}

// writeFileAtomic never leaves a partially written snapshot at path.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create snapshot file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}
