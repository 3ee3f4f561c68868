package snapshotcmd

import (
	"errors"

	"github.com/goliatone/go-homepage/internal/commands"
	"github.com/goliatone/go-homepage/pkg/interfaces"
)

// CommandRegistry is the minimal registration contract for command handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// Option customises handler wiring during registration.
type Option func(*options)

type options struct {
	handlerOpts []commands.HandlerOption[WriteSnapshotCommand]
}

// WithHandlerOptions forwards options to the WriteSnapshotHandler constructor.
func WithHandlerOptions(opts ...commands.HandlerOption[WriteSnapshotCommand]) Option {
	return func(cfg *options) {
		cfg.handlerOpts = append(cfg.handlerOpts, opts...)
	}
}

// RegisterSnapshotCommands builds the snapshot handler and registers it with
// reg when reg is not nil.
func RegisterSnapshotCommands(reg CommandRegistry, provider ContentProvider, loggers interfaces.LoggerProvider, opts ...Option) (*WriteSnapshotHandler, error) {
	if provider == nil {
		return nil, errors.New("snapshot command registration: content provider is nil")
	}

	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	handler := NewWriteSnapshotHandler(provider, commands.CommandLogger(loggers, "snapshot"), cfg.handlerOpts...)
	if reg != nil {
		if err := reg.RegisterCommand(handler); err != nil {
			return nil, err
		}
	}
	return handler, nil
}
