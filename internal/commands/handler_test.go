package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-homepage/internal/errs"
)

type testMessage struct{}

func (testMessage) Type() string { return "homepage.test.message" }

func (testMessage) Validate() error { return nil }

type invalidMessage struct{}

func (invalidMessage) Type() string { return "homepage.test.invalid" }

func (invalidMessage) Validate() error {
	return validationError()
}

func validationError() error {
	return errors.New("invalid")
}

func TestHandlerExecuteSuccess(t *testing.T) {
	called := false
	h := NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		called = true
		return nil
	})

	if err := h.Execute(context.Background(), testMessage{}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !called {
		t.Fatal("expected handler to be invoked")
	}
}

func TestHandlerValidationShortCircuitsExecution(t *testing.T) {
	called := false
	h := NewHandler[invalidMessage](func(ctx context.Context, msg invalidMessage) error {
		called = true
		return nil
	})

	err := h.Execute(context.Background(), invalidMessage{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	if called {
		t.Fatal("expected handler not to run when validation fails")
	}
}

func TestHandlerContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	h := NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		called = true
		return nil
	})

	err := h.Execute(ctx, testMessage{})
	if err == nil {
		t.Fatal("expected context cancellation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
	if called {
		t.Fatal("expected handler not to run when context is cancelled")
	}
}

func TestHandlerWrapsExecutionError(t *testing.T) {
	execErr := errors.New("boom")
	h := NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		return execErr
	})

	err := h.Execute(context.Background(), testMessage{})
	if err == nil {
		t.Fatal("expected wrapped execution error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
	if !goerrors.HasCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category to propagate, got %v", err)
	}
}

func TestHandlerHonoursTimeoutOption(t *testing.T) {
	h := NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(20 * time.Millisecond):
			return nil
		}
	}, WithTimeout[testMessage](10*time.Millisecond))

	err := h.Execute(context.Background(), testMessage{})
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category for timeout, got %v", err)
	}
}

func TestHandlerTelemetryReportsOutcome(t *testing.T) {
	var got []TelemetryInfo
	record := func(_ context.Context, _ testMessage, info TelemetryInfo) {
		got = append(got, info)
	}
	execErr := errors.New("boom")
	fail := true
	h := NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		if fail {
			return execErr
		}
		return nil
	},
		WithTelemetry[testMessage](record),
		WithOperation[testMessage]("test.op"),
		WithMessageFields(func(testMessage) map[string]any {
			return map[string]any{"output": "out.json"}
		}),
	)

	_ = h.Execute(context.Background(), testMessage{})
	fail = false
	if err := h.Execute(context.Background(), testMessage{}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected two telemetry callbacks, got %d", len(got))
	}
	if got[0].Status != TelemetryStatusFailed || !errors.Is(got[0].Error, execErr) {
		t.Fatalf("unexpected failure telemetry %#v", got[0])
	}
	if got[1].Status != TelemetryStatusSuccess || got[1].Error != nil {
		t.Fatalf("unexpected success telemetry %#v", got[1])
	}
	if got[1].Operation != "test.op" || got[1].Command != "homepage.test.message" {
		t.Fatalf("unexpected labels %#v", got[1])
	}
	if got[1].Fields["output"] != "out.json" {
		t.Fatalf("expected message fields, got %#v", got[1].Fields)
	}
}

func TestHandlerKeepsCategorisedErrors(t *testing.T) {
	tagged := errs.Configuration(errs.ErrMissingCredentials, "missing")
	h := NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		return tagged
	})

	err := h.Execute(context.Background(), testMessage{})
	if !errs.IsConfiguration(err) {
		t.Fatalf("expected configuration category to survive, got %v", err)
	}
}
