// Package errs defines the failure taxonomy surfaced by a fetch-normalise
// cycle. Configuration and upstream failures abort the request and carry a
// go-errors category so callers can tell them apart from an empty result.
package errs

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

const (
	// CategoryConfiguration marks failures that need operator action.
	CategoryConfiguration = goerrors.Category("homepage_configuration")
	// CategoryUpstream marks failures of the external data source.
	CategoryUpstream = goerrors.Category("homepage_upstream")
)

const (
	CodeMissingSecrets = "HOMEPAGE_CONFIG_MISSING_SECRETS"
	CodeRequestFailed  = "HOMEPAGE_UPSTREAM_REQUEST_FAILED"
	CodeStatus         = "HOMEPAGE_UPSTREAM_STATUS"
	CodeMalformed      = "HOMEPAGE_UPSTREAM_MALFORMED"
	CodeTimeout        = "HOMEPAGE_UPSTREAM_TIMEOUT"
)

var (
	// ErrMissingCredentials is returned when the upstream token or database id is empty.
	ErrMissingCredentials = errors.New("homepage: missing data source credentials")
	// ErrUpstreamStatus is returned when the upstream answers with a non-2xx status.
	ErrUpstreamStatus = errors.New("homepage: upstream returned an error status")
	// ErrMalformedResponse is returned when the upstream body cannot be understood.
	ErrMalformedResponse = errors.New("homepage: malformed upstream response")
)

// Configuration wraps err as a configuration failure.
func Configuration(err error, message string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, CategoryConfiguration, message).
		WithTextCode(CodeMissingSecrets)
}

// Upstream wraps err as an upstream failure with the given text code.
// Context cancellation and deadlines are reported with CodeTimeout.
func Upstream(err error, code, message string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		code = CodeTimeout
	}
	return goerrors.Wrap(err, CategoryUpstream, message).WithTextCode(code)
}

// IsConfiguration reports whether err is a configuration failure.
func IsConfiguration(err error) bool {
	return err != nil && goerrors.IsCategory(err, CategoryConfiguration)
}

// IsUpstream reports whether err is an upstream failure.
func IsUpstream(err error) bool {
	return err != nil && goerrors.IsCategory(err, CategoryUpstream)
}

// TextCode returns the text code attached by this package, or "".
func TextCode(err error) string {
	var wrapped *goerrors.Error
	if errors.As(err, &wrapped) && wrapped != nil {
		return wrapped.TextCode
	}
	return ""
}

// Details returns the human readable message of a wrapped failure, falling
// back to err.Error() for plain errors.
func Details(err error) string {
	if err == nil {
		return ""
	}
	var wrapped *goerrors.Error
	if errors.As(err, &wrapped) && wrapped != nil && wrapped.Message != "" {
		return wrapped.Message
	}
	return err.Error()
}
