package homepage

import "github.com/goliatone/go-homepage/internal/runtimeconfig"

var (
	ErrSourceUnknown              = runtimeconfig.ErrSourceUnknown
	ErrMarkdownContentDirRequired = runtimeconfig.ErrMarkdownContentDirRequired
	ErrUpstreamTimeoutInvalid     = runtimeconfig.ErrUpstreamTimeoutInvalid
	ErrNotionMaxPagesInvalid      = runtimeconfig.ErrNotionMaxPagesInvalid
	ErrLoggingProviderRequired    = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown     = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid        = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid       = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config         = runtimeconfig.Config
	NotionConfig   = runtimeconfig.NotionConfig
	MarkdownConfig = runtimeconfig.MarkdownConfig
	HTTPConfig     = runtimeconfig.HTTPConfig
	UpstreamConfig = runtimeconfig.UpstreamConfig
	LoggingConfig  = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// ConfigFromEnv returns DefaultConfig overlaid with environment variables.
func ConfigFromEnv() (Config, error) {
	return runtimeconfig.FromEnv()
}
