package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-homepage"
)

// moduleBuilder is swapped in tests.
var moduleBuilder = homepage.New

type rootOptions struct {
	source      string
	contentDir  string
	logProvider string
	logLevel    string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "homepage",
		Short:         "Personal homepage content service",
		Long:          "homepage reads the homepage database (Notion or a local Markdown directory) and\nserves it as a single normalised JSON document.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.source, "source", "", "row source: notion or markdown (overrides HOMEPAGE_SOURCE)")
	flags.StringVar(&opts.contentDir, "content-dir", "", "markdown content directory (overrides HOMEPAGE_MARKDOWN_DIR)")
	flags.StringVar(&opts.logProvider, "log-provider", "", "logging provider: console or gologger")
	flags.StringVar(&opts.logLevel, "log-level", "", "minimum log level")

	root.AddCommand(
		newServeCommand(opts),
		newSnapshotCommand(opts),
		newPreviewCommand(opts),
	)
	return root
}

// config loads the environment and applies the flags that were set.
func (o *rootOptions) config(cmd *cobra.Command) (homepage.Config, error) {
	cfg, err := homepage.ConfigFromEnv()
	if err != nil {
		return homepage.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("source") {
		cfg.Source = strings.TrimSpace(o.source)
	}
	if flags.Changed("content-dir") {
		cfg.Markdown.ContentDir = strings.TrimSpace(o.contentDir)
		if !flags.Changed("source") {
			cfg.Source = "markdown"
		}
	}
	if flags.Changed("log-provider") {
		cfg.Logging.Provider = strings.TrimSpace(o.logProvider)
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = strings.TrimSpace(o.logLevel)
	}
	return cfg, nil
}

func (o *rootOptions) module(cmd *cobra.Command, mutate func(*homepage.Config)) (*homepage.Module, error) {
	cfg, err := o.config(cmd)
	if err != nil {
		return nil, err
	}
	if mutate != nil {
		mutate(&cfg)
	}
	module, err := moduleBuilder(cfg)
	if err != nil {
		return nil, fmt.Errorf("initialise homepage module: %w", err)
	}
	return module, nil
}
