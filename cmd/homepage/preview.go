package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newPreviewCommand(root *rootOptions) *cobra.Command {
	var stats bool

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the normalised document to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			module, err := root.module(cmd, nil)
			if err != nil {
				return err
			}

			doc, summary, err := module.ContentWithStats(cmd.Context())
			if err != nil {
				return err
			}

			body, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return fmt.Errorf("encode document: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", body)

			if stats {
				fmt.Fprintf(cmd.ErrOrStderr(), "source=%s rows=%d skipped=%d config=%d projects=%d talks=%d\n",
					module.SourceName(), summary.Rows, summary.Skipped, summary.Config, summary.Projects, summary.Talks)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&stats, "stats", false, "print normalisation counts to stderr")
	return cmd
}
