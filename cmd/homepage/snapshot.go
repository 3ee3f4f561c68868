package main

import (
	"github.com/spf13/cobra"

	snapshotcmd "github.com/goliatone/go-homepage/internal/commands/snapshot"
)

const defaultSnapshotOutput = "public/profile.json"

func newSnapshotCommand(root *rootOptions) *cobra.Command {
	msg := snapshotcmd.WriteSnapshotCommand{}

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Write the normalised document to a JSON file",
		Long:  "snapshot fetches the homepage rows once and writes the normalised document,\nready to be served as static default content.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			module, err := root.module(cmd, nil)
			if err != nil {
				return err
			}
			handler, err := snapshotcmd.RegisterSnapshotCommands(nil, module, module.LoggerProvider())
			if err != nil {
				return err
			}
			if err := handler.Execute(cmd.Context(), msg); err != nil {
				return err
			}
			cmd.Printf("wrote %s\n", msg.Output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&msg.Output, "output", "o", defaultSnapshotOutput, "destination file")
	cmd.Flags().BoolVar(&msg.Indent, "indent", false, "pretty-print the document")
	return cmd
}
