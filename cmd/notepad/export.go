package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/notepad/richtext"
	"github.com/iw2rmb/notepad/storage"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	var (
		format string
		output string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the stored document as raw JSON or Markdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "raw" && format != "markdown" {
				return fmt.Errorf("invalid --format %q: must be raw or markdown", format)
			}
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer storage.Close(st)

			ctx, cancel := withTimeout(cmd.Context())
			defer cancel()
			key := storage.Key(cfg.DocumentID)
			data, err := st.Load(ctx, key)
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("no document stored under %s", key)
			}
			if err != nil {
				return fmt.Errorf("loading %s: %w", key, err)
			}

			raw, err := richtext.Parse(data)
			if err != nil {
				return fmt.Errorf("decoding %s: %w", key, err)
			}
			out := data
			if format == "markdown" {
				md, err := richtext.ToMarkdown(raw)
				if err != nil {
					return err
				}
				out = []byte(md)
			}

			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			return os.WriteFile(output, out, 0o644)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "raw", "output format: raw or markdown")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}
