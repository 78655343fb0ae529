package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	applog "github.com/iw2rmb/notepad/internal/log"
	"github.com/iw2rmb/notepad/richtext"
	"github.com/iw2rmb/notepad/storage"
)

func newImportCmd(opts *rootOptions) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the stored document with a Markdown or raw JSON file",
		Long: `Reads a Markdown (.md) or raw JSON (.json) file, or stdin when the file
is "-", and stores it as the configured document.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			f := format
			if f == "" {
				f = formatFromName(args[0])
			}

			var raw richtext.RawDraft
			switch f {
			case "markdown":
				raw, err = richtext.FromMarkdown(src)
			case "raw":
				raw, err = richtext.Parse(src)
			default:
				return fmt.Errorf("invalid --format %q: must be raw or markdown", f)
			}
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			state, err := richtext.FromRaw(raw, richtext.Options{})
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			data, err := state.Serialize()
			if err != nil {
				return err
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
			if err := st.Save(ctx, key, data); err != nil {
				return fmt.Errorf("save %s: %w", key, err)
			}
			applog.WithComponent("cli").Info("document imported",
				"key", key, "blocks", state.BlockCount(), "source", args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d blocks into %s\n", state.BlockCount(), key)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "input format: raw or markdown (default: by extension)")
	return cmd
}

func readInput(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return data, nil
}

func formatFromName(name string) string {
	if strings.EqualFold(filepath.Ext(name), ".json") {
		return "raw"
	}
	return "markdown"
}
