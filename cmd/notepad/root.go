package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/notepad/internal/config"
	applog "github.com/iw2rmb/notepad/internal/log"
	"github.com/iw2rmb/notepad/storage"
)

const ioTimeout = 5 * time.Second

type rootOptions struct {
	cfgFile  string
	document string
	backend  string
	store    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	edit := newEditCmd(opts)

	root := &cobra.Command{
		Use:   "notepad",
		Short: "Rich-text notepad for the terminal",
		Long: `notepad edits a rich-text document in the terminal: headings, quotes,
lists, code blocks and inline styles, saved automatically to a local store.

Without a subcommand it opens the editor.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          edit.RunE,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.cfgFile, "config", "", "config file path (default: user config dir)")
	pf.StringVarP(&opts.document, "document", "d", "", "document ID (overrides config)")
	pf.StringVar(&opts.backend, "backend", "", "storage backend: memory, dir or sqlite (overrides config)")
	pf.StringVar(&opts.store, "store", "", "storage path (overrides config)")

	root.AddCommand(edit)
	root.AddCommand(newExportCmd(opts))
	root.AddCommand(newImportCmd(opts))
	root.AddCommand(newConfigCmd(opts))
	root.AddCommand(newVersionCmd())
	return root
}

func (o *rootOptions) configPath() (string, error) {
	if o.cfgFile != "" {
		return o.cfgFile, nil
	}
	return config.DefaultPath()
}

// load reads the config file and applies flag overrides.
func (o *rootOptions) load() (*config.Config, error) {
	path, err := o.configPath()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if o.document != "" {
		cfg.DocumentID = o.document
	}
	if o.backend != "" {
		cfg.Storage.Backend = o.backend
	}
	if o.store != "" {
		cfg.Storage.Path = o.store
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	applog.Init(cfg.LogOptions())
	return cfg, nil
}

func openStore(cfg *config.Config) (storage.Store, error) {
	path, err := cfg.Storage.StoragePath()
	if err != nil {
		return nil, err
	}
	st, err := storage.Open(cfg.Storage.Backend, path)
	if err != nil {
		return nil, fmt.Errorf("opening %s store at %s: %w", cfg.Storage.Backend, path, err)
	}
	applog.WithComponent("cli").Debug("store opened",
		"backend", cfg.Storage.Backend, "path", path)
	return st, nil
}

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, ioTimeout)
}
