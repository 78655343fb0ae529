package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/notepad/editor"
	applog "github.com/iw2rmb/notepad/internal/log"
	"github.com/iw2rmb/notepad/storage"
)

func newEditCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Open the document in the editor",
		Long:  `Opens the configured document in a full-screen editor. Ctrl+Q quits.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer storage.Close(st)

			ec, err := cfg.ToEditor()
			if err != nil {
				return err
			}
			log := applog.WithComponent("editor")
			ec.Store = st
			ec.Logger = log
			ec.Clipboard = editor.DefaultClipboard()
			ec.IOTimeout = ioTimeout

			p := tea.NewProgram(newApp(editor.New(ec)),
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
				tea.WithContext(cmd.Context()),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running editor: %w", err)
			}
			return nil
		},
	}
}

// app hosts the editor full-screen.
type app struct {
	editor editor.Model
}

func newApp(m editor.Model) app { return app{editor: m} }

func (a app) Init() tea.Cmd { return a.editor.Init() }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.editor = a.editor.SetSize(msg.Width, msg.Height)
		return a, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+q" {
			return a, tea.Quit
		}
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a app) View() string { return a.editor.View() }
