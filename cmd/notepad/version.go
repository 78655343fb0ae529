package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/notepad"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of notepad",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "notepad %s\n", notepad.Version())
		},
	}
}
