// Command notepad edits rich-text documents in the terminal and moves them in
// and out of the store.
package main

import (
	"fmt"
	"os"

	applog "github.com/iw2rmb/notepad/internal/log"
)

func main() {
	err := newRootCmd().Execute()
	_ = applog.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
