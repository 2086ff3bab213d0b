package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const programName = "threadpool"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           programName,
		Short:         "Bounded worker pool with load driven resizing",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(), newDemoCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
