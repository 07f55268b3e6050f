package main

import "fmt"
import "os"

import "github.com/charmbracelet/log"
import "github.com/spf13/cobra"

import "github.com/tinne26/tiletxt/internal/cli"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var verbose bool

	c := cli.New(os.Stderr, log.InfoLevel)
	root := c.RootCommand()
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose { c.SetLogLevel(log.DebugLevel) }
	}
	return root.Execute()
}
