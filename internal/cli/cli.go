// Package cli implements the tiletxtpack command-line interface.
//
// tiletxtpack turns font sprite sheets into the packed charset
// binaries consumed by the tiletxt engine (and by the embedded
// build they get linked into), and can render text previews from
// packed charsets for quick visual checks.
//
// The CLI is built with cobra; all commands support --verbose (-v)
// for debug-level logging through the charmbracelet/log library.
package cli

import "io"
import "time"

import "github.com/charmbracelet/log"
import "github.com/spf13/cobra"

// CLI bundles the packer commands with their shared logger.
type CLI struct {
	logger *log.Logger
}

// Creates a CLI writing logs to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{ logger: newLogger(w, level) }
}

// Adjusts the level of the CLI's logger.
func (self *CLI) SetLogLevel(level log.Level) {
	self.logger.SetLevel(level)
}

// Builds the root cobra command with all subcommands attached.
func (self *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use: "tiletxtpack",
		Short: "Pack font sprite sheets into tiletxt charset binaries",
		SilenceUsage: true,
		SilenceErrors: true,
	}
	root.AddCommand(self.packCommand())
	root.AddCommand(self.previewCommand())
	return root
}

// newLogger creates a logger with timestamp formatting
// ("HH:MM:SS.ms") writing to w at the given level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat: "15:04:05.00",
		Level: level,
	})
}

// progress tracks the start time of an operation and logs
// completion with the elapsed duration.
type progress struct {
	logger *log.Logger
	start time.Time
}

func newProgress(logger *log.Logger) *progress {
	return &progress{ logger: logger, start: time.Now() }
}

func (self *progress) done(msg string, keyvals ...any) {
	keyvals = append(keyvals, "elapsed", time.Since(self.start).Round(time.Millisecond))
	self.logger.Info(msg, keyvals...)
}
