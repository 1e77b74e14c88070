// Package cli defines the procmine command-line interface: the root command,
// its flag and environment-variable registration, and logging setup. It
// parses a plain-text event log, runs discovery, and prints the resulting
// process tree in linear or JSON form.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/procmine/procmine/eventlog"
	"github.com/procmine/procmine/imd"
)

// envPrefix namespaces the environment variables bound to flags, e.g.
// PROCMINE_LOG_LEVEL for --log-level.
const envPrefix = "PROCMINE"

// errInvalidLogLevel indicates an unknown --log-level value.
var errInvalidLogLevel = errors.New("cli: invalid log level specified")

// NewRootCmd builds the root command:
//
//	procmine [logfile]
//
// With no argument the log is read from stdin. Flags may equally be set
// through PROCMINE_* environment variables.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "procmine [logfile]",
		Short: "Discover a process tree from an event log",
		Long: "procmine reads an event log (one trace per line, activities separated\n" +
			"by commas or whitespace) and discovers a process tree with the\n" +
			"Inductive Miner - Directly-Follows algorithm.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE:       setupLogging,
		RunE:          run,
	}

	registerFlags(cmd)

	return cmd
}

// registerFlags adds the root flags and binds them to PROCMINE_* variables.
func registerFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String("log-level", "info", "logging verbosity (trace, debug, info, warn, error)")
	flags.Bool("log-json", false, "emit logs as JSON instead of text")
	flags.Bool("json", false, "print the process tree as JSON instead of linear notation")

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()
	_ = viper.BindPFlag("log-level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("log-json", flags.Lookup("log-json"))
	_ = viper.BindPFlag("json", flags.Lookup("json"))
}

// setupLogging configures logrus from the resolved flag values.
func setupLogging(_ *cobra.Command, _ []string) error {
	if viper.GetBool("log-json") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		return fmt.Errorf("%w: %q", errInvalidLogLevel, viper.GetString("log-level"))
	}
	logrus.SetLevel(level)

	return nil
}

// run parses the input log, discovers its process tree, and prints it.
func run(cmd *cobra.Command, args []string) error {
	in, name, err := openInput(args)
	if err != nil {
		return err
	}
	defer in.Close()

	log, err := eventlog.Parse(in)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}

	started := time.Now()
	tree, err := imd.Discover(log)
	if err != nil {
		return fmt.Errorf("discovering %s: %w", name, err)
	}

	logrus.WithFields(logrus.Fields{
		"source":   name,
		"traces":   len(log),
		"elapsed":  time.Since(started).Round(time.Microsecond).String(),
		"leaves":   len(tree.Leaves()),
	}).Debug("Discovery finished")

	if viper.GetBool("json") {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")

		return enc.Encode(tree)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), tree.String())

	return err
}

// openInput resolves the positional argument to a reader: a file path, or
// stdin when absent.
func openInput(args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 {
		return io.NopCloser(os.Stdin), "stdin", nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("opening log: %w", err)
	}

	return f, args[0], nil
}
