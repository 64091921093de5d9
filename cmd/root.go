// Package cmd provides the root command and CLI setup for orbis.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/anonymousfse26/orbis/internal/adapter"
	"github.com/anonymousfse26/orbis/internal/config"
	"github.com/anonymousfse26/orbis/internal/controller"
	"github.com/anonymousfse26/orbis/internal/domain"
)

var workflow domain.Workflow
var ui controller.UI

var configFlag string
var logLevelFlag string
var logFileFlag string
var ttyFlag bool

var logFile *os.File

const rootLongDescription = `Orbis tests a C command-line program with the KLEE symbolic execution
engine, one option combination at a time.

It extracts the program's options from its help text, maps each option to
the source branches its handling code controls, and then spends the time
budget on the combinations whose branches are still uncovered, seeding
every run with the best test inputs found so far.

Running orbis without a subcommand is the same as "orbis run".`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	flags := &sessionFlags{}

	cmd := &cobra.Command{
		Use:               "orbis -t <seconds> -p <program> [flags] <bitcode> <gcov-binary>",
		Short:             "Option-guided symbolic execution for C command-line programs",
		Long:              rootLongDescription,
		Args:              cobra.MaximumNArgs(2),
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		RunE:              runSession(flags),
	}

	cmd.PersistentFlags().StringVar(&configFlag, "config", "", "YAML configuration file")
	cmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "info", "log level: debug, info, warn or error")
	cmd.PersistentFlags().StringVar(&logFileFlag, "log-file", "", "write logs to this file instead of stderr")
	cmd.PersistentFlags().BoolVar(&ttyFlag, "tty", false, "force (or with =false disable) the interactive terminal UI")

	flags.addExtraction(cmd)
	flags.addSession(cmd)

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()

	if logFile != nil {
		_ = logFile.Close()
	}

	if err != nil {
		os.Exit(1)
	}
}

// setup configures logging and wires the workflow unless a test already
// replaced it.
func setup(cmd *cobra.Command, _ []string) error {
	useTTY := controller.IsTTY(cmd.OutOrStdout())
	if cmd.Flags().Changed("tty") {
		useTTY = ttyFlag
	}

	logger, err := newLogger(cmd.ErrOrStderr(), logLevelFlag, useTTY)
	if err != nil {
		return err
	}

	slog.SetDefault(logger)

	if workflow != nil {
		return nil
	}

	ui = controller.NewUI(cmd, useTTY)
	parser := adapter.NewTreeSitterCAdapter()
	workflow = domain.NewWorkflow(
		adapter.NewLocalSourceFSAdapter(parser, logger),
		parser,
		adapter.NewLocalProcessRunner(),
		adapter.NewBranchMapStore(),
		adapter.NewReportStore(logger),
		ui,
		logger,
	)

	return nil
}

// newLogger builds the text logger. The interactive UI owns the terminal, so
// without a log file only errors reach stderr.
func newLogger(stderr io.Writer, level string, useTTY bool) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	out := stderr

	if logFileFlag != "" {
		f, err := os.OpenFile(logFileFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("failed to open the log file: %w", err)
		}

		logFile = f
		out = f
	} else if useTTY && lvl < slog.LevelError {
		lvl = slog.LevelError
	}

	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: lvl})), nil
}

func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
}

// finish waits for the UI to be closed and prints the usage when a required
// argument was missing.
func finish(cmd *cobra.Command, err error) error {
	if ui != nil {
		ui.Wait()
	}

	if errors.Is(err, config.ErrMissingArgument) {
		_ = cmd.Usage()
	}

	return err
}
