package cmd

import (
	"github.com/spf13/cobra"

	"github.com/anonymousfse26/orbis/internal/domain"
)

const runLongDescription = `Run a testing session.

The session repeatedly picks an option combination, runs KLEE on the
bitcode with the combination's arguments for a doubling time budget, and
replays the generated inputs on the gcov binary to measure coverage. The
option-branch map is extracted first when the data directory has none.

Arguments may also come from the configuration file:
  bitcode       LLVM bitcode of the program (llvm_bc)
  gcov-binary   the program built with coverage instrumentation (gcov_obj)`

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	flags := &sessionFlags{}

	cmd := &cobra.Command{
		Use:   "run -t <seconds> -p <program> [flags] <bitcode> <gcov-binary>",
		Short: "Run an option-guided testing session",
		Long:  runLongDescription,
		Args:  cobra.MaximumNArgs(2),
		RunE:  runSession(flags),
	}

	flags.addExtraction(cmd)
	flags.addSession(cmd)

	return cmd
}

func runSession(flags *sessionFlags) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := flags.config(cmd)
		if err != nil {
			return err
		}

		if len(args) > 0 {
			cfg.Bitcode = args[0]
		}

		if len(args) > 1 {
			cfg.GcovBinary = args[1]
		}

		ctx, stop := signalContext(cmd)
		defer stop()

		return finish(cmd, workflow.Run(ctx, domain.RunArgs{Config: cfg}))
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
}
