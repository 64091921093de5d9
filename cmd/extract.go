package cmd

import (
	"github.com/spf13/cobra"

	"github.com/anonymousfse26/orbis/internal/domain"
)

const extractLongDescription = `Extract the program's options and the branches each of them controls.

Options come from the program's --help (or --usage) output, or from an
option catalog file. The map is saved under the data directory and reused
by later runs unless --force is given.`

// extractCmd represents the extract command.
var extractCmd = newExtractCmd()

func newExtractCmd() *cobra.Command {
	flags := &sessionFlags{}

	var force bool

	cmd := &cobra.Command{
		Use:   "extract -p <program> [flags] <gcov-binary>",
		Short: "Extract options and their branches",
		Long:  extractLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.config(cmd)
			if err != nil {
				return err
			}

			if len(args) > 0 {
				cfg.GcovBinary = args[0]
			}

			ctx, stop := signalContext(cmd)
			defer stop()

			return finish(cmd, workflow.Extract(ctx, domain.ExtractArgs{Config: cfg, Force: force}))
		},
	}

	flags.addExtraction(cmd)
	cmd.Flags().BoolVarP(&force, "force", "f", false, "rebuild the map even if one is saved")

	return cmd
}

func init() {
	rootCmd.AddCommand(extractCmd)
}
