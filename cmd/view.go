package cmd

import (
	"github.com/spf13/cobra"

	"github.com/anonymousfse26/orbis/internal/config"
	"github.com/anonymousfse26/orbis/internal/domain"
	m "github.com/anonymousfse26/orbis/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "view [-d <output-dir>]",
		Short: "View the iterations of a finished session",
		Long:  "View the iteration records a testing session stored in its output directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configFlag)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("output-dir") {
				cfg.OutputDir = outputDir
			}

			return finish(cmd, workflow.View(domain.ViewArgs{OutputDir: m.Path(cfg.OutputDir)}))
		},
	}
	cmd.Flags().StringVarP(&outputDir, "output-dir", "d", config.Default().OutputDir, "output directory of the session")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
