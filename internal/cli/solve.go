package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	herrors "github.com/matzehuels/hanoi/pkg/errors"
	"github.com/matzehuels/hanoi/pkg/io"
)

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	format string // text, json or yaml
	output string // file path; stdout when empty
}

// solveCommand prints the move sequence for a disk count.
func (c *CLI) solveCommand() *cobra.Command {
	opts := solveOpts{format: io.FormatText}

	cmd := &cobra.Command{
		Use:   "solve <disks>",
		Short: "Print the minimal move sequence",
		Example: `  hanoi solve 3
  hanoi solve 5 --format yaml -o moves.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := herrors.ParseDiskCount(args[0])
			if err != nil {
				return err
			}
			if err := herrors.ValidateFormat(opts.format, io.Formats...); err != nil {
				return err
			}
			return runSolve(cmd.Context(), n, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text, json, yaml")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

func runSolve(ctx context.Context, n int, opts solveOpts) error {
	logger := loggerFromContext(ctx)
	doc := io.NewDocument(n)
	logger.Debug("solved", "disks", n, "moves", doc.TotalMoves)

	if opts.output == "" {
		return io.Write(os.Stdout, doc, opts.format)
	}
	if err := herrors.ValidateOutputPath(opts.output); err != nil {
		return err
	}
	if err := io.Export(opts.output, doc, opts.format); err != nil {
		return err
	}
	printSuccess("Wrote %d moves to %s", doc.TotalMoves, opts.output)
	return nil
}
