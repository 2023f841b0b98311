package cli

import (
	"github.com/spf13/cobra"

	herrors "github.com/matzehuels/hanoi/pkg/errors"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	after  int    // completed moves before the snapshot
	tick   int    // extra ticks into the next move
	format string // svg, json or text
	output string // file path; stdout when empty
}

// renderCommand draws a single animation frame without a terminal UI.
//
// The frame comes from the real animation driver: a fresh session starts
// the run, completes --after moves, then advances --tick more ticks. With
// the default 30 steps per phase a move takes 93 ticks, so --tick 31 shows
// the disk just as it starts sliding across.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: frameSVG}

	cmd := &cobra.Command{
		Use:   "render <disks>",
		Short: "Render one animation frame as SVG, JSON or text",
		Example: `  hanoi render 4 > start.svg
  hanoi render 4 --after 7 --tick 40 --format text
  hanoi render 3 --after 7 --format json -o solved.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := herrors.ParseDiskCount(args[0])
			if err != nil {
				return err
			}
			if err := herrors.ValidateFormat(opts.format, frameFormats...); err != nil {
				return err
			}
			if opts.output != "" {
				if err := herrors.ValidateOutputPath(opts.output); err != nil {
					return err
				}
			}

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			f, err := buildFrame(cmd.Context(), cfg, frameRequest{disks: n, moves: opts.after, ticks: opts.tick})
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("frame", "disks", n, "moves", f.MoveCount, "phase", f.Phase)

			data, err := encodeFrame(cfg, f, opts.format)
			if err != nil {
				return err
			}
			return writeOutput(opts.output, data)
		},
	}

	cmd.Flags().IntVar(&opts.after, "after", 0, "number of completed moves")
	cmd.Flags().IntVar(&opts.tick, "tick", 0, "ticks into the following move")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg, json, text")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")

	return cmd
}
