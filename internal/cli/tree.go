package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hanoi/pkg/cache"
	"github.com/matzehuels/hanoi/pkg/config"
	herrors "github.com/matzehuels/hanoi/pkg/errors"
	"github.com/matzehuels/hanoi/pkg/hanoi"
	"github.com/matzehuels/hanoi/pkg/render/tree"
)

// treeOpts holds the command-line flags for the tree command.
type treeOpts struct {
	output  string
	dot     bool // print DOT source instead of SVG
	colored bool
	noCache bool
}

// treeCommand renders the recursion tree of the solver.
func (c *CLI) treeCommand() *cobra.Command {
	var opts treeOpts

	cmd := &cobra.Command{
		Use:   "tree <disks>",
		Short: "Render the solver's recursion tree with Graphviz",
		Example: `  hanoi tree 3 -o tree.svg
  hanoi tree 4 --dot | dot -Tpng > tree.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := herrors.ParseDiskCount(args[0])
			if err != nil {
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
			return c.runTree(cmd.Context(), cfg, n, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.dot, "dot", false, "print Graphviz DOT source instead of SVG")
	cmd.Flags().BoolVar(&opts.colored, "colored", false, "fill moves with the color of the moved disk")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "render even if a cached SVG exists")

	return cmd
}

func (c *CLI) runTree(ctx context.Context, cfg *config.Config, n int, opts treeOpts) error {
	dotOpts := tree.Options{Colored: opts.colored}
	if opts.dot {
		dot := tree.ToDOT(solveTree(n), dotOpts)
		return writeOutput(opts.output, []byte(dot))
	}

	store := c.newCache(cfg, opts.noCache)
	defer store.Close()

	prog := newProgress(loggerFromContext(ctx))
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering tree for %d disks...", n))
	spinner.Start()
	svg, cached, err := treeSVG(ctx, store, cfg, n, dotOpts)
	if err != nil {
		if spinner.Cancelled() && ctx.Err() != nil {
			spinner.Stop()
			return ctx.Err()
		}
		spinner.StopWithError("Render failed")
		return err
	}

	if opts.output == "" {
		spinner.Stop()
		return writeOutput("", svg)
	}
	if err := os.WriteFile(opts.output, svg, 0644); err != nil {
		spinner.StopWithError("Write failed")
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	spinner.StopWithSuccess(fmt.Sprintf("Wrote %s", opts.output))
	if !cached {
		prog.done(fmt.Sprintf("Rendered tree for %d disks", n))
	}
	printStats(n, hanoi.MoveCount(n), cached)
	return nil
}

func solveTree(n int) *hanoi.Call {
	return hanoi.CallTree(n, hanoi.Source, hanoi.Destination, hanoi.Auxiliary)
}

// treeSVG returns the rendered recursion tree, from the cache when possible.
// The boolean reports a cache hit. Cache failures are logged and otherwise
// ignored.
func treeSVG(ctx context.Context, store cache.Cache, cfg *config.Config, n int, opts tree.Options) ([]byte, bool, error) {
	logger := loggerFromContext(ctx)
	key := cache.NewDefaultKeyer().TreeKey(n, cache.TreeKeyOpts{Format: "svg", Colored: opts.Colored})

	if data, ok, err := store.Get(ctx, key); err != nil {
		logger.Warn("cache read failed", "error", err)
	} else if ok {
		return data, true, nil
	}

	svg, err := tree.RenderSVG(ctx, tree.ToDOT(solveTree(n), opts))
	if err != nil {
		return nil, false, herrors.Wrap(herrors.ErrCodeInternal, err, "render tree")
	}
	if err := store.Set(ctx, key, svg, cfg.Cache.TTL()); err != nil {
		logger.Warn("cache write failed", "error", err)
	}
	return svg, false, nil
}
