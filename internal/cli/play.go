package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	herrors "github.com/matzehuels/hanoi/pkg/errors"
	"github.com/matzehuels/hanoi/pkg/session"
)

// playCommand runs the interactive animation player.
func (c *CLI) playCommand() *cobra.Command {
	var (
		disks   int
		logFile string
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Watch the solution animate in the terminal",
		Long: `Play opens a full-screen player. Type a disk count from 1 to 6 and press
enter to watch the minimal solution, one disk at a time.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			opts := cfg.SessionOptions()
			if cmd.Flags().Changed("disks") {
				if err := herrors.ValidateDiskCount(disks); err != nil {
					return err
				}
				opts.Disks = disks
			}

			restore, err := c.redirectLogs(logFile)
			if err != nil {
				return err
			}
			defer restore()

			ctx := cmd.Context()
			model := NewPlayModel(ctx, cfg, session.New(opts))
			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().IntVar(&disks, "disks", session.DefaultDisks, "initial disk count (1-6)")
	cmd.Flags().StringVar(&logFile, "log-file", "", "append logs to this file while playing")

	return cmd
}
