package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/hanoi/pkg/io"
)

// verifyCommand checks that an exported move list solves its tower.
func (c *CLI) verifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <file>",
		Short: "Check that a JSON or YAML move list solves the tower",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := io.ImportDocument(args[0])
			if err != nil {
				return err
			}
			if err := doc.Verify(); err != nil {
				printError("%s does not solve %d disks", args[0], doc.Disks)
				return err
			}
			printSuccess("%s solves %d disks in %d moves", args[0], doc.Disks, doc.TotalMoves)
			if optimal := len(io.NewDocument(doc.Disks).Moves); doc.TotalMoves > optimal {
				printDetail("the minimal solution takes %d moves", optimal)
			}
			return nil
		},
	}
}
