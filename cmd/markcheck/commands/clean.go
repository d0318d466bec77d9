package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/markcheck/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove cached validator responses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kind, err := parseKindFlag(cmd)
			if err != nil {
				return err
			}
			return c.app.Clean(cmd.Context(), app.CleanOptions{Kind: kind})
		},
	}

	cmd.Flags().StringP("kind", "k", "", "Only remove responses for one kind: markup or css")

	return cmd
}
