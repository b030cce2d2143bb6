package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <id>",
		Short: "Print the body of a synthetic module",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := c.app.Load(cmd.Context(), c.options(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), src)
			return nil
		},
	}
}
