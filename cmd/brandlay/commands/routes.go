package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.trai.ch/brandlay/internal/ui/style"
)

func (c *CLI) newRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes [url]",
		Short: "List the declared entrypoint routes, or the one serving url",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var url string
			if len(args) == 1 {
				url = args[0]
			}

			routes, err := c.app.Routes(cmd.Context(), c.options(), url)
			if err != nil {
				return err
			}
			for _, r := range routes {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", r.Segment, style.Arrow, r.Path)
			}
			return nil
		},
	}
}
