package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.trai.ch/brandlay/internal/app"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <specifier>",
		Short: "Resolve a specifier through the brand overlay",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			importer, _ := cmd.Flags().GetString("importer")
			ssr, _ := cmd.Flags().GetBool("ssr")

			id, err := c.app.Resolve(cmd.Context(), c.options(), app.ResolveRequest{
				Specifier: args[0],
				Importer:  importer,
				SSR:       ssr,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
	cmd.Flags().StringP("importer", "i", "", "Id of the importing module")
	cmd.Flags().Bool("ssr", false, "Resolve for the server build graph")
	return cmd
}
