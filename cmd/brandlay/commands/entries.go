package commands

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"go.trai.ch/brandlay/internal/core/domain"
)

func (c *CLI) newEntriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entries",
		Short: "Print the build inputs for every brand as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			target, _ := cmd.Flags().GetString("target")

			in, err := c.app.Entries(cmd.Context(), c.options(), target)
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			defer func() { _ = enc.Close() }()
			return enc.Encode(in)
		},
	}
	cmd.Flags().StringP("target", "t", string(domain.TargetAll), "Build target: client, server or all")
	return cmd
}
