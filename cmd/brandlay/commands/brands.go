package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"go.trai.ch/brandlay/internal/ui/style"
)

func (c *CLI) newBrandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "brands",
		Short: "List the brands discovered in the source tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := c.app.Brands(cmd.Context(), c.options())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			muted := lipgloss.NewStyle().Foreground(style.Slate)
			if len(report.Brands) == 0 {
				_, _ = fmt.Fprintln(out, muted.Render("no brands found"))
			}
			for _, name := range report.Brands {
				_, _ = fmt.Fprintf(out, "%s %s\n", style.Dot, style.Brand(name))
			}
			_, _ = fmt.Fprintln(out, muted.Render("fingerprint "+report.Fingerprint))
			return nil
		},
	}
}
