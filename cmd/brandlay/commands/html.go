package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newHTMLCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "html <file>",
		Short: "Rewrite a dev index page for the brand named in --url",
		Long:  "Rewrite a dev index page for the brand named in --url. Use - to read the page from stdin.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			requestURL, _ := cmd.Flags().GetString("url")

			page, err := readPage(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			out, err := c.app.RewriteHTML(cmd.Context(), c.options(), page, requestURL)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringP("url", "u", "/", "Request URL of the page")
	return cmd
}

func readPage(stdin io.Reader, name string) (string, error) {
	var (
		data []byte
		err  error
	)
	if name == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(name) //nolint:gosec // path is provided by user
	}
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to read page"), "path", name)
	}
	return string(data), nil
}
