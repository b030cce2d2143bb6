// Package commands implements the CLI commands for brandlay.
package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.trai.ch/brandlay/internal/app"
	"go.trai.ch/brandlay/internal/build"
	"go.trai.ch/brandlay/internal/core/domain"
	"go.trai.ch/brandlay/internal/engine/frontier"
)

// EnvPrefix is the prefix of environment variables that override flags.
const EnvPrefix = "BRANDLAY"

// CLI represents the command line interface for brandlay.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	v       *viper.Viper
}

// Application represents the application logic interface.
type Application interface {
	SetLogFormat(jsonMode, verbose bool)
	Brands(ctx context.Context, opts app.Options) (app.BrandReport, error)
	Entries(ctx context.Context, opts app.Options, target string) (domain.BuildInputs, error)
	Resolve(ctx context.Context, opts app.Options, req app.ResolveRequest) (string, error)
	Load(ctx context.Context, opts app.Options, id string) (string, error)
	RewriteHTML(ctx context.Context, opts app.Options, html, requestURL string) (string, error)
	Routes(ctx context.Context, opts app.Options, url string) ([]frontier.Route, error)
	Watch(ctx context.Context, opts app.Options) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "brandlay",
		Short:         "Brand-aware module overlays for multi-tenant site builds",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", domain.DefaultConfigFile, "Path to the brandlay configuration file")
	flags.String("root", "", "Project root, overriding the configuration file")
	flags.String("mode", "", "Session mode: dev or build")
	flags.Bool("json", false, "Emit logs as JSON")
	flags.BoolP("verbose", "v", false, "Enable debug logging")

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindPFlags(flags)

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
		v:       v,
	}

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		c.app.SetLogFormat(c.v.GetBool("json"), c.v.GetBool("verbose"))
	}

	rootCmd.AddCommand(c.newBrandsCmd())
	rootCmd.AddCommand(c.newEntriesCmd())
	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newLoadCmd())
	rootCmd.AddCommand(c.newHTMLCmd())
	rootCmd.AddCommand(c.newRoutesCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetInput sets the input stream for the root command. Used for testing.
func (c *CLI) SetInput(in io.Reader) {
	c.rootCmd.SetIn(in)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// options collects the session settings from flags and environment.
func (c *CLI) options() app.Options {
	return app.Options{
		ConfigPath: c.v.GetString("config"),
		Root:       c.v.GetString("root"),
		Mode:       c.v.GetString("mode"),
	}
}
