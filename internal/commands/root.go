// Package commands wires the ghtoporgrepos CLI surface.
package commands

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/vitaly-krugl/yaghpy/internal/config"
	ghub "github.com/vitaly-krugl/yaghpy/internal/github"
)

// defaultMax matches the historical CLI default of five results.
const defaultMax = 5

// App holds shared application state.
type App struct {
	Config    config.Config
	GHClient  ghub.Client
	GitSHA    string
	GitDirty  string
	Max       int
	BasicAuth string
}

// NewApp creates a new App from the given configuration.
func NewApp(cfg config.Config, gitSHA, gitDirty string) *App {
	return &App{
		Config:   cfg,
		GitSHA:   gitSHA,
		GitDirty: gitDirty,
		Max:      defaultMax,
	}
}

// ensureClient resolves credentials and creates the GitHub client if one was
// not injected.
func (a *App) ensureClient() error {
	if a.GHClient != nil {
		return nil
	}
	creds, err := config.ResolveCredentials(a.BasicAuth, a.Config)
	if err != nil {
		return err
	}
	a.GHClient = ghub.NewClient(creds, a.Config.GitHubToken)
	return nil
}

// logger returns the progress logger, discarding output unless DEBUG is set.
func (a *App) logger() *log.Logger {
	out := io.Writer(io.Discard)
	if a.Config.DebugMode {
		out = os.Stderr
	}
	return log.New(out, "", log.LstdFlags)
}

// NewRootCommand creates the root cobra command with all subcommands.
func (a *App) NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ghtoporgrepos",
		Short: "Rank a GitHub organization's repositories by stars, forks, pull requests or contribution ratio.",
		Long: fmt.Sprintf(`ghtoporgrepos ranks the repositories of a GitHub organization and prints
the top N as "name:value" lines in decreasing order of the requested metric.

Basic-authentication credentials may be provided via --basic-auth or via the
INI credentials file at the location referenced by the %s
environment variable (default ~/.yagpy/config). Unauthenticated access is
subject to a severely reduced GitHub request rate quota.`, config.ConfigPathEnvVar),
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	rootCmd.PersistentFlags().IntVar(&a.Max, "max", defaultMax,
		"Maximum results to output")
	rootCmd.PersistentFlags().StringVar(&a.BasicAuth, "basic-auth", "",
		"Colon-separated GitHub basic authentication credentials (user:password). A user name containing colons is not supported.")

	for _, spec := range actionSpecs {
		rootCmd.AddCommand(a.newTopCommand(spec))
	}
	rootCmd.AddCommand(a.newExportCommand())
	rootCmd.AddCommand(a.newVersionCommand())

	return rootCmd
}
