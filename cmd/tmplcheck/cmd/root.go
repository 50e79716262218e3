package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	tklog "github.com/tmplkit/tmplkit/foundation/core/log"
	"github.com/tmplkit/tmplkit/pkg/core/config"
	"github.com/tmplkit/tmplkit/pkg/core/logging"
	"github.com/tmplkit/tmplkit/pkg/core/version"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "tmplcheck",
	Short: "tmplkit - project template checks",
	Long: `tmplcheck verifies a project template end to end.

It copies the project into a disposable directory and runs the quality
gates in order, stopping at the first failure:

  uv venv             - create the virtual environment
  uv sync             - install dependencies
  pre-commit install  - install the hooks
  pre-commit run      - run linters and formatters on all files
  mypy                - type check src/my_package
  pytest              - run the tests (result reported, not asserted)

It also exposes the template's sample helpers (add, greet, stats).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Errors are logged once here; the caller
// only decides the exit status.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		newLogger(nil).LogError(err)
		return err
	}
	return nil
}

func init() {
	rootCmd.Version = version.String("tmplcheck")
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $TMPLCHECK_CONFIG or ./tmplcheck.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig loads the configuration named by --config
func loadConfig() (*config.Config, error) {
	return config.Load(cfgFile)
}

// newLogger creates the command logger. A nil cfg uses the defaults.
func newLogger(cfg *config.Config) *tklog.Logger {
	lc := logging.DefaultLoggerConfig("tmplcheck")
	if cfg != nil {
		lc = logging.FromConfig("tmplcheck", cfg.Logging)
	}
	lc.Verbose = verbose
	return logging.NewLogger(lc)
}
