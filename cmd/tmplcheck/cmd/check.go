package cmd

import (
	"github.com/spf13/cobra"

	tkerror "github.com/tmplkit/tmplkit/foundation/core/error"
	"github.com/tmplkit/tmplkit/internal/checker"
)

var (
	checkProject       string
	checkKeepWorkspace bool
	checkFormat        string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the integration check against a project",
	Long: `Copies the project into a temporary directory and runs every
configured step there. The first asserted step that exits non-zero stops
the run; its captured stderr and stdout are shown in the report.

The temporary directory is removed afterwards unless --keep-workspace is
given.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkProject, "project", "p", "", "project directory (default: project.dir from config)")
	checkCmd.Flags().BoolVar(&checkKeepWorkspace, "keep-workspace", false, "do not remove the workspace after the run")
	checkCmd.Flags().StringVarP(&checkFormat, "format", "f", "console", "report format: console or json")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	if checkFormat != "console" && checkFormat != "json" {
		return tkerror.Newf("unknown report format %q", checkFormat).
			WithCode(tkerror.CodeInvalidInput).
			WithOperation("check")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if checkProject != "" {
		cfg.Project.Dir = checkProject
	}
	if checkKeepWorkspace {
		cfg.Checker.KeepWorkspace = true
	}

	logger := newLogger(cfg)
	c := checker.New(checker.OptionsFromConfig(cfg), checker.NewExecRunner(), logger)

	report, checkErr := c.Check(cmd.Context())

	out := cmd.OutOrStdout()
	if checkFormat == "json" {
		err = checker.RenderJSON(out, report)
	} else {
		err = checker.Render(out, report)
	}
	if checkErr != nil {
		return checkErr
	}
	return err
}
