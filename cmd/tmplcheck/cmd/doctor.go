package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	tkerror "github.com/tmplkit/tmplkit/foundation/core/error"
	"github.com/tmplkit/tmplkit/foundation/utils/slicex"
	"github.com/tmplkit/tmplkit/pkg/core/config"
	"github.com/tmplkit/tmplkit/pkg/core/health"
)

// doctorLookPath resolves tools; tests replace it
var doctorLookPath health.LookPathFunc

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the tools the pipeline needs are installed",
	Long: `Checks that the project directory exists, that a workspace can be
created and that the executable of every configured step is on PATH.

A missing tool of a step whose result is not asserted is reported as a
warning only.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// buildRegistry registers one check per distinct step executable plus the
// directory checks
func buildRegistry(cfg *config.Config) *health.Registry {
	registry := health.NewRegistry(4)
	registry.Register(health.DirCheck("project directory", cfg.Project.Dir))
	registry.Register(health.TempDirCheck("workspace", cfg.Checker.WorkspacePattern))

	required := make(map[string]bool)
	for _, s := range cfg.Steps {
		if tool := health.Executable(s.Command); tool != "" {
			required[tool] = required[tool] || s.Asserted()
		}
	}
	tools := slicex.Unique(slicex.Map(cfg.Steps, func(s config.StepConfig) string {
		return health.Executable(s.Command)
	}))
	for _, tool := range slicex.Filter(tools, func(t string) bool { return t != "" }) {
		registry.Register(health.ToolCheck("tool "+tool, tool, required[tool], doctorLookPath))
	}
	return registry
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	report := buildRegistry(cfg).Check(ctx)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "tmplcheck doctor")
	fmt.Fprintln(out, "================")
	for _, c := range report.Checks {
		icon := "[+]"
		switch c.Status {
		case health.StatusDegraded:
			icon = "[~]"
		case health.StatusUnhealthy, health.StatusUnknown:
			icon = "[-]"
		}
		fmt.Fprintf(out, "  %s %-28s %s\n", icon, c.Name, c.Message)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Status: %s\n", report.Status)

	if !report.Healthy() {
		return tkerror.New("environment is not ready for the integration check").
			WithCode(tkerror.CodeNotFound).
			WithOperation("doctor")
	}
	return nil
}
