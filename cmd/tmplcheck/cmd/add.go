package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tmplkit/tmplkit/pkg/sample"
)

var addCmd = &cobra.Command{
	Use:   "add A B",
	Short: "Add two numbers",
	Long: `Adds two numbers. Arguments are read as JSON literals, so "2" and
"2.5" are numbers while "abc", "true" or '"2"' are not and fail with a
type error.`,
	Args: cobra.ExactArgs(2),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	sum, err := sample.Add(parseLiteral(args[0]), parseLiteral(args[1]))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), sum)
	return nil
}
