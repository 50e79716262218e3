package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tmplkit/tmplkit/pkg/sample"
)

var greetCmd = &cobra.Command{
	Use:   "greet NAME",
	Short: "Print a greeting",
	Long: `Prints "Hello, NAME!". NAME is read as a JSON literal like the
arguments of add: a bare number such as 10 is rejected with a type error,
while '"10"' greets the string 10.`,
	Args: cobra.ExactArgs(1),
	RunE: runGreet,
}

func init() {
	rootCmd.AddCommand(greetCmd)
}

func runGreet(cmd *cobra.Command, args []string) error {
	greeting, err := sample.Greet(parseLiteral(args[0]))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), greeting)
	return nil
}
