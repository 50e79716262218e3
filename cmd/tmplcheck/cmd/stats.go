package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tmplkit/tmplkit/pkg/sample"
)

var statsCmd = &cobra.Command{
	Use:   "stats JSON_ARRAY|-",
	Short: "Print average and maximum of a list of numbers",
	Long: `Reads a JSON array of numbers from the argument, or from stdin when
the argument is "-", and prints its length, average and maximum.

The average of an empty list is 0. An empty list has no maximum and the
command fails after printing the other values.`,
	Example: `  tmplcheck stats '[1, 5, 2, 8, 3]'
  echo '[1.5, 2.5]' | tmplcheck stats -`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	var input io.Reader = strings.NewReader(args[0])
	if args[0] == "-" {
		input = cmd.InOrStdin()
	}

	values, err := decodeJSON(input)
	if err != nil {
		return invalidJSON(err, "stats")
	}

	p, err := sample.NewDataProcessor(values)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "count:   %d\n", p.Len())
	fmt.Fprintf(out, "average: %s\n", formatNumber(p.CalculateAverage()))

	largest, err := p.FindMaxValue()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "max:     %s\n", largest)
	return nil
}
