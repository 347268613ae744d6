package cmds

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	headFormat string
	headRows   int64
)

var headCmd = &cobra.Command{
	Use:   "head <file>",
	Short: "Print the first rows of a parquet file",
	Long:  "Print the first rows of a parquet file to stdout in the selected format. Rows past the requested count are never read.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if headRows < 0 {
			return fmt.Errorf("row count must not be negative, got %d", headRows)
		}
		return displayData(os.Stdout, args[0], headFormat, headRows)
	},
}

func init() {
	headCmd.Flags().StringVarP(&headFormat, "format", "f", "csv", "output format: csv, json, or jsonl")
	headCmd.Flags().Int64VarP(&headRows, "n_rows", "n", 10, "number of rows to print")
	rootCmd.AddCommand(headCmd)
}
