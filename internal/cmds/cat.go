package cmds

import (
	"os"

	"github.com/spf13/cobra"
)

var catFormat string

var catCmd = &cobra.Command{
	Use:   "cat <file>",
	Short: "Print all rows of a parquet file",
	Long:  "Print every row of a parquet file to stdout in the selected format.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return displayData(os.Stdout, args[0], catFormat, -1)
	},
}

func init() {
	catCmd.Flags().StringVarP(&catFormat, "format", "f", "csv", "output format: csv, json, or jsonl")
	rootCmd.AddCommand(catCmd)
}
