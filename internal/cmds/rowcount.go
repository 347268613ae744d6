package cmds

import (
	"os"

	"github.com/spf13/cobra"
)

var rowCountCmd = &cobra.Command{
	Use:   "rowcount <file>",
	Short: "Print the number of rows in a parquet file",
	Long:  "Print the total row count recorded in the parquet file metadata. No row data is read.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return displayRowCount(os.Stdout, args[0])
	},
}

func init() {
	rootCmd.AddCommand(rowCountCmd)
}
