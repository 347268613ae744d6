package cmds

import (
	"os"

	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema <file>",
	Short: "Print the schema of a parquet file",
	Long:  "Print the columns of a parquet file as a table of name, physical type, and logical type.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return displaySchema(os.Stdout, args[0])
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
