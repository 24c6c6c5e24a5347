package cmd

import (
	"fmt"
	"os"

	"github.com/Robobc/credit-suisse-eof-parser/extractor"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parses statement(s) into JSON",
	Long: `Parses a given statement or a directory of statements.
Each PDF is tokenized line by line, the debit/credit split is derived
from consecutive running balances, and the validated transactions are
written as a JSON document.`,
	Run: handler,
}

func handler(cmd *cobra.Command, args []string) {
	// Access the configuration using Viper
	target := viper.GetString("target")
	output := viper.GetString("output")
	fmt.Println("scanning ", target)
	if err := extractor.ExecuteAgainstPath(target, output); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringP("file", "f", ".", "PDF statement or folder eofparser will scan for statements")
	parseCmd.Flags().StringP("output", "o", "transactions.json", "Output JSON file (or folder when scanning a folder)")
	viper.BindPFlag("target", parseCmd.Flags().Lookup("file"))
	viper.BindPFlag("output", parseCmd.Flags().Lookup("output"))
}
