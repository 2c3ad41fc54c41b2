// Package main provides the bhssdist CLI: parse distribution workbooks
// to JSON, or serve the distribution batch API.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bhssdist",
		Short: "BHSS distribution sheet ingestion",
		Long: `bhssdist parses BHSS distribution workbooks (rice, water, LPG)
into structured rows and serves the distribution batch API.`,
	}
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newServeCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
