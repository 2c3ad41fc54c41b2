package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hadesxkore/bhss-distribution/pkg/distribution"
)

func newParseCmd() *cobra.Command {
	var (
		commodity  string
		sheet      string
		outputPath string
		pretty     bool
		grouped    bool
	)

	cmd := &cobra.Command{
		Use:   "parse [input.xlsx]",
		Short: "Parse a distribution workbook and output JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := args[0]
			if _, err := os.Stat(inputPath); os.IsNotExist(err) {
				return fmt.Errorf("file not found: %s", inputPath)
			}

			c, err := distribution.ParseCommodity(commodity)
			if err != nil {
				return err
			}

			res, err := distribution.ParseFile(inputPath, c, sheet)
			if err != nil {
				return fmt.Errorf("import failed: %w", err)
			}

			var out interface{} = res
			if grouped {
				out = res.Groups()
			}
			var jsonData []byte
			if pretty {
				jsonData, err = json.MarshalIndent(out, "", "  ")
			} else {
				jsonData, err = json.Marshal(out)
			}
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}

			if outputPath != "" {
				if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
				return nil
			}
			fmt.Println(string(jsonData))
			return nil
		},
	}

	cmd.Flags().StringVarP(&commodity, "commodity", "c", "rice", "Sheet variant: rice, water, lpg")
	cmd.Flags().StringVar(&sheet, "sheet", "", "Worksheet name (default: first sheet)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().BoolVar(&grouped, "grouped", false, "Output rows grouped by municipality with subtotals")

	return cmd
}
