// Package main provides the CLI entry point for skillsheet-go.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ptplabs/skillsheet-go/pkg/skillsheet"
)

var (
	sheetName  string
	outputPath string
	clientName string
	senderName string
	tableStyle string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "skillsheet [input.xlsx]",
		Short: "Extract unique skills from an Excel workbook and create a review sheet",
		Long: `skillsheet consolidates the skills scattered across an Excel workbook
into a unique, case-insensitively sorted list and generates a two-column
review workbook. Skills found in the first column of the input sheet
(typically LinkedIn skills) are pre-marked with "Yes".`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVar(&sheetName, "sheet", "", "Worksheet to process (default: all sheets)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: input name with _review suffix)")
	rootCmd.Flags().StringVar(&clientName, "client", skillsheet.DefaultClient, "Client name for the share message")
	rootCmd.Flags().StringVar(&senderName, "sender", skillsheet.DefaultSender, "Sender name for the share message")
	rootCmd.Flags().StringVar(&tableStyle, "table-style", "", "Excel table style name for the review sheet")

	rootCmd.AddCommand(newServeCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	// Validate input file exists
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("input file not found: %s", inputPath)
	}

	opts := skillsheet.DefaultOptions()
	opts.Sheet = sheetName
	opts.Output = outputPath
	opts.Client = clientName
	opts.Sender = senderName
	if tableStyle != "" {
		opts.Style.TableStyle = tableStyle
	}

	result, err := skillsheet.Process(inputPath, opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	fmt.Println(renderSummary(result))

	fmt.Println("\nSuggested share message:")
	fmt.Println()
	fmt.Println(result.Message)

	return nil
}
