package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/rna-msa/internal/core/domain"
)

var (
	parseJSON     bool
	parseFeatures bool
	parseStrict   bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <file|->",
	Short: "Parse a Stockholm alignment",
	Long: `Parse a Stockholm alignment file and print its sequences,
reference row and decoded secondary structure.

Use "-" to read the alignment from standard input.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "output the document as JSON")
	parseCmd.Flags().BoolVar(&parseFeatures, "features", false, "segment the consensus into stems and loops (default from parser.features)")
	parseCmd.Flags().BoolVar(&parseStrict, "strict", false, "reject rows whose column counts differ (default from parser.strict)")
	rootCmd.AddCommand(parseCmd)
}

// parseOptions starts from the configured parser options. A --features or
// --strict flag given on the command line replaces the configured value.
func parseOptions(cmd *cobra.Command, features, strict bool) domain.ParseOptions {
	opts := currentSettings().Parser
	if cmd.Flags().Changed("features") {
		opts.Features = features
	}
	if cmd.Flags().Changed("strict") {
		opts.Strict = strict
	}
	return opts
}

func runParse(cmd *cobra.Command, args []string) error {
	if err := requireFamilyService(); err != nil {
		return err
	}

	content, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}

	doc, err := familyService.Parse(cmd.Context(), content, parseOptions(cmd, parseFeatures, parseStrict))
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	if parseJSON {
		return outputJSON(cmd, doc)
	}
	outputDocument(cmd, doc, terminalWidth(cmd))
	return nil
}
